package api

import (
	"log"
	stdhttp "net/http"

	intconfig "dashboard/internal/config"
	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	h "dashboard/internal/http/handlers"
	"dashboard/internal/http/middleware"
	"dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, reg services.Registry, auth services.AuthService) *gin.Engine {
	h.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	size := env.DefaultPageSize
	d := h.Dashboard{Registry: reg, Auth: auth, DefaultPageSize: size}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Auth
		api.POST("/auth/login", d.Login)

		guarded := api.Group("")
		guarded.Use(middleware.RequireAuth(auth))

		// Collections
		h.CollectionHandlers[models.Course]{
			Service:         func(rid string) h.Collection[models.Course] { return reg.Courses(rid) },
			DefaultPageSize: size,
		}.Mount(guarded.Group("/courses"))
		h.CollectionHandlers[models.FinalYearProject]{
			Service:         func(rid string) h.Collection[models.FinalYearProject] { return reg.FYP(rid) },
			DefaultPageSize: size,
		}.Mount(guarded.Group("/fyp"))
		h.CollectionHandlers[models.Contract]{
			Service:         func(rid string) h.Collection[models.Contract] { return reg.Contracts(rid) },
			DefaultPageSize: size,
		}.Mount(guarded.Group("/contracts"))
		h.CollectionHandlers[models.Project]{
			Service:         func(rid string) h.Collection[models.Project] { return reg.Projects(rid) },
			DefaultPageSize: size,
		}.Mount(guarded.Group("/projects"))

		guarded.GET("/invoices/export.pdf", d.ExportInvoices)
		h.CollectionHandlers[models.Invoice]{
			Service:         func(rid string) h.Collection[models.Invoice] { return reg.Invoices(rid) },
			DefaultPageSize: size,
		}.Mount(guarded.Group("/invoices"))

		// Shifts & income
		guarded.GET("/income", d.ListIncome)
		guarded.GET("/income/daily", d.DailyIncome)
		guarded.POST("/income", d.RecordIncome)
		guarded.GET("/shifts/current", d.CurrentShift)
		guarded.POST("/shifts", d.OpenShift)
		guarded.POST("/shifts/current/close", d.CloseShift)
		guarded.GET("/personal", d.Personal)
		guarded.GET("/personal/tasks", d.PersonalTasks)
		guarded.GET("/personal/internal-tasks", d.InternalTasks)
		guarded.GET("/dashboard", d.Overview)

		// Admin fund monitor
		admin := guarded.Group("/admin")
		admin.Use(middleware.RequireRoles(domain.RoleAdmin))
		admin.GET("/overview", d.FundOverview)
		admin.GET("/funds/report.pdf", d.FundReport)
		admin.GET("/funds/:id/transactions", d.FundTransactions)
		admin.GET("/expenses", d.ListExpenses)
		admin.POST("/expenses", d.CreateExpense)
		admin.POST("/transfers", d.Transfer)
		admin.GET("/notifications", d.ListNotifications)
		admin.GET("/users", d.ListUsers)
	}

	h.SetRouter(r)
	return r
}
