package handlers

import (
	"net/http"

	"dashboard/internal/domain/models"
	"dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

// Dashboard holds the handlers that need more than one collection.
type Dashboard struct {
	Registry        services.Registry
	Auth            services.AuthService
	DefaultPageSize int
}

// POST /api/auth/login
func (d Dashboard) Login(c *gin.Context) {
	var req services.LoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := d.Auth
	svc.RequestID = requestID(c)
	res, err := svc.Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/invoices/export.pdf?<filters>
func (d Dashboard) ExportInvoices(c *gin.Context) {
	data, filename, err := d.Registry.Exports(requestID(c)).InvoiceReport(c.Request.Context(), criteriaFrom(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}

// GET /api/income?<filters>
func (d Dashboard) ListIncome(c *gin.Context) {
	p := pageParams(c, d.DefaultPageSize)
	res, err := d.Registry.Income(requestID(c)).List(c.Request.Context(), criteriaFrom(c), p.Page, p.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/income/daily?<filters>
func (d Dashboard) DailyIncome(c *gin.Context) {
	days, err := d.Registry.Income(requestID(c)).Daily(c.Request.Context(), criteriaFrom(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// POST /api/income
func (d Dashboard) RecordIncome(c *gin.Context) {
	var in models.Income
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := d.Registry.Income(requestID(c)).Record(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// GET /api/shifts/current
func (d Dashboard) CurrentShift(c *gin.Context) {
	sum, err := d.Registry.Income(requestID(c)).CurrentShift(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// POST /api/shifts
func (d Dashboard) OpenShift(c *gin.Context) {
	sh, err := d.Registry.Income(requestID(c)).OpenShift(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, sh)
}

// POST /api/shifts/current/close
func (d Dashboard) CloseShift(c *gin.Context) {
	sum, err := d.Registry.Income(requestID(c)).CloseShift(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, sum)
}

// GET /api/dashboard
func (d Dashboard) Overview(c *gin.Context) {
	ov, err := d.Registry.Overview(requestID(c)).Build(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ov)
}
