package handlers

import (
	"net/http"

	"dashboard/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/overview
func (d Dashboard) FundOverview(c *gin.Context) {
	ov, err := d.Registry.Funds(requestID(c)).Overview(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ov)
}

// GET /api/admin/funds/:id/transactions?<filters>
func (d Dashboard) FundTransactions(c *gin.Context) {
	p := pageParams(c, d.DefaultPageSize)
	res, err := d.Registry.Funds(requestID(c)).Transactions(c.Request.Context(), c.Param("id"), criteriaFrom(c), p.Page, p.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/funds/report.pdf
func (d Dashboard) FundReport(c *gin.Context) {
	data, filename, err := d.Registry.Exports(requestID(c)).FundReport(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}

// GET /api/admin/expenses?<filters>
func (d Dashboard) ListExpenses(c *gin.Context) {
	p := pageParams(c, d.DefaultPageSize)
	res, err := d.Registry.Expenses(requestID(c)).List(c.Request.Context(), criteriaFrom(c), p.Page, p.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/admin/expenses
func (d Dashboard) CreateExpense(c *gin.Context) {
	var e models.CompanyExpense
	if !BindJSONOrError(c, &e) {
		return
	}
	out, err := d.Registry.Expenses(requestID(c)).Create(c.Request.Context(), e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// POST /api/admin/transfers
func (d Dashboard) Transfer(c *gin.Context) {
	var t models.Transfer
	if !BindJSONOrError(c, &t) {
		return
	}
	lines, err := d.Registry.Funds(requestID(c)).Transfer(c.Request.Context(), t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"transactions": lines})
}

// GET /api/admin/notifications?<filters>
func (d Dashboard) ListNotifications(c *gin.Context) {
	p := pageParams(c, d.DefaultPageSize)
	res, err := d.Registry.Notifications(requestID(c)).List(c.Request.Context(), criteriaFrom(c), p.Page, p.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/users
func (d Dashboard) ListUsers(c *gin.Context) {
	users, err := d.Registry.Funds(requestID(c)).Users(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
