package handlers

import (
	"net/http"
	"strings"

	"dashboard/internal/http/middleware"
	"dashboard/internal/query"

	"github.com/gin-gonic/gin"
)

// personalCriteria pins the userId filter to the caller. Admins may look at anyone via ?userId=.
func personalCriteria(c *gin.Context) query.Criteria {
	rc := middleware.GetRequestContext(c)
	criteria := criteriaFrom(c)
	if !rc.IsAdmin() || strings.TrimSpace(criteria["userId"]) == "" {
		criteria["userId"] = rc.UserID
	}
	return criteria
}

// GET /api/personal
func (d Dashboard) Personal(c *gin.Context) {
	userID := personalCriteria(c).Get("userId")
	page, err := d.Registry.Personal(requestID(c)).Page(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/personal/tasks?<filters>
func (d Dashboard) PersonalTasks(c *gin.Context) {
	p := pageParams(c, d.DefaultPageSize)
	res, err := d.Registry.Personal(requestID(c)).ListTasks(c.Request.Context(), personalCriteria(c), p.Page, p.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/personal/internal-tasks?<filters>
func (d Dashboard) InternalTasks(c *gin.Context) {
	p := pageParams(c, d.DefaultPageSize)
	res, err := d.Registry.Personal(requestID(c)).ListInternalTasks(c.Request.Context(), personalCriteria(c), p.Page, p.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
