package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"dashboard/internal/domain"
	"dashboard/internal/http/middleware"
	"dashboard/internal/query"
	"dashboard/internal/services"
	"dashboard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames makes gin's binding errors name fields the way clients send them.
func UseJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(services.JSONFieldName)
	}
}

// BindJSONOrError ensures body is present and valid. Validator failures become per-field details.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondDomainError(c, services.ValidationFromError(err))
		return false
	}
	return true
}

// criteriaFrom turns the query string into filter criteria. Paging params are excluded.
func criteriaFrom(c *gin.Context) query.Criteria {
	out := query.Criteria{}
	for k, vs := range c.Request.URL.Query() {
		if k == "page" || k == "pageSize" || len(vs) == 0 {
			continue
		}
		out[k] = vs[0]
	}
	return out
}

// pageParams reads page and pageSize leniently; anything unparsable falls back to defaults.
func pageParams(c *gin.Context, defaultSize int) domain.Pagination {
	p := domain.Pagination{
		Page:     atoiOr(c.Query("page"), 1),
		PageSize: atoiOr(c.Query("pageSize"), defaultSize),
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	return p
}

func atoiOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

func sendPDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+utils.SafeFilename(filename)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
