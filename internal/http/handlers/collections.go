package handlers

import (
	"context"
	"net/http"

	"dashboard/internal/query"

	"github.com/gin-gonic/gin"
)

// Collection is what every dashboard list page talks to.
type Collection[T any] interface {
	List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[T], error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) (T, error)
}

// CollectionHandlers serves one collection. Service is built per request so logs carry the request id.
type CollectionHandlers[T any] struct {
	Service         func(requestID string) Collection[T]
	DefaultPageSize int
}

// GET /api/<collection>?<filters>&page=&pageSize=
func (h CollectionHandlers[T]) List(c *gin.Context) {
	p := pageParams(c, h.DefaultPageSize)
	res, err := h.Service(requestID(c)).List(c.Request.Context(), criteriaFrom(c), p.Page, p.PageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/<collection>/:id
func (h CollectionHandlers[T]) Get(c *gin.Context) {
	rec, err := h.Service(requestID(c)).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/<collection>; accepted but not persisted.
func (h CollectionHandlers[T]) Create(c *gin.Context) {
	var rec T
	if !BindJSONOrError(c, &rec) {
		return
	}
	out, err := h.Service(requestID(c)).Create(c.Request.Context(), rec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// PUT /api/<collection>/:id
func (h CollectionHandlers[T]) Update(c *gin.Context) {
	var rec T
	if !BindJSONOrError(c, &rec) {
		return
	}
	out, err := h.Service(requestID(c)).Update(c.Request.Context(), c.Param("id"), rec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// DELETE /api/<collection>/:id
func (h CollectionHandlers[T]) Delete(c *gin.Context) {
	out, err := h.Service(requestID(c)).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// Mount registers the five routes on g.
func (h CollectionHandlers[T]) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
