package services

import (
	"context"
	"fmt"
	"strings"

	"dashboard/internal/domain"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
	"dashboard/internal/utils"

	"github.com/google/uuid"
)

// collection wires one record source to its query spec. Every domain service delegates to it.
type collection[T any] struct {
	name      string
	prefix    string
	source    repositories.Source[T]
	spec      query.Spec[T]
	id        func(*T) *string
	requestID string
}

func (c collection[T]) fetch(ctx context.Context) ([]T, error) {
	if c.source == nil {
		return []T{}, nil
	}
	records, err := c.source.FetchAll(ctx)
	if err != nil {
		return nil, domain.SourceError{Source: c.name, Err: err}
	}
	return records, nil
}

func (c collection[T]) list(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[T], error) {
	records, err := c.fetch(ctx)
	if err != nil {
		utils.LogEvent(c.requestID, c.name, "list_failed", err.Error())
		return query.Result[T]{}, err
	}
	return query.Run(records, c.spec, criteria, page, pageSize), nil
}

func (c collection[T]) find(ctx context.Context, id string) (T, error) {
	var zero T
	records, err := c.fetch(ctx)
	if err != nil {
		return zero, err
	}
	id = strings.TrimSpace(id)
	for _, rec := range records {
		if *c.id(&rec) == id {
			return rec, nil
		}
	}
	return zero, domain.NotFoundError{Resource: c.name, ID: id}
}

// create validates rec and hands it back with a fresh id. The source is left untouched.
func (c collection[T]) create(ctx context.Context, rec T) (T, error) {
	if err := validatePayload(rec); err != nil {
		return rec, err
	}
	if ptr := c.id(&rec); strings.TrimSpace(*ptr) == "" {
		*ptr = newID(c.prefix)
	}
	utils.LogEvent(c.requestID, c.name, "create_accepted", "id="+*c.id(&rec))
	return rec, ctx.Err()
}

func (c collection[T]) update(ctx context.Context, id string, rec T) (T, error) {
	if _, err := c.find(ctx, id); err != nil {
		return rec, err
	}
	if err := validatePayload(rec); err != nil {
		return rec, err
	}
	*c.id(&rec) = strings.TrimSpace(id)
	utils.LogEvent(c.requestID, c.name, "update_accepted", "id="+id)
	return rec, nil
}

func (c collection[T]) remove(ctx context.Context, id string) (T, error) {
	rec, err := c.find(ctx, id)
	if err != nil {
		return rec, err
	}
	utils.LogEvent(c.requestID, c.name, "delete_accepted", "id="+id)
	return rec, nil
}

func newID(prefix string) string {
	short := strings.ToUpper(uuid.NewString()[:8])
	if prefix == "" {
		return short
	}
	return fmt.Sprintf("%s-%s", prefix, short)
}
