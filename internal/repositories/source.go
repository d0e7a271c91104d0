package repositories

import (
	"context"
	"slices"
)

// Source hands the query engine a full collection. Implementations must return a slice
// the caller may keep; the engine never writes to it.
type Source[T any] interface {
	FetchAll(ctx context.Context) ([]T, error)
}

// StaticSource serves an immutable in-memory collection.
type StaticSource[T any] struct {
	Records []T
}

func NewStaticSource[T any](records []T) StaticSource[T] {
	return StaticSource[T]{Records: slices.Clone(records)}
}

func (s StaticSource[T]) FetchAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.Records), nil
}

// SourceFunc adapts a plain function, handy in tests.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

func (f SourceFunc[T]) FetchAll(ctx context.Context) ([]T, error) {
	return f(ctx)
}
