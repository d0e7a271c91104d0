package services

import (
	"context"
	"sync"

	"dashboard/internal/query"
	"dashboard/internal/utils"

	"golang.org/x/sync/errgroup"
)

// Overview holds the headline summaries of every collection, unfiltered.
type Overview struct {
	Courses   map[string]float64 `json:"courses"`
	FYP       map[string]float64 `json:"fyp"`
	Contracts map[string]float64 `json:"contracts"`
	Projects  map[string]float64 `json:"projects"`
	Invoices  map[string]float64 `json:"invoices"`
	Expenses  map[string]float64 `json:"expenses"`
	Income    map[string]float64 `json:"income"`
}

type OverviewService struct {
	Registry  Registry
	RequestID string
}

// Build queries each collection concurrently. The first source failure cancels the rest.
func (s OverviewService) Build(ctx context.Context) (Overview, error) {
	var (
		mu  sync.Mutex
		out Overview
	)
	g, ctx := errgroup.WithContext(ctx)
	all := query.Criteria{}

	collect := func(dst *map[string]float64, run func(context.Context) (map[string]float64, error)) {
		g.Go(func() error {
			sums, err := run(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			*dst = sums
			mu.Unlock()
			return nil
		})
	}

	collect(&out.Courses, func(ctx context.Context) (map[string]float64, error) {
		res, err := s.Registry.Courses(s.RequestID).List(ctx, all, 1, 1)
		return res.Summaries, err
	})
	collect(&out.FYP, func(ctx context.Context) (map[string]float64, error) {
		res, err := s.Registry.FYP(s.RequestID).List(ctx, all, 1, 1)
		return res.Summaries, err
	})
	collect(&out.Contracts, func(ctx context.Context) (map[string]float64, error) {
		res, err := s.Registry.Contracts(s.RequestID).List(ctx, all, 1, 1)
		return res.Summaries, err
	})
	collect(&out.Projects, func(ctx context.Context) (map[string]float64, error) {
		res, err := s.Registry.Projects(s.RequestID).List(ctx, all, 1, 1)
		return res.Summaries, err
	})
	collect(&out.Invoices, func(ctx context.Context) (map[string]float64, error) {
		res, err := s.Registry.Invoices(s.RequestID).List(ctx, all, 1, 1)
		return res.Summaries, err
	})
	collect(&out.Expenses, func(ctx context.Context) (map[string]float64, error) {
		res, err := s.Registry.Expenses(s.RequestID).List(ctx, all, 1, 1)
		return res.Summaries, err
	})
	collect(&out.Income, func(ctx context.Context) (map[string]float64, error) {
		res, err := s.Registry.Income(s.RequestID).List(ctx, all, 1, 1)
		return res.Summaries, err
	})

	if err := g.Wait(); err != nil {
		utils.LogEvent(s.RequestID, "overview", "build_failed", err.Error())
		return Overview{}, err
	}
	return out, nil
}
