package services

import (
	"context"
	"errors"
	"testing"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/repositories"
)

func TestOverviewBuild(t *testing.T) {
	reg := seedRegistry(t)
	ov, err := reg.Overview("").Build(context.Background())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if ov.Invoices["netBalance"] != 32160 || ov.Courses["totalCourses"] != 5 || ov.Projects["totalProjects"] != 5 {
		t.Fatalf("unexpected overview: %+v", ov)
	}
	if ov.Income["total"] != 28800 {
		t.Fatalf("expected income total 28800, got %v", ov.Income["total"])
	}
}

func TestOverviewStopsOnSourceFailure(t *testing.T) {
	reg := seedRegistry(t)
	reg.Sources.Contracts = repositories.SourceFunc[models.Contract](func(context.Context) ([]models.Contract, error) {
		return nil, errors.New("db down")
	})
	if _, err := reg.Overview("").Build(context.Background()); !domain.IsSource(err) {
		t.Fatalf("expected source error, got %v", err)
	}
}
