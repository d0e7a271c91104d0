package services

import (
	"context"
	"errors"
	"testing"

	"dashboard/internal/domain"
	"dashboard/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOverviewFailsWhenDatabaseIsDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	refused := errors.New("dial tcp: connection refused")
	mock.MatchExpectationsInOrder(false)
	for range 2 {
		mock.ExpectQuery("information_schema\\.tables").WithArgs("invoices").WillReturnError(refused)
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs("company_expenses").WillReturnError(refused)

	reg := seedRegistry(t)
	reg.Sources.Invoices = repositories.InvoiceRepository{DB: db}
	reg.Sources.Expenses = repositories.ExpenseRepository{DB: db}

	if _, err := reg.Invoices("").List(context.Background(), nil, 1, 8); !domain.IsSource(err) || !errors.Is(err, refused) {
		t.Fatalf("expected source error for invoices, got %v", err)
	}
	if _, err := reg.Overview("").Build(context.Background()); !domain.IsSource(err) {
		t.Fatalf("expected overview to fail with a source error, got %v", err)
	}
}
