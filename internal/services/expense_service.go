package services

import (
	"context"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

var expenseSpec = query.Spec[models.CompanyExpense]{
	Fields: []query.Field[models.CompanyExpense]{
		{Name: "search", Kind: query.KindText, Values: query.One(func(e models.CompanyExpense) string { return e.Description })},
		{Name: "category", Kind: query.KindEnum, Values: query.One(func(e models.CompanyExpense) string { return e.Category })},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(e models.CompanyExpense) string { return e.Status })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(e models.CompanyExpense) string { return e.Date })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(e models.CompanyExpense) string { return e.Date })},
	},
	Compare: func(a, b models.CompanyExpense) int { return query.Desc(a.Date, b.Date) },
	Summarize: func(items []models.CompanyExpense) map[string]float64 {
		byStatus := func(s string) func(models.CompanyExpense) bool {
			return func(e models.CompanyExpense) bool { return e.Status == s }
		}
		return map[string]float64{
			"totalExpenses": float64(len(items)),
			"totalAmount":   query.Sum(items, func(e models.CompanyExpense) float64 { return e.Amount }, nil),
			"pending":       query.Count(items, byStatus("pending")),
			"approved":      query.Count(items, byStatus("approved")),
			"paid":          query.Count(items, byStatus("paid")),
		}
	},
}

type ExpenseService struct {
	Source    repositories.Source[models.CompanyExpense]
	RequestID string
}

func (s ExpenseService) collection() collection[models.CompanyExpense] {
	return collection[models.CompanyExpense]{
		name:      "expenses",
		prefix:    "EXP",
		source:    s.Source,
		spec:      expenseSpec,
		id:        func(e *models.CompanyExpense) *string { return &e.ID },
		requestID: s.RequestID,
	}
}

func (s ExpenseService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.CompanyExpense], error) {
	return s.collection().list(ctx, criteria, page, pageSize)
}

// Create records a new expense request. New expenses start as pending approval.
func (s ExpenseService) Create(ctx context.Context, e models.CompanyExpense) (models.CompanyExpense, error) {
	if e.Status == "" {
		e.Status = "pending"
	}
	return s.collection().create(ctx, e)
}
