package services

import (
	"context"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

var invoiceSpec = query.Spec[models.Invoice]{
	Fields: []query.Field[models.Invoice]{
		{Name: "search", Kind: query.KindText, Values: query.Many(
			func(i models.Invoice) string { return i.Description },
			func(i models.Invoice) string { return i.Employee },
			func(i models.Invoice) string { return i.Reference },
		)},
		{Name: "type", Kind: query.KindEnum, Values: query.One(func(i models.Invoice) string { return i.Type })},
		{Name: "category", Kind: query.KindEnum, Values: query.One(func(i models.Invoice) string { return i.Category })},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(i models.Invoice) string { return i.Status })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(i models.Invoice) string { return i.Date })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(i models.Invoice) string { return i.Date })},
	},
	Compare:   func(a, b models.Invoice) int { return query.Desc(a.Date, b.Date) },
	Summarize: summarizeInvoices,
}

func summarizeInvoices(items []models.Invoice) map[string]float64 {
	amount := func(i models.Invoice) float64 { return i.Amount }
	income := query.Sum(items, amount, func(i models.Invoice) bool { return i.Type == "income" })
	outcome := query.Sum(items, amount, func(i models.Invoice) bool { return i.Type == "outcome" })
	return map[string]float64{
		"totalInvoices":   float64(len(items)),
		"totalIncome":     income,
		"totalOutcome":    outcome,
		"netBalance":      income - outcome,
		"pendingInvoices": query.Count(items, func(i models.Invoice) bool { return i.Status == "pending" }),
	}
}

type InvoiceService struct {
	Source    repositories.Source[models.Invoice]
	RequestID string
}

func (s InvoiceService) collection() collection[models.Invoice] {
	return collection[models.Invoice]{
		name:      "invoices",
		prefix:    "INV",
		source:    s.Source,
		spec:      invoiceSpec,
		id:        func(i *models.Invoice) *string { return &i.ID },
		requestID: s.RequestID,
	}
}

func (s InvoiceService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.Invoice], error) {
	return s.collection().list(ctx, criteria, page, pageSize)
}

// Filtered returns every invoice matching criteria in display order, unpaginated. Used by exports.
func (s InvoiceService) Filtered(ctx context.Context, criteria query.Criteria) ([]models.Invoice, map[string]float64, error) {
	records, err := s.collection().fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	res := query.Run(records, invoiceSpec, criteria, 1, max(len(records), 1))
	return res.Items, res.Summaries, nil
}

func (s InvoiceService) Get(ctx context.Context, id string) (models.Invoice, error) {
	return s.collection().find(ctx, id)
}

func (s InvoiceService) Create(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	if inv.Status == "" {
		inv.Status = "pending"
	}
	return s.collection().create(ctx, inv)
}

func (s InvoiceService) Update(ctx context.Context, id string, inv models.Invoice) (models.Invoice, error) {
	return s.collection().update(ctx, id, inv)
}

func (s InvoiceService) Delete(ctx context.Context, id string) (models.Invoice, error) {
	return s.collection().remove(ctx, id)
}
