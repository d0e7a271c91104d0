package services

import (
	"context"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

var contractSpec = query.Spec[models.Contract]{
	Fields: []query.Field[models.Contract]{
		{Name: "search", Kind: query.KindText, Values: query.Many(
			func(c models.Contract) string { return c.Company.Name },
			func(c models.Contract) string { return c.Supervisor.Name },
		)},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(c models.Contract) string { return c.Status })},
		{Name: "supervisor", Kind: query.KindEnum, Values: query.One(func(c models.Contract) string { return c.Supervisor.ID })},
		{Name: "company", Kind: query.KindEnum, Values: query.One(func(c models.Contract) string { return c.Company.ID })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(c models.Contract) string { return c.StartDate })},
		// open-ended contracts have no end date and always pass the bound
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(c models.Contract) string { return c.EndDate }), MissingMatches: true},
	},
	Compare: func(a, b models.Contract) int { return query.Desc(a.StartDate, b.StartDate) },
	Summarize: func(items []models.Contract) map[string]float64 {
		active := func(c models.Contract) bool { return c.Status == "active" }
		return map[string]float64{
			"totalContracts":      float64(len(items)),
			"activeContracts":     query.Count(items, active),
			"totalMonthlyRevenue": query.Sum(items, func(c models.Contract) float64 { return c.MonthlyRate }, active),
			"totalRevenue":        query.Sum(items, func(c models.Contract) float64 { return c.TotalPaid }, nil),
		}
	},
}

type ContractService struct {
	Source    repositories.Source[models.Contract]
	RequestID string
}

func (s ContractService) collection() collection[models.Contract] {
	return collection[models.Contract]{
		name:      "contracts",
		prefix:    "CNT",
		source:    s.Source,
		spec:      contractSpec,
		id:        func(c *models.Contract) *string { return &c.ID },
		requestID: s.RequestID,
	}
}

func (s ContractService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.Contract], error) {
	return s.collection().list(ctx, criteria, page, pageSize)
}

func (s ContractService) Get(ctx context.Context, id string) (models.Contract, error) {
	return s.collection().find(ctx, id)
}

func (s ContractService) Create(ctx context.Context, c models.Contract) (models.Contract, error) {
	c.TotalPaid = paidTotal(c.TotalPaid, c.Payments)
	return s.collection().create(ctx, c)
}

func (s ContractService) Update(ctx context.Context, id string, c models.Contract) (models.Contract, error) {
	c.TotalPaid = paidTotal(c.TotalPaid, c.Payments)
	return s.collection().update(ctx, id, c)
}

func (s ContractService) Delete(ctx context.Context, id string) (models.Contract, error) {
	return s.collection().remove(ctx, id)
}

// paidTotal sums paid instalments; without a payment list the submitted total stands.
func paidTotal(current float64, payments []models.Payment) float64 {
	if len(payments) == 0 {
		return current
	}
	return query.Sum(payments,
		func(p models.Payment) float64 { return p.Amount },
		func(p models.Payment) bool { return p.Status == "paid" })
}
