package services

import (
	"context"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

var fypSpec = query.Spec[models.FinalYearProject]{
	Fields: []query.Field[models.FinalYearProject]{
		{Name: "search", Kind: query.KindText, Values: func(p models.FinalYearProject) []string {
			out := []string{p.Title, p.Description}
			for _, st := range p.Students {
				out = append(out, st.Name)
			}
			return out
		}},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(p models.FinalYearProject) string { return p.Status })},
		{Name: "programmer", Kind: query.KindEnum, Values: func(p models.FinalYearProject) []string {
			ids := make([]string, 0, len(p.Programmers))
			for _, pr := range p.Programmers {
				ids = append(ids, pr.ID)
			}
			return ids
		}},
		{Name: "university", Kind: query.KindEnum, Values: func(p models.FinalYearProject) []string {
			out := make([]string, 0, len(p.Students))
			for _, st := range p.Students {
				out = append(out, st.University)
			}
			return out
		}},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(p models.FinalYearProject) string { return p.StartDate })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(p models.FinalYearProject) string { return p.EndDate })},
	},
	Compare: func(a, b models.FinalYearProject) int { return query.Desc(a.StartDate, b.StartDate) },
	Summarize: func(items []models.FinalYearProject) map[string]float64 {
		return map[string]float64{
			"totalProjects":   float64(len(items)),
			"inProgress":      query.Count(items, func(p models.FinalYearProject) bool { return p.Status == "in_progress" }),
			"completed":       query.Count(items, func(p models.FinalYearProject) bool { return p.Status == "completed" }),
			"totalValue":      query.Sum(items, func(p models.FinalYearProject) float64 { return p.Price }, nil),
			"collectedAmount": query.Sum(items, func(p models.FinalYearProject) float64 { return p.AmountPaid }, nil),
		}
	},
}

type FYPService struct {
	Source    repositories.Source[models.FinalYearProject]
	RequestID string
}

func (s FYPService) collection() collection[models.FinalYearProject] {
	return collection[models.FinalYearProject]{
		name:      "fyp",
		prefix:    "FYP",
		source:    s.Source,
		spec:      fypSpec,
		id:        func(p *models.FinalYearProject) *string { return &p.ID },
		requestID: s.RequestID,
	}
}

func (s FYPService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.FinalYearProject], error) {
	return s.collection().list(ctx, criteria, page, pageSize)
}

func (s FYPService) Get(ctx context.Context, id string) (models.FinalYearProject, error) {
	return s.collection().find(ctx, id)
}

func (s FYPService) Create(ctx context.Context, p models.FinalYearProject) (models.FinalYearProject, error) {
	p.PaymentStatus = paymentStatus(p.AmountPaid, p.Price)
	return s.collection().create(ctx, p)
}

func (s FYPService) Update(ctx context.Context, id string, p models.FinalYearProject) (models.FinalYearProject, error) {
	p.PaymentStatus = paymentStatus(p.AmountPaid, p.Price)
	return s.collection().update(ctx, id, p)
}

func (s FYPService) Delete(ctx context.Context, id string) (models.FinalYearProject, error) {
	return s.collection().remove(ctx, id)
}

// paymentStatus derives paid/partial/pending from the amount collected against the price.
func paymentStatus(paid, price float64) string {
	switch {
	case price > 0 && paid >= price:
		return "paid"
	case paid > 0:
		return "partial"
	default:
		return "pending"
	}
}
