package services

import (
	"cmp"
	"context"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

var priorityRank = map[string]int{"urgent": 0, "high": 1, "medium": 2, "low": 3}

func rankOf(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return len(priorityRank)
}

var projectSpec = query.Spec[models.Project]{
	Fields: []query.Field[models.Project]{
		{Name: "search", Kind: query.KindText, Values: query.Many(
			func(p models.Project) string { return p.Title },
			func(p models.Project) string { return p.Description },
		)},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(p models.Project) string { return p.Status })},
		{Name: "programmer", Kind: query.KindEnum, Values: func(p models.Project) []string {
			ids := make([]string, 0, len(p.Programmers))
			for _, pr := range p.Programmers {
				ids = append(ids, pr.ProgrammerID)
			}
			return ids
		}},
		{Name: "client", Kind: query.KindEnum, Values: func(p models.Project) []string {
			ids := make([]string, 0, len(p.Clients))
			for _, c := range p.Clients {
				ids = append(ids, c.ID)
			}
			return ids
		}},
		{Name: "priority", Kind: query.KindEnum, Values: query.One(func(p models.Project) string { return p.Priority })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(p models.Project) string { return p.StartDate })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(p models.Project) string { return p.TargetEndDate })},
	},
	Compare: func(a, b models.Project) int {
		if c := cmp.Compare(rankOf(a.Priority), rankOf(b.Priority)); c != 0 {
			return c
		}
		return query.Desc(a.StartDate, b.StartDate)
	},
	Summarize: func(items []models.Project) map[string]float64 {
		return map[string]float64{
			"totalProjects":   float64(len(items)),
			"inProgress":      query.Count(items, func(p models.Project) bool { return p.Status == "in_progress" }),
			"totalValue":      query.Sum(items, func(p models.Project) float64 { return p.Budget }, nil),
			"collectedAmount": query.Sum(items, func(p models.Project) float64 { return p.TotalPaid }, nil),
		}
	},
}

type ProjectService struct {
	Source    repositories.Source[models.Project]
	RequestID string
}

func (s ProjectService) collection() collection[models.Project] {
	return collection[models.Project]{
		name:      "projects",
		prefix:    "PRJ",
		source:    s.Source,
		spec:      projectSpec,
		id:        func(p *models.Project) *string { return &p.ID },
		requestID: s.RequestID,
	}
}

func (s ProjectService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.Project], error) {
	return s.collection().list(ctx, criteria, page, pageSize)
}

func (s ProjectService) Get(ctx context.Context, id string) (models.Project, error) {
	return s.collection().find(ctx, id)
}

func (s ProjectService) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.TotalPaid = paidTotal(p.TotalPaid, p.Payments)
	return s.collection().create(ctx, p)
}

func (s ProjectService) Update(ctx context.Context, id string, p models.Project) (models.Project, error) {
	p.TotalPaid = paidTotal(p.TotalPaid, p.Payments)
	return s.collection().update(ctx, id, p)
}

func (s ProjectService) Delete(ctx context.Context, id string) (models.Project, error) {
	return s.collection().remove(ctx, id)
}
