package services

import (
	"context"

	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

var courseSpec = query.Spec[models.Course]{
	Fields: []query.Field[models.Course]{
		{Name: "search", Kind: query.KindText, Values: query.Many(
			func(c models.Course) string { return c.Name },
			func(c models.Course) string { return c.Description },
			func(c models.Course) string { return c.Teacher.Name },
		)},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(c models.Course) string { return c.Status })},
		{Name: "teacher", Kind: query.KindEnum, Values: query.One(func(c models.Course) string { return c.Teacher.ID })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(c models.Course) string { return c.StartDate })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(c models.Course) string { return c.EndDate })},
	},
	Compare: func(a, b models.Course) int { return query.Desc(a.StartDate, b.StartDate) },
	Summarize: func(items []models.Course) map[string]float64 {
		byStatus := func(s string) func(models.Course) bool {
			return func(c models.Course) bool { return c.Status == s }
		}
		return map[string]float64{
			"totalCourses":  float64(len(items)),
			"ongoing":       query.Count(items, byStatus("ongoing")),
			"upcoming":      query.Count(items, byStatus("upcoming")),
			"completed":     query.Count(items, byStatus("completed")),
			"totalStudents": query.Sum(items, func(c models.Course) float64 { return float64(c.TotalStudents) }, nil),
			"totalRevenue":  query.Sum(items, courseRevenue, nil),
		}
	},
}

// courseRevenue is what enrolled students have paid so far.
func courseRevenue(c models.Course) float64 {
	return query.Sum(c.Students, func(s models.CourseStudent) float64 { return s.Amount }, nil)
}

type CourseService struct {
	Source    repositories.Source[models.Course]
	RequestID string
}

func (s CourseService) collection() collection[models.Course] {
	return collection[models.Course]{
		name:      "courses",
		prefix:    "CRS",
		source:    s.Source,
		spec:      courseSpec,
		id:        func(c *models.Course) *string { return &c.ID },
		requestID: s.RequestID,
	}
}

func (s CourseService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.Course], error) {
	return s.collection().list(ctx, criteria, page, pageSize)
}

func (s CourseService) Get(ctx context.Context, id string) (models.Course, error) {
	return s.collection().find(ctx, id)
}

// Create keeps TotalStudents in step with the submitted roster.
func (s CourseService) Create(ctx context.Context, c models.Course) (models.Course, error) {
	c.TotalStudents = len(c.Students)
	return s.collection().create(ctx, c)
}

func (s CourseService) Update(ctx context.Context, id string, c models.Course) (models.Course, error) {
	c.TotalStudents = len(c.Students)
	return s.collection().update(ctx, id, c)
}

func (s CourseService) Delete(ctx context.Context, id string) (models.Course, error) {
	return s.collection().remove(ctx, id)
}
