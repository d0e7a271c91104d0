package services

import (
	"context"
	"math"
	"slices"
	"strings"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

func taskStatusCounts[T any](items []T, status func(T) string) map[string]float64 {
	return map[string]float64{
		"totalTasks":  float64(len(items)),
		"completed":   query.Count(items, func(t T) bool { return status(t) == "completed" }),
		"inProgress":  query.Count(items, func(t T) bool { return status(t) == "in_progress" }),
		"pending":     query.Count(items, func(t T) bool { return status(t) == "pending" }),
		"successRate": Percent(query.Count(items, func(t T) bool { return status(t) == "completed" }), float64(len(items))),
	}
}

var userTaskSpec = query.Spec[models.UserTask]{
	Fields: []query.Field[models.UserTask]{
		{Name: "search", Kind: query.KindText, Values: query.Many(
			func(t models.UserTask) string { return t.Title },
			func(t models.UserTask) string { return t.Description },
		)},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(t models.UserTask) string { return t.Status })},
		{Name: "priority", Kind: query.KindEnum, Values: query.One(func(t models.UserTask) string { return t.Priority })},
		{Name: "userId", Kind: query.KindEnum, Values: query.One(func(t models.UserTask) string { return t.UserID })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(t models.UserTask) string { return t.DueDate })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(t models.UserTask) string { return t.DueDate })},
	},
	// nearest deadline first
	Compare: func(a, b models.UserTask) int { return strings.Compare(a.DueDate, b.DueDate) },
	Summarize: func(items []models.UserTask) map[string]float64 {
		out := taskStatusCounts(items, func(t models.UserTask) string { return t.Status })
		out["averageCompletion"] = 0
		if len(items) > 0 {
			sum := query.Sum(items, func(t models.UserTask) float64 { return float64(t.CompletionPercentage) }, nil)
			out["averageCompletion"] = math.Round(sum / float64(len(items)))
		}
		return out
	},
}

var internalTaskSpec = query.Spec[models.InternalTask]{
	Fields: []query.Field[models.InternalTask]{
		{Name: "search", Kind: query.KindText, Values: query.Many(
			func(t models.InternalTask) string { return t.Title },
			func(t models.InternalTask) string { return t.Description },
		)},
		{Name: "status", Kind: query.KindEnum, Values: query.One(func(t models.InternalTask) string { return t.Status })},
		{Name: "type", Kind: query.KindEnum, Values: query.One(func(t models.InternalTask) string { return t.Type })},
		{Name: "userId", Kind: query.KindEnum, Values: query.One(func(t models.InternalTask) string { return t.UserID })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(t models.InternalTask) string { return t.DueDate })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(t models.InternalTask) string { return t.DueDate })},
	},
	Compare: func(a, b models.InternalTask) int { return query.Desc(a.AssignedDate, b.AssignedDate) },
	Summarize: func(items []models.InternalTask) map[string]float64 {
		bonus := func(t models.InternalTask) float64 { return t.BonusAmount }
		out := taskStatusCounts(items, func(t models.InternalTask) string { return t.Status })
		out["totalBonus"] = query.Sum(items, bonus, nil)
		out["earnedBonus"] = query.Sum(items, bonus, func(t models.InternalTask) bool { return t.Status == "completed" })
		return out
	},
}

// PersonalStats are the headline numbers of one team member's page.
type PersonalStats struct {
	WorkHours        float64 `json:"workHours"`
	TargetWorkHours  float64 `json:"targetWorkHours"`
	WorkHoursPercent float64 `json:"workHoursPercent"`
	TotalIncome      float64 `json:"totalIncome"`
	BaseSalary       float64 `json:"baseSalary"`
	BonusAmount      float64 `json:"bonusAmount"`
	ExpectedSalary   float64 `json:"expectedSalary"`
	TaskSuccessRate  float64 `json:"taskSuccessRate"`
	CompletedTasks   int     `json:"completedTasks"`
	TotalTasks       int     `json:"totalTasks"`
}

type PersonalPage struct {
	UserID        string                            `json:"userId"`
	Stats         PersonalStats                     `json:"stats"`
	Tasks         query.Result[models.UserTask]     `json:"tasks"`
	InternalTasks query.Result[models.InternalTask] `json:"internalTasks"`
	Income        []models.UserIncome               `json:"income"`
	WorkHours     []models.WorkHours                `json:"workHours"`
}

// PersonalService backs the personal page: tasks, bonuses, income and hours of one user.
type PersonalService struct {
	Employment    repositories.Source[models.Employment]
	UserTasks     repositories.Source[models.UserTask]
	InternalTasks repositories.Source[models.InternalTask]
	Income        repositories.Source[models.UserIncome]
	WorkHours     repositories.Source[models.WorkHours]
	RequestID     string
}

func (s PersonalService) tasks() collection[models.UserTask] {
	return collection[models.UserTask]{
		name:      "tasks",
		source:    s.UserTasks,
		spec:      userTaskSpec,
		id:        func(t *models.UserTask) *string { return &t.ID },
		requestID: s.RequestID,
	}
}

func (s PersonalService) internalTasks() collection[models.InternalTask] {
	return collection[models.InternalTask]{
		name:      "internal_tasks",
		source:    s.InternalTasks,
		spec:      internalTaskSpec,
		id:        func(t *models.InternalTask) *string { return &t.ID },
		requestID: s.RequestID,
	}
}

func (s PersonalService) ListTasks(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.UserTask], error) {
	return s.tasks().list(ctx, criteria, page, pageSize)
}

func (s PersonalService) ListInternalTasks(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.InternalTask], error) {
	return s.internalTasks().list(ctx, criteria, page, pageSize)
}

// Page assembles the personal page of userID. NotFoundError when the user has no employment terms.
func (s PersonalService) Page(ctx context.Context, userID string) (PersonalPage, error) {
	terms, err := collection[models.Employment]{name: "employment", source: s.Employment}.fetch(ctx)
	if err != nil {
		return PersonalPage{}, err
	}
	i := slices.IndexFunc(terms, func(e models.Employment) bool { return e.UserID == userID })
	if i < 0 {
		return PersonalPage{}, domain.NotFoundError{Resource: "employment", ID: userID}
	}
	emp := terms[i]

	mine := query.Criteria{"userId": userID}
	tasks, err := s.ListTasks(ctx, mine, 1, math.MaxInt)
	if err != nil {
		return PersonalPage{}, err
	}
	internal, err := s.ListInternalTasks(ctx, mine, 1, math.MaxInt)
	if err != nil {
		return PersonalPage{}, err
	}
	income, err := ownedBy(ctx, "user_income", s.Income, userID, func(in models.UserIncome) (string, string) { return in.UserID, in.Date })
	if err != nil {
		return PersonalPage{}, err
	}
	hours, err := ownedBy(ctx, "work_hours", s.WorkHours, userID, func(w models.WorkHours) (string, string) { return w.UserID, w.Date })
	if err != nil {
		return PersonalPage{}, err
	}

	worked := query.Sum(hours, func(w models.WorkHours) float64 { return w.Hours }, nil)
	bonus := internal.Summaries["earnedBonus"]
	return PersonalPage{
		UserID: userID,
		Stats: PersonalStats{
			WorkHours:        worked,
			TargetWorkHours:  emp.TargetWorkHours,
			WorkHoursPercent: Percent(worked, emp.TargetWorkHours),
			TotalIncome:      query.Sum(income, func(in models.UserIncome) float64 { return in.Amount }, nil),
			BaseSalary:       emp.BaseSalary,
			BonusAmount:      bonus,
			ExpectedSalary:   emp.BaseSalary + bonus,
			TaskSuccessRate:  tasks.Summaries["successRate"],
			CompletedTasks:   int(tasks.Summaries["completed"]),
			TotalTasks:       tasks.TotalItems,
		},
		Tasks:         tasks,
		InternalTasks: internal,
		Income:        income,
		WorkHours:     hours,
	}, nil
}

// ownedBy returns the records of userID, newest first.
func ownedBy[T any](ctx context.Context, name string, src repositories.Source[T], userID string, key func(T) (owner, date string)) ([]T, error) {
	records, err := collection[T]{name: name, source: src}.fetch(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if owner, _ := key(r); owner == userID {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		_, da := key(a)
		_, db := key(b)
		return query.Desc(da, db)
	})
	return out, nil
}
