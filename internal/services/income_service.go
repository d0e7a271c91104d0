package services

import (
	"context"
	"slices"
	"strings"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
	"dashboard/internal/utils"
)

// IncomeCategories are the revenue streams a shift collects.
var IncomeCategories = []string{"course", "fyp", "project", "contract"}

var incomeSpec = query.Spec[models.Income]{
	Fields: []query.Field[models.Income]{
		{Name: "search", Kind: query.KindText, Values: query.One(func(i models.Income) string { return i.Description })},
		{Name: "category", Kind: query.KindEnum, Values: query.One(func(i models.Income) string { return i.Category })},
		{Name: "shiftId", Kind: query.KindEnum, Values: query.One(func(i models.Income) string { return i.ShiftID })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(i models.Income) string { return i.Date })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(i models.Income) string { return i.Date })},
	},
	Compare: func(a, b models.Income) int { return query.Desc(a.Date, b.Date) },
	Summarize: func(items []models.Income) map[string]float64 {
		out := categoryTotals(items)
		out["total"] = query.Sum(items, func(i models.Income) float64 { return i.Amount }, nil)
		out["entries"] = float64(len(items))
		return out
	},
}

func categoryTotals(items []models.Income) map[string]float64 {
	out := make(map[string]float64, len(IncomeCategories))
	for _, c := range IncomeCategories {
		out[c] = 0
	}
	for _, i := range items {
		out[i.Category] += i.Amount
	}
	return out
}

// DailyIncome is the income of one calendar day.
type DailyIncome struct {
	Date       string             `json:"date"`
	Total      float64            `json:"total"`
	Count      int                `json:"count"`
	Categories map[string]float64 `json:"categories"`
}

// ShiftSummary is a shift with its recorded income.
type ShiftSummary struct {
	Shift      models.Shift       `json:"shift"`
	Total      float64            `json:"total"`
	Categories map[string]float64 `json:"categories"`
	Entries    int                `json:"entries"`
}

type IncomeService struct {
	Shifts    repositories.Source[models.Shift]
	Income    repositories.Source[models.Income]
	RequestID string
}

func (s IncomeService) collection() collection[models.Income] {
	return collection[models.Income]{
		name:      "income",
		prefix:    "INC",
		source:    s.Income,
		spec:      incomeSpec,
		id:        func(i *models.Income) *string { return &i.ID },
		requestID: s.RequestID,
	}
}

func (s IncomeService) List(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Result[models.Income], error) {
	return s.collection().list(ctx, criteria, page, pageSize)
}

// CurrentShift returns the open shift; NotFoundError when every shift is closed.
func (s IncomeService) CurrentShift(ctx context.Context) (ShiftSummary, error) {
	shifts, err := collection[models.Shift]{name: "shifts", source: s.Shifts}.fetch(ctx)
	if err != nil {
		return ShiftSummary{}, err
	}
	i := slices.IndexFunc(shifts, func(sh models.Shift) bool { return sh.Status == "open" })
	if i < 0 {
		return ShiftSummary{}, domain.NotFoundError{Resource: "open shift"}
	}
	return s.summarizeShift(ctx, shifts[i])
}

// OpenShift hands back a new open shift. Only one shift may be open at a time.
func (s IncomeService) OpenShift(ctx context.Context) (models.Shift, error) {
	cur, err := s.CurrentShift(ctx)
	switch {
	case err == nil:
		return models.Shift{}, domain.ConflictError{Resource: "shift", Msg: "shift " + cur.Shift.ID + " is still open"}
	case !domain.IsNotFound(err):
		return models.Shift{}, err
	}
	sh := models.Shift{
		ID:        newID("SHIFT"),
		StartTime: utils.FormatDateTime(utils.NowUTC()),
		Status:    "open",
	}
	utils.LogEvent(s.RequestID, "shifts", "open_accepted", "id="+sh.ID)
	return sh, nil
}

// CloseShift returns the open shift closed, with its income totalled.
func (s IncomeService) CloseShift(ctx context.Context) (ShiftSummary, error) {
	cur, err := s.CurrentShift(ctx)
	if err != nil {
		return ShiftSummary{}, err
	}
	cur.Shift.Status = "closed"
	cur.Shift.EndTime = utils.FormatDateTime(utils.NowUTC())
	cur.Shift.TotalIncome = cur.Total
	utils.LogEvent(s.RequestID, "shifts", "close_accepted",
		"id="+cur.Shift.ID+" total="+utils.FormatMoney(cur.Total))
	return cur, nil
}

func (s IncomeService) summarizeShift(ctx context.Context, sh models.Shift) (ShiftSummary, error) {
	res, err := s.List(ctx, query.Criteria{"shiftId": sh.ID}, 1, 1)
	if err != nil {
		return ShiftSummary{}, err
	}
	cats := make(map[string]float64, len(IncomeCategories))
	for _, c := range IncomeCategories {
		cats[c] = res.Summaries[c]
	}
	return ShiftSummary{
		Shift:      sh,
		Total:      res.Summaries["total"],
		Categories: cats,
		Entries:    res.TotalItems,
	}, nil
}

// Daily groups income matching criteria by day, newest first.
func (s IncomeService) Daily(ctx context.Context, criteria query.Criteria) ([]DailyIncome, error) {
	records, err := s.collection().fetch(ctx)
	if err != nil {
		return nil, err
	}
	filtered := query.Filter(records, incomeSpec.Fields, criteria)

	byDay := map[string][]models.Income{}
	for _, i := range filtered {
		byDay[i.Date] = append(byDay[i.Date], i)
	}
	out := make([]DailyIncome, 0, len(byDay))
	for day, items := range byDay {
		out = append(out, DailyIncome{
			Date:       day,
			Total:      query.Sum(items, func(i models.Income) float64 { return i.Amount }, nil),
			Count:      len(items),
			Categories: categoryTotals(items),
		})
	}
	slices.SortFunc(out, func(a, b DailyIncome) int { return query.Desc(a.Date, b.Date) })
	return out, nil
}

// Record validates a new income entry against the open shift.
func (s IncomeService) Record(ctx context.Context, in models.Income) (models.Income, error) {
	cur, err := s.CurrentShift(ctx)
	if err != nil {
		if domain.IsNotFound(err) {
			return in, domain.ConflictError{Resource: "income", Msg: "no open shift"}
		}
		return in, err
	}
	in.ShiftID = cur.Shift.ID
	if strings.TrimSpace(in.Date) == "" {
		in.Date = utils.FormatDate(utils.NowUTC())
	}
	return s.collection().create(ctx, in)
}
