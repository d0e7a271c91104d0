package services

import (
	"context"
	"fmt"
	"math"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
	"dashboard/internal/utils"
)

// Health bands for a fund or a user measured against the monthly target.
const (
	HealthOnTarget = "on_target"
	HealthWarning  = "warning"
	HealthBehind   = "behind"
)

var fundTransactionSpec = query.Spec[models.FundTransaction]{
	Fields: []query.Field[models.FundTransaction]{
		{Name: "search", Kind: query.KindText, Values: query.One(func(t models.FundTransaction) string { return t.Description })},
		{Name: "fundId", Kind: query.KindEnum, Values: query.One(func(t models.FundTransaction) string { return t.FundID })},
		{Name: "type", Kind: query.KindEnum, Values: query.One(func(t models.FundTransaction) string { return t.Type })},
		{Name: "category", Kind: query.KindEnum, Values: query.One(func(t models.FundTransaction) string { return t.Category })},
		{Name: "startDate", Kind: query.KindDateFrom, Values: query.One(func(t models.FundTransaction) string { return t.Date })},
		{Name: "endDate", Kind: query.KindDateTo, Values: query.One(func(t models.FundTransaction) string { return t.Date })},
	},
	Compare: func(a, b models.FundTransaction) int { return query.Desc(a.Date, b.Date) },
	Summarize: func(items []models.FundTransaction) map[string]float64 {
		amount := func(t models.FundTransaction) float64 { return t.Amount }
		byType := func(kind string) func(models.FundTransaction) bool {
			return func(t models.FundTransaction) bool { return t.Type == kind }
		}
		return map[string]float64{
			"totalTransactions": float64(len(items)),
			"totalIncome":       query.Sum(items, amount, byType("income")),
			"totalExpense":      query.Sum(items, amount, byType("expense")),
			"totalTransfer":     query.Sum(items, amount, byType("transfer")),
		}
	},
}

// FundStatus is a fund without its ledger plus target progress.
type FundStatus struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Balance         float64 `json:"balance"`
	MonthlyTarget   float64 `json:"monthlyTarget"`
	CurrentMonth    float64 `json:"currentMonth"`
	Remaining       float64 `json:"remaining"`
	PercentOfTarget float64 `json:"percentOfTarget"`
	Health          string  `json:"health"`
	Income          float64 `json:"income"`
	Expenses        float64 `json:"expenses"`
}

type UserTargetStatus struct {
	models.UserTarget
	ProgressPercent float64 `json:"progressPercent"`
	Health          string  `json:"health"`
}

type FundOverview struct {
	TotalBalance        float64            `json:"totalBalance"`
	TotalTarget         float64            `json:"totalTarget"`
	TotalProgress       float64            `json:"totalProgress"`
	ProgressPercent     float64            `json:"progressPercent"`
	CompanyBalance      float64            `json:"companyBalance"`
	AdditionalBalance   float64            `json:"additionalBalance"`
	Users               int                `json:"users"`
	UnreadNotifications int                `json:"unreadNotifications"`
	AverageUserProgress float64            `json:"averageUserProgress"`
	TasksCompleted      int                `json:"tasksCompleted"`
	TasksTotal          int                `json:"tasksTotal"`
	Funds               []FundStatus       `json:"funds"`
	UserTargets         []UserTargetStatus `json:"userTargets"`
}

// FundService backs the admin fund monitor.
type FundService struct {
	Funds         repositories.Source[models.Fund]
	UserTargets   repositories.Source[models.UserTarget]
	Notifications repositories.Source[models.AdminNotification]
	RequestID     string
}

// Percent is round(part/whole*100), 0 when whole is 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(part / whole * 100)
}

// Health maps a target percentage to a band.
func Health(percent float64) string {
	switch {
	case percent >= 100:
		return HealthOnTarget
	case percent >= 70:
		return HealthWarning
	default:
		return HealthBehind
	}
}

func fundStatus(f models.Fund) FundStatus {
	pct := Percent(f.CurrentMonth, f.MonthlyTarget)
	amount := func(t models.FundTransaction) float64 { return t.Amount }
	return FundStatus{
		ID:              f.ID,
		Type:            f.Type,
		Name:            f.Name,
		Balance:         f.Balance,
		MonthlyTarget:   f.MonthlyTarget,
		CurrentMonth:    f.CurrentMonth,
		Remaining:       math.Max(0, f.MonthlyTarget-f.CurrentMonth),
		PercentOfTarget: pct,
		Health:          Health(pct),
		Income:          query.Sum(f.Transactions, amount, func(t models.FundTransaction) bool { return t.Type == "income" }),
		Expenses:        query.Sum(f.Transactions, amount, func(t models.FundTransaction) bool { return t.Type == "expense" }),
	}
}

func (s FundService) funds(ctx context.Context) ([]models.Fund, error) {
	return collection[models.Fund]{name: "funds", source: s.Funds, id: func(f *models.Fund) *string { return &f.ID }}.fetch(ctx)
}

func (s FundService) Overview(ctx context.Context) (FundOverview, error) {
	funds, err := s.funds(ctx)
	if err != nil {
		return FundOverview{}, err
	}
	targets, err := collection[models.UserTarget]{name: "user_targets", source: s.UserTargets}.fetch(ctx)
	if err != nil {
		return FundOverview{}, err
	}
	notes, err := collection[models.AdminNotification]{name: "notifications", source: s.Notifications}.fetch(ctx)
	if err != nil {
		return FundOverview{}, err
	}

	out := FundOverview{
		Funds:       make([]FundStatus, 0, len(funds)),
		UserTargets: make([]UserTargetStatus, 0, len(targets)),
		Users:       len(targets),
	}
	for _, f := range funds {
		out.TotalBalance += f.Balance
		out.TotalTarget += f.MonthlyTarget
		out.TotalProgress += f.CurrentMonth
		switch f.Type {
		case models.FundCompany:
			out.CompanyBalance = f.Balance
		case models.FundAdditional:
			out.AdditionalBalance = f.Balance
		}
		out.Funds = append(out.Funds, fundStatus(f))
	}
	out.ProgressPercent = Percent(out.TotalProgress, out.TotalTarget)

	var pctSum float64
	for _, u := range targets {
		pct := Percent(u.CurrentProgress, u.MonthlyTarget)
		pctSum += pct
		out.TasksCompleted += u.Tasks.Completed
		out.TasksTotal += u.Tasks.Total
		out.UserTargets = append(out.UserTargets, UserTargetStatus{UserTarget: u, ProgressPercent: pct, Health: Health(pct)})
	}
	if len(targets) > 0 {
		out.AverageUserProgress = math.Round(pctSum / float64(len(targets)))
	}
	out.UnreadNotifications = int(query.Count(notes, func(n models.AdminNotification) bool { return !n.Read }))

	utils.LogEvent(s.RequestID, "funds", "overview", fmt.Sprintf("funds=%d users=%d", len(funds), len(targets)))
	return out, nil
}

// Transactions lists the ledger of one fund through the query engine.
func (s FundService) Transactions(ctx context.Context, fundID string, criteria query.Criteria, page, pageSize int) (query.Result[models.FundTransaction], error) {
	funds, err := s.funds(ctx)
	if err != nil {
		return query.Result[models.FundTransaction]{}, err
	}
	for _, f := range funds {
		if f.ID != fundID {
			continue
		}
		c := query.Criteria{}
		for k, v := range criteria {
			c[k] = v
		}
		c["fundId"] = fundID
		return query.Run(f.Transactions, fundTransactionSpec, c, page, pageSize), nil
	}
	return query.Result[models.FundTransaction]{}, domain.NotFoundError{Resource: "fund", ID: fundID}
}

// Users returns every user target with its progress band.
func (s FundService) Users(ctx context.Context) ([]UserTargetStatus, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return ov.UserTargets, nil
}

// Transfer validates a move between funds and returns the two ledger lines it would produce.
func (s FundService) Transfer(ctx context.Context, t models.Transfer) ([]models.FundTransaction, error) {
	if err := validatePayload(t); err != nil {
		return nil, err
	}
	funds, err := s.funds(ctx)
	if err != nil {
		return nil, err
	}
	var from, to *models.Fund
	for i := range funds {
		switch funds[i].ID {
		case t.FromFundID:
			from = &funds[i]
		case t.ToFundID:
			to = &funds[i]
		}
	}
	if from == nil {
		return nil, domain.NotFoundError{Resource: "fund", ID: t.FromFundID}
	}
	if to == nil {
		return nil, domain.NotFoundError{Resource: "fund", ID: t.ToFundID}
	}
	if t.Amount > from.Balance {
		return nil, domain.ConflictError{Resource: "transfer", Msg: fmt.Sprintf("insufficient balance in %s", from.Name)}
	}

	desc := t.Description
	if desc == "" {
		desc = fmt.Sprintf("Transfer from %s to %s", from.Name, to.Name)
	}
	date := utils.FormatDate(utils.NowUTC())
	ref := newID("TX")
	out := []models.FundTransaction{
		{ID: ref + "-OUT", FundID: from.ID, Amount: t.Amount, Type: "transfer", Description: desc, Date: date},
		{ID: ref + "-IN", FundID: to.ID, Amount: t.Amount, Type: "income", Description: desc, Date: date, Category: "transfer"},
	}
	utils.LogEvent(s.RequestID, "funds", "transfer_accepted",
		fmt.Sprintf("from=%s to=%s amount=%s", from.ID, to.ID, utils.FormatMoney(t.Amount)))
	return out, nil
}
