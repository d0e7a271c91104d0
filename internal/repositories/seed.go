package repositories

import (
	"embed"
	"encoding/json"
	"fmt"

	"dashboard/internal/domain/models"
)

//go:embed seed/*.json
var seedFS embed.FS

// Seed is the demo data set the dashboard ships with.
type Seed struct {
	Courses       []models.Course
	FYPs          []models.FinalYearProject
	Contracts     []models.Contract
	Projects      []models.Project
	Invoices      []models.Invoice
	Funds         []models.Fund
	Expenses      []models.CompanyExpense
	UserTargets   []models.UserTarget
	Notifications []models.AdminNotification
	Shifts        []models.Shift
	Income        []models.Income
	Employment    []models.Employment
	UserTasks     []models.UserTask
	InternalTasks []models.InternalTask
	UserIncome    []models.UserIncome
	WorkHours     []models.WorkHours
}

type adminSeed struct {
	Funds         []models.Fund              `json:"funds"`
	Expenses      []models.CompanyExpense    `json:"expenses"`
	UserTargets   []models.UserTarget        `json:"userTargets"`
	Notifications []models.AdminNotification `json:"notifications"`
}

type incomeSeed struct {
	Shifts []models.Shift  `json:"shifts"`
	Income []models.Income `json:"income"`
}

type personalSeed struct {
	Employment    []models.Employment   `json:"employment"`
	Tasks         []models.UserTask     `json:"tasks"`
	InternalTasks []models.InternalTask `json:"internalTasks"`
	Income        []models.UserIncome   `json:"income"`
	WorkHours     []models.WorkHours    `json:"workHours"`
}

// LoadSeed decodes the embedded fixtures.
func LoadSeed() (Seed, error) {
	var (
		s        Seed
		admin    adminSeed
		income   incomeSeed
		personal personalSeed
	)
	files := []struct {
		name string
		dst  any
	}{
		{"seed/courses.json", &s.Courses},
		{"seed/fyps.json", &s.FYPs},
		{"seed/contracts.json", &s.Contracts},
		{"seed/projects.json", &s.Projects},
		{"seed/invoices.json", &s.Invoices},
		{"seed/admin.json", &admin},
		{"seed/income.json", &income},
		{"seed/personal.json", &personal},
	}
	for _, f := range files {
		raw, err := seedFS.ReadFile(f.name)
		if err != nil {
			return Seed{}, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return Seed{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}

	s.Funds = admin.Funds
	s.Expenses = admin.Expenses
	s.UserTargets = admin.UserTargets
	s.Notifications = admin.Notifications
	s.Shifts = income.Shifts
	s.Income = income.Income
	s.Employment = personal.Employment
	s.UserTasks = personal.Tasks
	s.InternalTasks = personal.InternalTasks
	s.UserIncome = personal.Income
	s.WorkHours = personal.WorkHours
	return s, nil
}

// MustLoadSeed panics on a broken fixture; fixtures are compiled in so this only fires in development.
func MustLoadSeed() Seed {
	s, err := LoadSeed()
	if err != nil {
		panic(err)
	}
	return s
}

// FundTransactions flattens the transactions of every fund.
func (s Seed) FundTransactions() []models.FundTransaction {
	out := []models.FundTransaction{}
	for _, f := range s.Funds {
		out = append(out, f.Transactions...)
	}
	return out
}
