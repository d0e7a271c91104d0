package repositories

import "dashboard/internal/domain/models"

// Sources bundles one record source per collection the dashboard reads.
type Sources struct {
	Courses       Source[models.Course]
	FYPs          Source[models.FinalYearProject]
	Contracts     Source[models.Contract]
	Projects      Source[models.Project]
	Invoices      Source[models.Invoice]
	Funds         Source[models.Fund]
	Expenses      Source[models.CompanyExpense]
	UserTargets   Source[models.UserTarget]
	Notifications Source[models.AdminNotification]
	Shifts        Source[models.Shift]
	Income        Source[models.Income]
	Employment    Source[models.Employment]
	UserTasks     Source[models.UserTask]
	InternalTasks Source[models.InternalTask]
	UserIncome    Source[models.UserIncome]
	WorkHours     Source[models.WorkHours]
}

// SeedSources serves every collection from the embedded fixtures.
func SeedSources(s Seed) Sources {
	return Sources{
		Courses:       NewStaticSource(s.Courses),
		FYPs:          NewStaticSource(s.FYPs),
		Contracts:     NewStaticSource(s.Contracts),
		Projects:      NewStaticSource(s.Projects),
		Invoices:      NewStaticSource(s.Invoices),
		Funds:         NewStaticSource(s.Funds),
		Expenses:      NewStaticSource(s.Expenses),
		UserTargets:   NewStaticSource(s.UserTargets),
		Notifications: NewStaticSource(s.Notifications),
		Shifts:        NewStaticSource(s.Shifts),
		Income:        NewStaticSource(s.Income),
		Employment:    NewStaticSource(s.Employment),
		UserTasks:     NewStaticSource(s.UserTasks),
		InternalTasks: NewStaticSource(s.InternalTasks),
		UserIncome:    NewStaticSource(s.UserIncome),
		WorkHours:     NewStaticSource(s.WorkHours),
	}
}
