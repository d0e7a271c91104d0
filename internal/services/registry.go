package services

import "dashboard/internal/repositories"

// Registry builds request-scoped services over a shared set of sources.
type Registry struct {
	Sources repositories.Sources
}

func (r Registry) Courses(requestID string) CourseService {
	return CourseService{Source: r.Sources.Courses, RequestID: requestID}
}

func (r Registry) FYP(requestID string) FYPService {
	return FYPService{Source: r.Sources.FYPs, RequestID: requestID}
}

func (r Registry) Contracts(requestID string) ContractService {
	return ContractService{Source: r.Sources.Contracts, RequestID: requestID}
}

func (r Registry) Projects(requestID string) ProjectService {
	return ProjectService{Source: r.Sources.Projects, RequestID: requestID}
}

func (r Registry) Invoices(requestID string) InvoiceService {
	return InvoiceService{Source: r.Sources.Invoices, RequestID: requestID}
}

func (r Registry) Expenses(requestID string) ExpenseService {
	return ExpenseService{Source: r.Sources.Expenses, RequestID: requestID}
}

func (r Registry) Notifications(requestID string) NotificationService {
	return NotificationService{Source: r.Sources.Notifications, RequestID: requestID}
}

func (r Registry) Funds(requestID string) FundService {
	return FundService{
		Funds:         r.Sources.Funds,
		UserTargets:   r.Sources.UserTargets,
		Notifications: r.Sources.Notifications,
		RequestID:     requestID,
	}
}

func (r Registry) Income(requestID string) IncomeService {
	return IncomeService{Shifts: r.Sources.Shifts, Income: r.Sources.Income, RequestID: requestID}
}

func (r Registry) Personal(requestID string) PersonalService {
	return PersonalService{
		Employment:    r.Sources.Employment,
		UserTasks:     r.Sources.UserTasks,
		InternalTasks: r.Sources.InternalTasks,
		Income:        r.Sources.UserIncome,
		WorkHours:     r.Sources.WorkHours,
		RequestID:     requestID,
	}
}

func (r Registry) Overview(requestID string) OverviewService {
	return OverviewService{Registry: r, RequestID: requestID}
}

func (r Registry) Exports(requestID string) ExportService {
	return ExportService{Invoices: r.Invoices(requestID), Funds: r.Funds(requestID), RequestID: requestID}
}
