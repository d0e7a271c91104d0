package services

import (
	"context"
	"errors"
	"testing"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/repositories"
)

func TestCourseListByTeacher(t *testing.T) {
	reg := seedRegistry(t)
	res, err := reg.Courses("").List(context.Background(), query.Criteria{"teacher": "T1"}, 1, 8)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	equalIDs(t, ids(res.Items, func(c models.Course) string { return c.ID }), []string{"CRS-003", "CRS-001"})
	if res.Summaries["totalStudents"] != 3 || res.Summaries["totalRevenue"] != 700 {
		t.Fatalf("unexpected summaries: %v", res.Summaries)
	}
}

func TestCourseSummariesCountStatuses(t *testing.T) {
	reg := seedRegistry(t)
	res, err := reg.Courses("").List(context.Background(), nil, 1, 2)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if res.TotalItems != 5 || res.TotalPages != 3 {
		t.Fatalf("expected 5 items over 3 pages, got %d/%d", res.TotalItems, res.TotalPages)
	}
	equalIDs(t, ids(res.Items, func(c models.Course) string { return c.ID }), []string{"CRS-004", "CRS-003"})
	if res.Summaries["ongoing"] != 2 || res.Summaries["upcoming"] != 1 || res.Summaries["completed"] != 2 {
		t.Fatalf("unexpected status counts: %v", res.Summaries)
	}
}

func TestFYPFiltersOnRelations(t *testing.T) {
	reg := seedRegistry(t)
	svc := reg.FYP("")

	res, err := svc.List(context.Background(), query.Criteria{"programmer": "P1"}, 1, 8)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	equalIDs(t, ids(res.Items, func(p models.FinalYearProject) string { return p.ID }), []string{"FYP-003", "FYP-001"})

	res, _ = svc.List(context.Background(), query.Criteria{"university": "Aleppo University"}, 1, 8)
	equalIDs(t, ids(res.Items, func(p models.FinalYearProject) string { return p.ID }), []string{"FYP-002"})

	all, _ := svc.List(context.Background(), nil, 1, 8)
	if all.Summaries["totalValue"] != 6500 || all.Summaries["collectedAmount"] != 3400 {
		t.Fatalf("unexpected summaries: %v", all.Summaries)
	}
}

func TestContractEndDateKeepsOpenEndedContracts(t *testing.T) {
	reg := seedRegistry(t)
	res, err := reg.Contracts("").List(context.Background(), query.Criteria{"endDate": "2024-01-31"}, 1, 8)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	equalIDs(t, ids(res.Items, func(c models.Contract) string { return c.ID }), []string{"CNT-001", "CNT-002"})
}

func TestContractSummaries(t *testing.T) {
	reg := seedRegistry(t)
	res, _ := reg.Contracts("").List(context.Background(), nil, 1, 8)
	want := map[string]float64{"totalContracts": 3, "activeContracts": 1, "totalMonthlyRevenue": 3000, "totalRevenue": 19800}
	for k, v := range want {
		if res.Summaries[k] != v {
			t.Fatalf("summary %s: expected %v, got %v", k, v, res.Summaries[k])
		}
	}

	res, _ = reg.Contracts("").List(context.Background(), query.Criteria{"company": "C1"}, 1, 8)
	equalIDs(t, ids(res.Items, func(c models.Contract) string { return c.ID }), []string{"CNT-003", "CNT-001"})
}

func TestProjectsSortByPriorityThenNewest(t *testing.T) {
	reg := seedRegistry(t)
	res, err := reg.Projects("").List(context.Background(), nil, 1, 8)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	equalIDs(t, ids(res.Items, func(p models.Project) string { return p.ID }),
		[]string{"PRJ-002", "PRJ-004", "PRJ-001", "PRJ-003", "PRJ-005"})
	if res.Summaries["totalValue"] != 94000 || res.Summaries["collectedAmount"] != 38500 || res.Summaries["inProgress"] != 2 {
		t.Fatalf("unexpected summaries: %v", res.Summaries)
	}

	res, _ = reg.Projects("").List(context.Background(), query.Criteria{"programmer": "P3"}, 1, 8)
	equalIDs(t, ids(res.Items, func(p models.Project) string { return p.ID }), []string{"PRJ-002", "PRJ-004"})
}

func TestInvoicesSecondPage(t *testing.T) {
	reg := seedRegistry(t)
	res, err := reg.Invoices("").List(context.Background(), nil, 2, 8)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if res.TotalItems != 12 || res.TotalPages != 2 || res.CurrentPage != 2 {
		t.Fatalf("unexpected paging: %+v", res)
	}
	equalIDs(t, ids(res.Items, func(i models.Invoice) string { return i.ID }), []string{"INV-005", "INV-003", "INV-002", "INV-001"})
	if res.Summaries["totalIncome"] != 36000 || res.Summaries["totalOutcome"] != 3840 || res.Summaries["netBalance"] != 32160 {
		t.Fatalf("unexpected summaries: %v", res.Summaries)
	}
	if res.Summaries["pendingInvoices"] != 2 {
		t.Fatalf("expected 2 pending invoices, got %v", res.Summaries["pendingInvoices"])
	}
}

func TestInvoicesDateWindow(t *testing.T) {
	reg := seedRegistry(t)
	res, _ := reg.Invoices("").List(context.Background(), query.Criteria{
		"type":      "outcome",
		"startDate": "2024-02-01",
		"endDate":   "2024-02-12",
	}, 1, 8)
	equalIDs(t, ids(res.Items, func(i models.Invoice) string { return i.ID }), []string{"INV-011", "INV-010", "INV-006"})
	if res.Summaries["totalOutcome"] != 1450 {
		t.Fatalf("expected outcome 1450, got %v", res.Summaries["totalOutcome"])
	}
}

func TestExpenseSummaries(t *testing.T) {
	reg := seedRegistry(t)
	res, _ := reg.Expenses("").List(context.Background(), nil, 1, 8)
	if res.Summaries["totalAmount"] != 4170 || res.Summaries["pending"] != 2 || res.Summaries["paid"] != 2 {
		t.Fatalf("unexpected summaries: %v", res.Summaries)
	}
}

func TestNotificationsUnreadFilter(t *testing.T) {
	reg := seedRegistry(t)
	res, _ := reg.Notifications("").List(context.Background(), query.Criteria{"read": "false"}, 1, 8)
	equalIDs(t, ids(res.Items, func(n models.AdminNotification) string { return n.ID }), []string{"N4", "N2", "N1"})
}

func TestListWrapsSourceFailure(t *testing.T) {
	boom := errors.New("connection refused")
	svc := InvoiceService{Source: repositories.SourceFunc[models.Invoice](func(context.Context) ([]models.Invoice, error) {
		return nil, boom
	})}
	_, err := svc.List(context.Background(), nil, 1, 8)
	if !domain.IsSource(err) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestCreateValidatesPayload(t *testing.T) {
	reg := seedRegistry(t)
	_, err := reg.Courses("").Create(context.Background(), models.Course{StartDate: "2024-01-01", Status: "bogus"})
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	if !fields["name"] || !fields["status"] {
		t.Fatalf("expected name and status field errors, got %+v", verr.Fields)
	}
}

func TestCreateAssignsIDWithoutTouchingSource(t *testing.T) {
	reg := seedRegistry(t)
	svc := reg.Projects("req-1")
	p, err := svc.Create(context.Background(), models.Project{
		Title:     "Landing page",
		StartDate: "2024-04-01",
		Status:    "proposed",
		Priority:  "low",
		Budget:    1000,
		Payments:  []models.Payment{{Amount: 300, Status: "paid"}, {Amount: 700, Status: "pending"}},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == "" || p.TotalPaid != 300 {
		t.Fatalf("unexpected created project: %+v", p)
	}
	res, _ := svc.List(context.Background(), nil, 1, 8)
	if res.TotalItems != 5 {
		t.Fatalf("source must stay unchanged, got %d projects", res.TotalItems)
	}
}

func TestUpdateAndDeleteRequireExistingRecord(t *testing.T) {
	reg := seedRegistry(t)
	svc := reg.Invoices("")
	inv := models.Invoice{Date: "2024-02-20", Type: "income", Amount: 10, Category: "other"}

	if _, err := svc.Update(context.Background(), "INV-404", inv); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	got, err := svc.Update(context.Background(), "INV-001", inv)
	if err != nil || got.ID != "INV-001" {
		t.Fatalf("Update: got %+v err %v", got, err)
	}
	deleted, err := svc.Delete(context.Background(), "INV-002")
	if err != nil || deleted.Amount != 300 {
		t.Fatalf("Delete: got %+v err %v", deleted, err)
	}
}

func TestPaymentStatus(t *testing.T) {
	cases := []struct {
		paid, price float64
		want        string
	}{
		{0, 1000, "pending"},
		{400, 1000, "partial"},
		{1000, 1000, "paid"},
		{0, 0, "pending"},
	}
	for _, tc := range cases {
		if got := paymentStatus(tc.paid, tc.price); got != tc.want {
			t.Fatalf("paymentStatus(%v,%v) = %s, want %s", tc.paid, tc.price, got, tc.want)
		}
	}
}
