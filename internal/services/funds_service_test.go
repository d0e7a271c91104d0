package services

import (
	"context"
	"errors"
	"testing"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/query"
	"dashboard/internal/utils"
)

func TestFundOverview(t *testing.T) {
	reg := seedRegistry(t)
	ov, err := reg.Funds("").Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if ov.TotalBalance != 81000 || ov.TotalTarget != 30000 || ov.TotalProgress != 19900 {
		t.Fatalf("unexpected totals: %+v", ov)
	}
	if ov.ProgressPercent != 66 {
		t.Fatalf("expected 66%%, got %v", ov.ProgressPercent)
	}
	if ov.CompanyBalance != 6200 || ov.AdditionalBalance != 2500 {
		t.Fatalf("unexpected company/additional balances: %v/%v", ov.CompanyBalance, ov.AdditionalBalance)
	}
	if ov.Users != 3 || ov.UnreadNotifications != 3 {
		t.Fatalf("unexpected users/unread: %d/%d", ov.Users, ov.UnreadNotifications)
	}
	if ov.AverageUserProgress != 80 || ov.TasksCompleted != 32 || ov.TasksTotal != 41 {
		t.Fatalf("unexpected user aggregates: %+v", ov)
	}

	health := map[string]string{}
	for _, f := range ov.Funds {
		health[f.ID] = f.Health
	}
	want := map[string]string{"F1": HealthWarning, "F2": HealthOnTarget, "F3": HealthBehind, "F5": HealthBehind}
	for id, h := range want {
		if health[id] != h {
			t.Fatalf("fund %s: expected %s, got %s", id, h, health[id])
		}
	}
}

func TestPercentAndHealth(t *testing.T) {
	if Percent(1, 0) != 0 {
		t.Fatalf("zero target must yield 0")
	}
	if Percent(2, 3) != 67 {
		t.Fatalf("expected rounding to 67, got %v", Percent(2, 3))
	}
	if Health(100) != HealthOnTarget || Health(70) != HealthWarning || Health(69) != HealthBehind {
		t.Fatalf("unexpected health bands")
	}
}

func TestFundTransactions(t *testing.T) {
	reg := seedRegistry(t)
	svc := reg.Funds("")

	res, err := svc.Transactions(context.Background(), "F1", nil, 1, 8)
	if err != nil {
		t.Fatalf("Transactions error: %v", err)
	}
	equalIDs(t, ids(res.Items, func(tx models.FundTransaction) string { return tx.ID }), []string{"TX3", "TX2", "TX1"})
	if res.Summaries["totalIncome"] != 1000 || res.Summaries["totalExpense"] != 250 {
		t.Fatalf("unexpected summaries: %v", res.Summaries)
	}

	// the path id wins over a fundId in the criteria
	res, _ = svc.Transactions(context.Background(), "F1", query.Criteria{"fundId": "F2"}, 1, 8)
	if res.TotalItems != 3 {
		t.Fatalf("expected fund F1 ledger, got %d items", res.TotalItems)
	}

	if _, err := svc.Transactions(context.Background(), "F9", nil, 1, 8); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTransfer(t *testing.T) {
	reg := seedRegistry(t)
	svc := reg.Funds("")

	lines, err := svc.Transfer(context.Background(), models.Transfer{FromFundID: "F1", ToFundID: "F5", Amount: 1000})
	if err != nil {
		t.Fatalf("Transfer error: %v", err)
	}
	if len(lines) != 2 || lines[0].FundID != "F1" || lines[1].FundID != "F5" {
		t.Fatalf("unexpected ledger lines: %+v", lines)
	}
	if lines[0].Description == "" {
		t.Fatalf("expected generated description")
	}

	if _, err := svc.Transfer(context.Background(), models.Transfer{FromFundID: "F6", ToFundID: "F5", Amount: 99999}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for insufficient balance, got %v", err)
	}
	if _, err := svc.Transfer(context.Background(), models.Transfer{FromFundID: "F1", ToFundID: "F1", Amount: 10}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for same fund, got %v", err)
	}
	if _, err := svc.Transfer(context.Background(), models.Transfer{FromFundID: "F1", ToFundID: "F9", Amount: 10}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestIncomeCurrentShift(t *testing.T) {
	reg := seedRegistry(t)
	sum, err := reg.Income("").CurrentShift(context.Background())
	if err != nil {
		t.Fatalf("CurrentShift error: %v", err)
	}
	if sum.Shift.ID != "shift_2" || sum.Total != 16800 || sum.Entries != 7 {
		t.Fatalf("unexpected shift summary: %+v", sum)
	}
	if sum.Categories["course"] != 1500 || sum.Categories["contract"] != 8300 {
		t.Fatalf("unexpected categories: %v", sum.Categories)
	}
}

func TestIncomeDaily(t *testing.T) {
	reg := seedRegistry(t)
	days, err := reg.Income("").Daily(context.Background(), nil)
	if err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if len(days) != 2 || days[0].Date != "2024-02-14" || days[0].Total != 16800 || days[1].Total != 12000 {
		t.Fatalf("unexpected daily summary: %+v", days)
	}
}

func TestIncomeRecordUsesOpenShift(t *testing.T) {
	reg := seedRegistry(t)
	in, err := reg.Income("").Record(context.Background(), models.Income{Amount: 50, Category: "course", ShiftID: "shift_1"})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if in.ShiftID != "shift_2" || in.ID == "" {
		t.Fatalf("unexpected recorded income: %+v", in)
	}

	closed := IncomeService{Shifts: staticOf([]models.Shift{{ID: "s", Status: "closed"}})}
	_, err = closed.Record(context.Background(), models.Income{Amount: 50, Category: "course"})
	var conflict domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict without open shift, got %v", err)
	}
}

func TestIncomeRecordDefaultsDateToToday(t *testing.T) {
	reg := seedRegistry(t)
	in, err := reg.Income("").Record(context.Background(), models.Income{Amount: 75, Category: "fyp"})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if !utils.IsISODate(in.Date) {
		t.Fatalf("expected an ISO date, got %q", in.Date)
	}

	kept, err := reg.Income("").Record(context.Background(), models.Income{Amount: 75, Category: "fyp", Date: "2024-02-15"})
	if err != nil || kept.Date != "2024-02-15" {
		t.Fatalf("explicit date must be kept, got %q (%v)", kept.Date, err)
	}
}

func TestOpenShiftRequiresClosedShifts(t *testing.T) {
	reg := seedRegistry(t)
	_, err := reg.Income("").OpenShift(context.Background())
	var conflict domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict while shift_2 is open, got %v", err)
	}

	closed := IncomeService{Shifts: staticOf([]models.Shift{{ID: "s", Status: "closed"}})}
	sh, err := closed.OpenShift(context.Background())
	if err != nil {
		t.Fatalf("OpenShift error: %v", err)
	}
	if sh.Status != "open" || sh.ID == "" || sh.StartTime == "" {
		t.Fatalf("unexpected shift: %+v", sh)
	}
}

func TestCloseShiftTotalsIncome(t *testing.T) {
	reg := seedRegistry(t)
	sum, err := reg.Income("").CloseShift(context.Background())
	if err != nil {
		t.Fatalf("CloseShift error: %v", err)
	}
	if sum.Shift.ID != "shift_2" || sum.Shift.Status != "closed" || sum.Shift.EndTime == "" || sum.Shift.TotalIncome != 16800 {
		t.Fatalf("unexpected closed shift: %+v", sum.Shift)
	}

	again, err := reg.Income("").CurrentShift(context.Background())
	if err != nil || again.Shift.Status != "open" {
		t.Fatalf("closing must not touch the source: %+v %v", again.Shift, err)
	}

	none := IncomeService{Shifts: staticOf([]models.Shift{{ID: "s", Status: "closed"}})}
	if _, err := none.CloseShift(context.Background()); !domain.IsNotFound(err) {
		t.Fatalf("expected not found without an open shift, got %v", err)
	}
}
