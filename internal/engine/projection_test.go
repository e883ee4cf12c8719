package engine_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
	"github.com/boddenberg/casa-cashflow-go/internal/engine"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// mixedInput is a household with income of every certainty, both expense
// kinds and a credit card, used by the property tests.
func mixedInput() *engine.Input {
	return &engine.Input{
		Accounts: []domain.Account{
			{ID: "a1", AccountType: domain.AccountChecking, BalanceCents: 200000},
			{ID: "a2", AccountType: domain.AccountSavings, BalanceCents: 9999999},
		},
		RecurringIncome: []domain.RecurringIncome{
			{
				ID: "p1", Name: "Salary", AmountCents: 300000,
				Certainty: domain.CertaintyGuaranteed, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 5},
			},
			{
				ID: "p2", Name: "Side gig", AmountCents: 50000,
				Certainty: domain.CertaintyProbable, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyWeekly, Weekday: 5},
			},
			{
				ID: "p3", Name: "Royalties", AmountCents: 20000,
				Certainty: domain.CertaintyUncertain, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyBiweekly, Weekday: 2},
			},
		},
		SingleShotIncome: []domain.SingleShotIncome{
			{ID: "s1", Name: "Bonus", AmountCents: 80000, Date: day(2025, time.January, 10), Certainty: domain.CertaintyGuaranteed},
		},
		FixedExpenses: []domain.FixedExpense{
			{ID: "f1", Name: "Rent", AmountCents: 180000, DueDay: 1, IsActive: true},
			{ID: "f2", Name: "Internet", AmountCents: 12000, DueDay: 28, IsActive: true},
		},
		SingleShotExpenses: []domain.SingleShotExpense{
			{ID: "e1", Name: "Dentist", AmountCents: 40000, Date: day(2025, time.January, 17)},
		},
		CreditCards: []domain.CreditCard{
			{ID: "c1", Name: "Visa", StatementBalanceCents: 95000, DueDay: 12},
		},
		FutureStatements: []domain.FutureStatement{
			{CardID: "c1", TargetYear: 2025, TargetMonth: 2, AmountCents: 110000},
		},
	}
}

func TestProjectionWindowInvariants(t *testing.T) {
	for _, days := range []int{1, 7, 30, 90} {
		proj, err := engine.Project(mixedInput(), engine.Options{
			StartDate:      day(2025, time.January, 1),
			ProjectionDays: days,
		})
		if err != nil {
			t.Fatalf("days=%d: unexpected error: %v", days, err)
		}
		if len(proj.Days) != days {
			t.Errorf("days=%d: len(Days) = %d", days, len(proj.Days))
		}
		if !proj.Days[0].Date.Equal(proj.StartDate) {
			t.Errorf("days=%d: first day %s != start date %s", days, proj.Days[0].Date, proj.StartDate)
		}
		for i, d := range proj.Days {
			if d.DayOffset != i {
				t.Fatalf("days=%d: Days[%d].DayOffset = %d", days, i, d.DayOffset)
			}
		}
	}
}

func TestPessimisticNeverExceedsOptimistic(t *testing.T) {
	proj, err := engine.Project(mixedInput(), engine.Options{
		StartDate:      day(2025, time.January, 1),
		ProjectionDays: 90,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range proj.Days {
		if d.PessimisticBalanceCents > d.OptimisticBalanceCents {
			t.Errorf("day %d: pessimistic %d > optimistic %d",
				d.DayOffset, d.PessimisticBalanceCents, d.OptimisticBalanceCents)
		}
	}
	if proj.Pessimistic.TotalIncomeCents > proj.Optimistic.TotalIncomeCents {
		t.Error("pessimistic total income exceeds optimistic")
	}
	if proj.Pessimistic.TotalExpensesCents != proj.Optimistic.TotalExpensesCents {
		t.Error("expenses must be identical across scenarios")
	}
}

func TestProjectionIdempotence(t *testing.T) {
	opts := engine.Options{StartDate: day(2025, time.January, 1), ProjectionDays: 45}
	first, err := engine.Project(mixedInput(), opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Project(mixedInput(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical output")
	}
}

func TestMonthEndClampingAcrossFebruary(t *testing.T) {
	in := &engine.Input{
		FixedExpenses: []domain.FixedExpense{
			{ID: "f1", Name: "Loan", AmountCents: 60000, DueDay: 31, IsActive: true},
		},
	}
	proj, err := engine.Project(in, engine.Options{
		StartDate:      day(2025, time.February, 1),
		ProjectionDays: 28,
	})
	if err != nil {
		t.Fatal(err)
	}

	var fired []int
	for _, d := range proj.Days {
		if len(d.ExpenseEvents) > 0 {
			fired = append(fired, d.DayOffset)
		}
	}
	if len(fired) != 1 || fired[0] != 27 {
		t.Fatalf("day-31 expense must fire exactly once, on Feb 28 (offset 27), fired on %v", fired)
	}
	if proj.Optimistic.TotalExpensesCents != 60000 {
		t.Errorf("total expenses = %d, want 60000", proj.Optimistic.TotalExpensesCents)
	}
}

func TestUncertainIncomeOnlyInOptimistic(t *testing.T) {
	in := &engine.Input{
		Accounts: []domain.Account{
			{ID: "a1", AccountType: domain.AccountChecking, BalanceCents: 100000},
		},
		RecurringIncome: []domain.RecurringIncome{
			{
				ID: "p1", Name: "Maybe", AmountCents: 50000,
				Certainty: domain.CertaintyUncertain, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 10},
			},
		},
	}
	proj, err := engine.Project(in, engine.Options{
		StartDate:      day(2025, time.January, 1),
		ProjectionDays: 30,
	})
	if err != nil {
		t.Fatal(err)
	}

	if proj.Optimistic.TotalIncomeCents != 50000 {
		t.Errorf("optimistic total income = %d, want 50000", proj.Optimistic.TotalIncomeCents)
	}
	if proj.Pessimistic.TotalIncomeCents != 0 {
		t.Errorf("pessimistic total income = %d, want 0", proj.Pessimistic.TotalIncomeCents)
	}

	d := proj.Days[9] // Jan 10
	if len(d.IncomeEvents) != 1 {
		t.Fatalf("uncertain income must still appear in the day's events, got %d", len(d.IncomeEvents))
	}
	if d.OptimisticBalanceCents != 150000 {
		t.Errorf("optimistic balance = %d, want 150000", d.OptimisticBalanceCents)
	}
	if d.PessimisticBalanceCents != 100000 {
		t.Errorf("pessimistic balance must be untouched, got %d", d.PessimisticBalanceCents)
	}
}

func TestDangerDetection(t *testing.T) {
	start := day(2025, time.January, 1)
	in := &engine.Input{
		Accounts: []domain.Account{
			{ID: "a1", AccountType: domain.AccountChecking, BalanceCents: 1000},
		},
		SingleShotExpenses: []domain.SingleShotExpense{
			{ID: "e1", Name: "Bill", AmountCents: 2000, Date: start.AddDate(0, 0, 5)},
		},
	}
	proj, err := engine.Project(in, engine.Options{StartDate: start, ProjectionDays: 30})
	if err != nil {
		t.Fatal(err)
	}

	if !proj.Days[5].IsOptimisticDanger || !proj.Days[5].IsPessimisticDanger {
		t.Error("day 5 must be a danger day in both scenarios")
	}
	if proj.Days[4].IsOptimisticDanger {
		t.Error("day 4 must not be a danger day")
	}
	for _, s := range []domain.ScenarioSummary{proj.Optimistic, proj.Pessimistic} {
		if s.DangerDayCount != 25 {
			t.Errorf("danger day count = %d, want 25", s.DangerDayCount)
		}
		if len(s.DangerDays) != s.DangerDayCount {
			t.Errorf("DangerDays length %d != DangerDayCount %d", len(s.DangerDays), s.DangerDayCount)
		}
		if s.DangerDays[0].DayOffset != 5 || s.DangerDays[0].BalanceCents != -1000 {
			t.Errorf("first danger day = %+v, want offset 5 balance -1000", s.DangerDays[0])
		}
	}
}

// End-to-end check of the canonical household: one checking account, one
// guaranteed monthly salary, one fixed expense.
func TestProjectionEndToEnd(t *testing.T) {
	in := &engine.Input{
		Accounts: []domain.Account{
			{ID: "a1", AccountType: domain.AccountChecking, BalanceCents: 500000},
		},
		RecurringIncome: []domain.RecurringIncome{
			{
				ID: "p1", Name: "Salary", AmountCents: 300000,
				Certainty: domain.CertaintyGuaranteed, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 15},
			},
		},
		FixedExpenses: []domain.FixedExpense{
			{ID: "f1", Name: "Rent", AmountCents: 150000, DueDay: 1, IsActive: true},
		},
	}
	proj, err := engine.Project(in, engine.Options{
		StartDate:      day(2025, time.January, 1),
		ProjectionDays: 30,
	})
	if err != nil {
		t.Fatal(err)
	}

	if proj.StartingBalanceCents != 500000 {
		t.Errorf("starting balance = %d, want 500000", proj.StartingBalanceCents)
	}

	d0 := proj.Days[0]
	if len(d0.ExpenseEvents) != 1 || d0.ExpenseEvents[0].AmountCents != 150000 {
		t.Errorf("day 0 expense events = %+v", d0.ExpenseEvents)
	}
	if d0.OptimisticBalanceCents != 350000 || d0.PessimisticBalanceCents != 350000 {
		t.Errorf("day 0 balances = %d/%d, want 350000/350000",
			d0.OptimisticBalanceCents, d0.PessimisticBalanceCents)
	}

	d14 := proj.Days[14]
	if len(d14.IncomeEvents) != 1 || d14.IncomeEvents[0].AmountCents != 300000 {
		t.Errorf("day 14 income events = %+v", d14.IncomeEvents)
	}
	if d14.OptimisticBalanceCents != 650000 || d14.PessimisticBalanceCents != 650000 {
		t.Errorf("day 14 balances = %d/%d, want 650000/650000",
			d14.OptimisticBalanceCents, d14.PessimisticBalanceCents)
	}

	if proj.Optimistic.DangerDayCount != 0 || proj.Pessimistic.DangerDayCount != 0 {
		t.Errorf("danger day counts = %d/%d, want 0/0",
			proj.Optimistic.DangerDayCount, proj.Pessimistic.DangerDayCount)
	}
	if proj.Optimistic.EndBalanceCents != 650000 {
		t.Errorf("end balance = %d, want 650000", proj.Optimistic.EndBalanceCents)
	}
}

func TestCreditCardOverrideEndToEnd(t *testing.T) {
	in := &engine.Input{
		CreditCards: []domain.CreditCard{
			{ID: "c1", Name: "Visa", StatementBalanceCents: 50000, DueDay: 20},
		},
		FutureStatements: []domain.FutureStatement{
			{CardID: "c1", TargetYear: 2025, TargetMonth: 1, AmountCents: 80000},
		},
	}
	proj, err := engine.Project(in, engine.Options{
		StartDate:      day(2025, time.January, 1),
		ProjectionDays: 60,
	})
	if err != nil {
		t.Fatal(err)
	}

	jan := proj.Days[19] // Jan 20
	if len(jan.ExpenseEvents) != 1 || jan.ExpenseEvents[0].AmountCents != 80000 {
		t.Errorf("january due must use the override: %+v", jan.ExpenseEvents)
	}
	feb := proj.Days[50] // Feb 20
	if len(feb.ExpenseEvents) != 1 || feb.ExpenseEvents[0].AmountCents != 50000 {
		t.Errorf("february due must fall back to the statement balance: %+v", feb.ExpenseEvents)
	}
}

func TestProjectionDefaults(t *testing.T) {
	proj, err := engine.Project(&engine.Input{}, engine.Options{StartDate: day(2025, time.June, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if len(proj.Days) != engine.DefaultProjectionDays {
		t.Errorf("default window = %d days, want %d", len(proj.Days), engine.DefaultProjectionDays)
	}
	if !proj.EndDate.Equal(day(2025, time.June, 30)) {
		t.Errorf("end date = %s, want 2025-06-30", proj.EndDate.Format("2006-01-02"))
	}
}

func TestProjectionDoesNotMutateInput(t *testing.T) {
	in := mixedInput()
	snapshot := mixedInput()
	if _, err := engine.Project(in, engine.Options{StartDate: day(2025, time.January, 1)}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, snapshot) {
		t.Error("engine mutated its input")
	}
}
