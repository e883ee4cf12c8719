package engine

import (
	"testing"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

func TestEventsScenarioPartition(t *testing.T) {
	in := &Input{
		RecurringIncome: []domain.RecurringIncome{
			{
				ID: "p1", Name: "Salary", AmountCents: 300000,
				Certainty: domain.CertaintyGuaranteed, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 15},
			},
			{
				ID: "p2", Name: "Freelance", AmountCents: 100000,
				Certainty: domain.CertaintyUncertain, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 15},
			},
		},
	}
	m := newMaterializer(in, date(2025, time.January, 1), TwiceMonthlyFullAmount)

	ev := m.eventsOn(date(2025, time.January, 15))
	if len(ev.income) != 2 {
		t.Fatalf("expected 2 income events, got %d", len(ev.income))
	}
	if ev.optimisticIncomeCents != 400000 {
		t.Errorf("optimistic income = %d, want 400000", ev.optimisticIncomeCents)
	}
	if ev.guaranteedIncomeCents != 300000 {
		t.Errorf("guaranteed income = %d, want 300000", ev.guaranteedIncomeCents)
	}
}

func TestEventsInactiveItemsExcluded(t *testing.T) {
	in := &Input{
		RecurringIncome: []domain.RecurringIncome{
			{
				ID: "p1", AmountCents: 300000, Certainty: domain.CertaintyGuaranteed,
				IsActive: false,
				Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 10},
			},
		},
		FixedExpenses: []domain.FixedExpense{
			{ID: "f1", AmountCents: 50000, DueDay: 10, IsActive: false},
		},
	}
	m := newMaterializer(in, date(2025, time.January, 1), TwiceMonthlyFullAmount)

	ev := m.eventsOn(date(2025, time.January, 10))
	if len(ev.income) != 0 || len(ev.expenses) != 0 {
		t.Errorf("inactive items leaked: %d income, %d expense events", len(ev.income), len(ev.expenses))
	}
}

func TestEventsRecurringAndSingleShotSameDay(t *testing.T) {
	// Time-of-day on the single-shot date must be ignored.
	in := &Input{
		RecurringIncome: []domain.RecurringIncome{
			{
				ID: "p1", Name: "Salary", AmountCents: 300000,
				Certainty: domain.CertaintyGuaranteed, IsActive: true,
				Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 15},
			},
		},
		SingleShotIncome: []domain.SingleShotIncome{
			{
				ID: "s1", Name: "Tax refund", AmountCents: 45000,
				Date:      time.Date(2025, time.January, 15, 18, 30, 0, 0, time.FixedZone("X", -3*3600)),
				Certainty: domain.CertaintyGuaranteed,
			},
		},
	}
	m := newMaterializer(in, date(2025, time.January, 1), TwiceMonthlyFullAmount)

	ev := m.eventsOn(date(2025, time.January, 15))
	if len(ev.income) != 2 {
		t.Fatalf("recurring and single-shot are independent events, got %d", len(ev.income))
	}
	if ev.guaranteedIncomeCents != 345000 {
		t.Errorf("guaranteed income = %d, want 345000", ev.guaranteedIncomeCents)
	}
}

func TestEventsSingleShotIncomeWithoutCertainty(t *testing.T) {
	in := &Input{
		SingleShotIncome: []domain.SingleShotIncome{
			{ID: "s1", Name: "Gift", AmountCents: 10000, Date: date(2025, time.January, 8)},
		},
	}
	m := newMaterializer(in, date(2025, time.January, 1), TwiceMonthlyFullAmount)

	ev := m.eventsOn(date(2025, time.January, 8))
	if ev.optimisticIncomeCents != 10000 {
		t.Errorf("optimistic income = %d, want 10000", ev.optimisticIncomeCents)
	}
	if ev.guaranteedIncomeCents != 0 {
		t.Errorf("income without certainty must not count as guaranteed, got %d", ev.guaranteedIncomeCents)
	}
}

func TestEventsCreditCardStatementOverride(t *testing.T) {
	in := &Input{
		CreditCards: []domain.CreditCard{
			{ID: "c1", Name: "Visa", StatementBalanceCents: 50000, DueDay: 20},
		},
		FutureStatements: []domain.FutureStatement{
			{CardID: "c1", TargetYear: 2025, TargetMonth: 2, AmountCents: 80000},
		},
	}
	m := newMaterializer(in, date(2025, time.January, 1), TwiceMonthlyFullAmount)

	jan := m.eventsOn(date(2025, time.January, 20))
	if len(jan.expenses) != 1 || jan.expenses[0].AmountCents != 50000 {
		t.Errorf("january should use the standing statement balance, got %+v", jan.expenses)
	}

	feb := m.eventsOn(date(2025, time.February, 20))
	if len(feb.expenses) != 1 || feb.expenses[0].AmountCents != 80000 {
		t.Errorf("february should use the override, got %+v", feb.expenses)
	}
	if feb.expenses[0].SourceType != domain.ExpenseSourceCreditCard {
		t.Errorf("source type = %s, want %s", feb.expenses[0].SourceType, domain.ExpenseSourceCreditCard)
	}

	mar := m.eventsOn(date(2025, time.March, 20))
	if len(mar.expenses) != 1 || mar.expenses[0].AmountCents != 50000 {
		t.Errorf("override applies to its month only, got %+v", mar.expenses)
	}
}

func TestEventsExpenseSourceTypes(t *testing.T) {
	in := &Input{
		FixedExpenses: []domain.FixedExpense{
			{ID: "f1", Name: "Rent", AmountCents: 150000, DueDay: 5, IsActive: true},
		},
		SingleShotExpenses: []domain.SingleShotExpense{
			{ID: "e1", Name: "Car repair", AmountCents: 70000, Date: date(2025, time.January, 5)},
		},
		CreditCards: []domain.CreditCard{
			{ID: "c1", Name: "Visa", StatementBalanceCents: 30000, DueDay: 5},
		},
	}
	m := newMaterializer(in, date(2025, time.January, 1), TwiceMonthlyFullAmount)

	ev := m.eventsOn(date(2025, time.January, 5))
	if len(ev.expenses) != 3 {
		t.Fatalf("expected 3 expense events, got %d", len(ev.expenses))
	}
	types := map[domain.ExpenseSource]bool{}
	for _, e := range ev.expenses {
		types[e.SourceType] = true
	}
	for _, want := range []domain.ExpenseSource{
		domain.ExpenseSourceFixed, domain.ExpenseSourceSingleShot, domain.ExpenseSourceCreditCard,
	} {
		if !types[want] {
			t.Errorf("missing expense source type %s", want)
		}
	}
	if ev.expenseCents != 250000 {
		t.Errorf("expense total = %d, want 250000", ev.expenseCents)
	}
}

func TestEventsZeroAndNegativeAmountsPassThrough(t *testing.T) {
	in := &Input{
		SingleShotExpenses: []domain.SingleShotExpense{
			{ID: "e1", Name: "Refund", AmountCents: -5000, Date: date(2025, time.January, 3)},
			{ID: "e2", Name: "Placeholder", AmountCents: 0, Date: date(2025, time.January, 3)},
		},
	}
	m := newMaterializer(in, date(2025, time.January, 1), TwiceMonthlyFullAmount)

	ev := m.eventsOn(date(2025, time.January, 3))
	if len(ev.expenses) != 2 {
		t.Fatalf("expected 2 expense events, got %d", len(ev.expenses))
	}
	if ev.expenseCents != -5000 {
		t.Errorf("expense total = %d, want -5000", ev.expenseCents)
	}
}
