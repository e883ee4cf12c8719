package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

func projectionErr(t *testing.T, err error) *domain.ErrProjectionInput {
	t.Helper()
	var pe *domain.ErrProjectionInput
	if !errors.As(err, &pe) {
		t.Fatalf("expected *domain.ErrProjectionInput, got %T: %v", err, err)
	}
	return pe
}

func TestValidateRejectsBadInput(t *testing.T) {
	badAnchor := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC) // Thursday

	tests := []struct {
		name  string
		in    *Input
		opts  Options
		kind  domain.ProjectionErrorKind
		field string
	}{
		{
			name: "nil input",
			in:   nil,
			kind: domain.ProjectionInvalidInput, field: "input",
		},
		{
			name: "negative projection days",
			in:   &Input{},
			opts: Options{ProjectionDays: -1},
			kind: domain.ProjectionInvalidDays, field: "options.projection_days",
		},
		{
			name: "unknown account type",
			in: &Input{Accounts: []domain.Account{
				{ID: "a1", AccountType: "crypto"},
			}},
			kind: domain.ProjectionInvalidInput, field: "accounts[0].account_type",
		},
		{
			name: "unknown certainty",
			in: &Input{RecurringIncome: []domain.RecurringIncome{
				{ID: "p1", Certainty: "sure", Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 1}},
			}},
			kind: domain.ProjectionInvalidCertainty, field: "recurring_income[0].certainty",
		},
		{
			name: "unknown frequency",
			in: &Input{RecurringIncome: []domain.RecurringIncome{
				{ID: "p1", Certainty: domain.CertaintyProbable, Schedule: domain.Schedule{Frequency: "quarterly"}},
			}},
			kind: domain.ProjectionInvalidFrequency, field: "recurring_income[0].schedule.frequency",
		},
		{
			name: "weekday out of range",
			in: &Input{RecurringIncome: []domain.RecurringIncome{
				{ID: "p1", Certainty: domain.CertaintyProbable, Schedule: domain.Schedule{Frequency: domain.FrequencyWeekly, Weekday: 8}},
			}},
			kind: domain.ProjectionInvalidDay, field: "recurring_income[0].schedule.weekday",
		},
		{
			name: "anchor on wrong weekday",
			in: &Input{RecurringIncome: []domain.RecurringIncome{
				{ID: "p1", Certainty: domain.CertaintyProbable, Schedule: domain.Schedule{
					Frequency: domain.FrequencyBiweekly, Weekday: 5, AnchorDate: &badAnchor,
				}},
			}},
			kind: domain.ProjectionInvalidDay, field: "recurring_income[0].schedule.anchor_date",
		},
		{
			name: "day of month out of range",
			in: &Input{RecurringIncome: []domain.RecurringIncome{
				{ID: "p1", Certainty: domain.CertaintyProbable, Schedule: domain.Schedule{Frequency: domain.FrequencyMonthly, DayOfMonth: 32}},
			}},
			kind: domain.ProjectionInvalidDay, field: "recurring_income[0].schedule.day_of_month",
		},
		{
			name: "twice monthly equal days",
			in: &Input{RecurringIncome: []domain.RecurringIncome{
				{ID: "p1", Certainty: domain.CertaintyProbable, Schedule: domain.Schedule{
					Frequency: domain.FrequencyTwiceMonthly, FirstDay: 15, SecondDay: 15,
				}},
			}},
			kind: domain.ProjectionInvalidDay, field: "recurring_income[0].schedule.second_day",
		},
		{
			name: "single shot income missing date",
			in: &Input{SingleShotIncome: []domain.SingleShotIncome{
				{ID: "s1", AmountCents: 100},
			}},
			kind: domain.ProjectionInvalidInput, field: "single_shot_income[0].date",
		},
		{
			name: "fixed expense due day out of range",
			in: &Input{FixedExpenses: []domain.FixedExpense{
				{ID: "f1", DueDay: 0},
			}},
			kind: domain.ProjectionInvalidDay, field: "fixed_expenses[0].due_day",
		},
		{
			name: "credit card due day out of range",
			in: &Input{CreditCards: []domain.CreditCard{
				{ID: "c1", DueDay: 42},
			}},
			kind: domain.ProjectionInvalidDay, field: "credit_cards[0].due_day",
		},
		{
			name: "future statement month out of range",
			in: &Input{FutureStatements: []domain.FutureStatement{
				{CardID: "c1", TargetYear: 2025, TargetMonth: 13},
			}},
			kind: domain.ProjectionInvalidDay, field: "future_statements[0].target_month",
		},
		{
			name: "future statement missing card",
			in: &Input{FutureStatements: []domain.FutureStatement{
				{TargetYear: 2025, TargetMonth: 3},
			}},
			kind: domain.ProjectionInvalidInput, field: "future_statements[0].card_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj, err := Project(tt.in, tt.opts)
			if proj != nil {
				t.Error("validation failure must not return partial output")
			}
			pe := projectionErr(t, err)
			if pe.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", pe.Kind, tt.kind)
			}
			if pe.Field != tt.field {
				t.Errorf("field = %s, want %s", pe.Field, tt.field)
			}
		})
	}
}

func TestValidateNegativeAmountPolicy(t *testing.T) {
	in := func() *Input {
		return &Input{SingleShotExpenses: []domain.SingleShotExpense{
			{ID: "e1", Name: "Refund", AmountCents: -5000, Date: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)},
		}}
	}

	// Default: negative amounts pass through.
	if _, err := Project(in(), Options{StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}); err != nil {
		t.Fatalf("negative amount rejected without strict mode: %v", err)
	}

	// Strict mode: rejected as INVALID_AMOUNT.
	_, err := Project(in(), Options{
		StartDate:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		RejectNegative: true,
	})
	pe := projectionErr(t, err)
	if pe.Kind != domain.ProjectionInvalidAmount {
		t.Errorf("kind = %s, want %s", pe.Kind, domain.ProjectionInvalidAmount)
	}
	if pe.Field != "single_shot_expenses[0].amount_cents" {
		t.Errorf("field = %s", pe.Field)
	}
}
