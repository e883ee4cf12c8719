package engine

import (
	"fmt"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

func invalid(kind domain.ProjectionErrorKind, field, msg string) error {
	return &domain.ErrProjectionInput{Kind: kind, Field: field, Message: msg}
}

// validate checks the whole input before any computation begins. It
// returns the first violation found, carrying the offending field path.
func validate(in *Input, opts Options) error {
	if in == nil {
		return invalid(domain.ProjectionInvalidInput, "input", "missing input")
	}
	if opts.ProjectionDays < 0 {
		return invalid(domain.ProjectionInvalidDays, "options.projection_days",
			fmt.Sprintf("must be a positive integer, got %d", opts.ProjectionDays))
	}

	for i := range in.Accounts {
		a := &in.Accounts[i]
		field := fmt.Sprintf("accounts[%d]", i)
		switch a.AccountType {
		case domain.AccountChecking, domain.AccountSavings, domain.AccountInvestment:
		default:
			return invalid(domain.ProjectionInvalidInput, field+".account_type",
				fmt.Sprintf("unknown account type %q", a.AccountType))
		}
		if err := checkAmount(opts, a.BalanceCents, field+".balance_cents"); err != nil {
			return err
		}
	}

	for i := range in.RecurringIncome {
		p := &in.RecurringIncome[i]
		field := fmt.Sprintf("recurring_income[%d]", i)
		if !p.Certainty.Valid() {
			return invalid(domain.ProjectionInvalidCertainty, field+".certainty",
				fmt.Sprintf("unknown certainty %q", p.Certainty))
		}
		if err := validateSchedule(&p.Schedule, field+".schedule"); err != nil {
			return err
		}
		if err := checkAmount(opts, p.AmountCents, field+".amount_cents"); err != nil {
			return err
		}
		if p.Schedule.FirstAmountCents != nil {
			if err := checkAmount(opts, *p.Schedule.FirstAmountCents, field+".schedule.first_amount_cents"); err != nil {
				return err
			}
		}
		if p.Schedule.SecondAmountCents != nil {
			if err := checkAmount(opts, *p.Schedule.SecondAmountCents, field+".schedule.second_amount_cents"); err != nil {
				return err
			}
		}
	}

	for i := range in.SingleShotIncome {
		s := &in.SingleShotIncome[i]
		field := fmt.Sprintf("single_shot_income[%d]", i)
		if s.Date.IsZero() {
			return invalid(domain.ProjectionInvalidInput, field+".date", "missing date")
		}
		if s.Certainty != "" && !s.Certainty.Valid() {
			return invalid(domain.ProjectionInvalidCertainty, field+".certainty",
				fmt.Sprintf("unknown certainty %q", s.Certainty))
		}
		if err := checkAmount(opts, s.AmountCents, field+".amount_cents"); err != nil {
			return err
		}
	}

	for i := range in.FixedExpenses {
		f := &in.FixedExpenses[i]
		field := fmt.Sprintf("fixed_expenses[%d]", i)
		if f.DueDay < 1 || f.DueDay > 31 {
			return invalid(domain.ProjectionInvalidDay, field+".due_day",
				fmt.Sprintf("day must be in 1..31, got %d", f.DueDay))
		}
		if err := checkAmount(opts, f.AmountCents, field+".amount_cents"); err != nil {
			return err
		}
	}

	for i := range in.SingleShotExpenses {
		s := &in.SingleShotExpenses[i]
		field := fmt.Sprintf("single_shot_expenses[%d]", i)
		if s.Date.IsZero() {
			return invalid(domain.ProjectionInvalidInput, field+".date", "missing date")
		}
		if err := checkAmount(opts, s.AmountCents, field+".amount_cents"); err != nil {
			return err
		}
	}

	for i := range in.CreditCards {
		c := &in.CreditCards[i]
		field := fmt.Sprintf("credit_cards[%d]", i)
		if c.DueDay < 1 || c.DueDay > 31 {
			return invalid(domain.ProjectionInvalidDay, field+".due_day",
				fmt.Sprintf("day must be in 1..31, got %d", c.DueDay))
		}
		if err := checkAmount(opts, c.StatementBalanceCents, field+".statement_balance_cents"); err != nil {
			return err
		}
	}

	for i := range in.FutureStatements {
		fs := &in.FutureStatements[i]
		field := fmt.Sprintf("future_statements[%d]", i)
		if fs.CardID == "" {
			return invalid(domain.ProjectionInvalidInput, field+".card_id", "missing card id")
		}
		if fs.TargetMonth < 1 || fs.TargetMonth > 12 {
			return invalid(domain.ProjectionInvalidDay, field+".target_month",
				fmt.Sprintf("month must be in 1..12, got %d", fs.TargetMonth))
		}
		if err := checkAmount(opts, fs.AmountCents, field+".amount_cents"); err != nil {
			return err
		}
	}

	return nil
}

func validateSchedule(s *domain.Schedule, field string) error {
	switch s.Frequency {
	case domain.FrequencyWeekly, domain.FrequencyBiweekly:
		if s.Weekday < 1 || s.Weekday > 7 {
			return invalid(domain.ProjectionInvalidDay, field+".weekday",
				fmt.Sprintf("ISO weekday must be in 1..7, got %d", s.Weekday))
		}
		if s.Frequency == domain.FrequencyBiweekly && s.AnchorDate != nil &&
			isoWeekday(*s.AnchorDate) != s.Weekday {
			return invalid(domain.ProjectionInvalidDay, field+".anchor_date",
				"anchor date must fall on the schedule's weekday")
		}
	case domain.FrequencyMonthly:
		if s.DayOfMonth < 1 || s.DayOfMonth > 31 {
			return invalid(domain.ProjectionInvalidDay, field+".day_of_month",
				fmt.Sprintf("day must be in 1..31, got %d", s.DayOfMonth))
		}
	case domain.FrequencyTwiceMonthly:
		if s.FirstDay < 1 || s.FirstDay > 31 {
			return invalid(domain.ProjectionInvalidDay, field+".first_day",
				fmt.Sprintf("day must be in 1..31, got %d", s.FirstDay))
		}
		if s.SecondDay < 1 || s.SecondDay > 31 {
			return invalid(domain.ProjectionInvalidDay, field+".second_day",
				fmt.Sprintf("day must be in 1..31, got %d", s.SecondDay))
		}
		if s.FirstDay == s.SecondDay {
			return invalid(domain.ProjectionInvalidDay, field+".second_day",
				"first and second pay days must differ")
		}
	default:
		return invalid(domain.ProjectionInvalidFrequency, field+".frequency",
			fmt.Sprintf("unknown frequency %q", s.Frequency))
	}
	return nil
}

// checkAmount enforces the optional strict-sign policy. Amounts are int64
// cents everywhere, so non-integer values can only appear at the JSON
// boundary and are rejected there by decoding.
func checkAmount(opts Options, cents int64, field string) error {
	if opts.RejectNegative && cents < 0 {
		return invalid(domain.ProjectionInvalidAmount, field,
			fmt.Sprintf("negative amount %d not allowed", cents))
	}
	return nil
}
