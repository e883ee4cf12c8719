package domain

import "time"

// ============================================================
// Income — recurring ("projects") and single-shot
// ============================================================

// Certainty is the three-level confidence tag on income items. It controls
// which projection scenario includes the item: the optimistic scenario
// includes everything, the pessimistic scenario only guaranteed income.
type Certainty string

const (
	CertaintyGuaranteed Certainty = "guaranteed"
	CertaintyProbable   Certainty = "probable"
	CertaintyUncertain  Certainty = "uncertain"
)

// Valid reports whether c is one of the known certainty tags.
func (c Certainty) Valid() bool {
	switch c {
	case CertaintyGuaranteed, CertaintyProbable, CertaintyUncertain:
		return true
	}
	return false
}

// ScheduleFrequency tags the recurrence rule of a schedule. The set is
// closed; the schedule expander switches exhaustively over it.
type ScheduleFrequency string

const (
	FrequencyWeekly       ScheduleFrequency = "weekly"
	FrequencyBiweekly     ScheduleFrequency = "biweekly"
	FrequencyMonthly      ScheduleFrequency = "monthly"
	FrequencyTwiceMonthly ScheduleFrequency = "twice_monthly"
)

// Schedule describes when a recurring income item occurs. Exactly the
// fields for its Frequency are meaningful:
//
//   - weekly / biweekly: Weekday (ISO, 1=Monday .. 7=Sunday). Biweekly
//     additionally honors AnchorDate as the parity reference when set;
//     otherwise the first matching date in the projection window is week 0.
//   - monthly: DayOfMonth (1..31, clamped to the last day of short months).
//   - twice_monthly: FirstDay and SecondDay (each 1..31, clamped
//     independently), with optional per-slot amounts.
type Schedule struct {
	Frequency ScheduleFrequency `json:"frequency"`

	Weekday    int        `json:"weekday,omitempty"`
	AnchorDate *time.Time `json:"anchor_date,omitempty"`

	DayOfMonth int `json:"day_of_month,omitempty"`

	FirstDay          int    `json:"first_day,omitempty"`
	SecondDay         int    `json:"second_day,omitempty"`
	FirstAmountCents  *int64 `json:"first_amount_cents,omitempty"`
	SecondAmountCents *int64 `json:"second_amount_cents,omitempty"`
}

// RecurringIncome is a recurring income source ("project"): salary,
// freelance retainer, rental income. Inactive items are excluded from both
// scenarios.
type RecurringIncome struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id,omitempty"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amount_cents"`
	Certainty   Certainty `json:"certainty"`
	IsActive    bool      `json:"is_active"`
	Schedule    Schedule  `json:"schedule"`
}

// SingleShotIncome is income expected on exactly one calendar date.
// Certainty is optional; when absent the item counts toward the optimistic
// scenario only (same treatment as non-guaranteed income).
type SingleShotIncome struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id,omitempty"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
	Certainty   Certainty `json:"certainty,omitempty"`
}
