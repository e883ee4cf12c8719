package domain

import "time"

// ============================================================
// Expenses — fixed monthly and single-shot
// ============================================================

// FixedExpense recurs monthly on DueDay (clamped to the last day of short
// months). Inactive items are excluded from projections. Expenses carry no
// certainty: both scenarios pay every expense.
type FixedExpense struct {
	ID          string `json:"id"`
	HouseholdID string `json:"household_id,omitempty"`
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
	DueDay      int    `json:"due_day"`
	IsActive    bool   `json:"is_active"`
}

// SingleShotExpense is an expense due on exactly one calendar date.
type SingleShotExpense struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id,omitempty"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
}
