package domain

import "time"

// ============================================================
// Cashflow Projection — engine output
// ============================================================

// ExpenseSource classifies where an expense event came from.
type ExpenseSource string

const (
	ExpenseSourceFixed      ExpenseSource = "fixed_expense"
	ExpenseSourceSingleShot ExpenseSource = "single_shot"
	ExpenseSourceCreditCard ExpenseSource = "credit_card"
)

// IncomeEvent is one income occurrence on one projected day.
type IncomeEvent struct {
	SourceID    string    `json:"source_id"`
	SourceName  string    `json:"source_name"`
	AmountCents int64     `json:"amount_cents"`
	Certainty   Certainty `json:"certainty,omitempty"`
}

// ExpenseEvent is one expense occurrence on one projected day. Expense
// events apply identically to both scenarios.
type ExpenseEvent struct {
	SourceID    string        `json:"source_id"`
	SourceName  string        `json:"source_name"`
	SourceType  ExpenseSource `json:"source_type"`
	AmountCents int64         `json:"amount_cents"`
}

// DailySnapshot is the per-day record of both scenarios' running balances
// and that day's events. IncomeEvents holds the optimistic set, which by
// construction is a superset of the pessimistic set.
type DailySnapshot struct {
	Date                    time.Time      `json:"date"`
	DayOffset               int            `json:"day_offset"`
	OptimisticBalanceCents  int64          `json:"optimistic_balance_cents"`
	PessimisticBalanceCents int64          `json:"pessimistic_balance_cents"`
	IncomeEvents            []IncomeEvent  `json:"income_events"`
	ExpenseEvents           []ExpenseEvent `json:"expense_events"`
	IsOptimisticDanger      bool           `json:"is_optimistic_danger"`
	IsPessimisticDanger     bool           `json:"is_pessimistic_danger"`
}

// DangerDay records a day on which a scenario's running balance was
// negative.
type DangerDay struct {
	Date         time.Time `json:"date"`
	DayOffset    int       `json:"day_offset"`
	BalanceCents int64     `json:"balance_cents"`
}

// ScenarioSummary aggregates one scenario across the whole window.
type ScenarioSummary struct {
	TotalIncomeCents   int64       `json:"total_income_cents"`
	TotalExpensesCents int64       `json:"total_expenses_cents"`
	EndBalanceCents    int64       `json:"end_balance_cents"`
	DangerDays         []DangerDay `json:"danger_days"`
	DangerDayCount     int         `json:"danger_day_count"`
}

// CashflowProjection is the full day-by-day balance forecast under the two
// certainty scenarios. Fully derived: no identity, recomputed from scratch
// on every call. Callers must treat it as immutable.
type CashflowProjection struct {
	StartDate            time.Time       `json:"start_date"`
	EndDate              time.Time       `json:"end_date"`
	StartingBalanceCents int64           `json:"starting_balance_cents"`
	Days                 []DailySnapshot `json:"days"`
	Optimistic           ScenarioSummary `json:"optimistic"`
	Pessimistic          ScenarioSummary `json:"pessimistic"`
}

// ============================================================
// Snapshot history
// ============================================================

// ProjectionSnapshot is a stored copy of a computed projection, persisted
// verbatim for later read-only replay.
type ProjectionSnapshot struct {
	ID          string              `json:"id"`
	HouseholdID string              `json:"household_id"`
	ComputedAt  time.Time           `json:"computed_at"`
	StartDate   time.Time           `json:"start_date"`
	Days        int                 `json:"days"`
	Projection  *CashflowProjection `json:"projection"`
}
