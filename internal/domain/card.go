package domain

// ============================================================
// Credit Cards
// ============================================================

// CreditCard produces one expense event per projected month on DueDay,
// equal to StatementBalanceCents unless a FutureStatement override exists
// for that card and month.
type CreditCard struct {
	ID                    string `json:"id"`
	HouseholdID           string `json:"household_id,omitempty"`
	Name                  string `json:"name"`
	StatementBalanceCents int64  `json:"statement_balance_cents"`
	DueDay                int    `json:"due_day"`
}

// FutureStatement overrides a card's due amount for one specific month,
// used when the real upcoming statement amount is already known.
type FutureStatement struct {
	ID          string `json:"id,omitempty"`
	HouseholdID string `json:"household_id,omitempty"`
	CardID      string `json:"card_id"`
	TargetYear  int    `json:"target_year"`
	TargetMonth int    `json:"target_month"`
	AmountCents int64  `json:"amount_cents"`
}
