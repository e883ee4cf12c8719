// Package domain defines the core business entities for the household
// cashflow tracker. These models are independent of external services and
// represent the canonical data structures used throughout the backend.
//
// All monetary values are int64 amounts in minor currency units (cents).
// Floating point is never used for money.
package domain

// ============================================================
// Accounts
// ============================================================

// AccountType classifies a household account.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
)

// Account represents one household bank account. Only checking accounts
// contribute to a projection's starting balance; savings and investment
// balances are informational.
type Account struct {
	ID           string      `json:"id"`
	HouseholdID  string      `json:"household_id,omitempty"`
	Name         string      `json:"name"`
	AccountType  AccountType `json:"account_type"`
	BalanceCents int64       `json:"balance_cents"`
}
