package supabase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// FinanceStore persists all household financial entities in Supabase.
// One table per entity; every row carries household_id for scoping.
type FinanceStore struct {
	client *Client
}

// NewFinanceStore creates a finance store backed by the given client.
func NewFinanceStore(client *Client) *FinanceStore {
	return &FinanceStore{client: client}
}

// ============================================================
// Accounts
// ============================================================

func (s *FinanceStore) ListAccounts(ctx context.Context, householdID string) ([]domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.ListAccounts")
	defer span.End()

	path := fmt.Sprintf("accounts?household_id=eq.%s&order=name.asc", householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Account](body, "accounts")
}

func (s *FinanceStore) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.CreateAccount")
	defer span.End()

	body, err := s.client.doPost(ctx, "accounts", account)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Account](body, "accounts")
}

func (s *FinanceStore) UpdateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.UpdateAccount")
	defer span.End()

	path := fmt.Sprintf("accounts?id=eq.%s&household_id=eq.%s", account.ID, account.HouseholdID)
	body, err := s.client.doPatch(ctx, path, account)
	if err != nil {
		return nil, err
	}
	updated, err := decodeOne[domain.Account](body, "accounts")
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.ErrNotFound{Resource: "account", ID: account.ID}
	}
	return updated, nil
}

func (s *FinanceStore) DeleteAccount(ctx context.Context, householdID, accountID string) error {
	ctx, span := tracer.Start(ctx, "FinanceStore.DeleteAccount")
	defer span.End()

	path := fmt.Sprintf("accounts?id=eq.%s&household_id=eq.%s", accountID, householdID)
	return s.client.doDelete(ctx, path)
}

// ============================================================
// Recurring income
// ============================================================

func (s *FinanceStore) ListRecurringIncome(ctx context.Context, householdID string) ([]domain.RecurringIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.ListRecurringIncome")
	defer span.End()

	path := fmt.Sprintf("recurring_income?household_id=eq.%s&order=name.asc", householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.RecurringIncome](body, "recurring_income")
}

func (s *FinanceStore) CreateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.CreateRecurringIncome")
	defer span.End()

	body, err := s.client.doPost(ctx, "recurring_income", item)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.RecurringIncome](body, "recurring_income")
}

func (s *FinanceStore) UpdateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.UpdateRecurringIncome")
	defer span.End()

	path := fmt.Sprintf("recurring_income?id=eq.%s&household_id=eq.%s", item.ID, item.HouseholdID)
	body, err := s.client.doPatch(ctx, path, item)
	if err != nil {
		return nil, err
	}
	updated, err := decodeOne[domain.RecurringIncome](body, "recurring_income")
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.ErrNotFound{Resource: "recurring_income", ID: item.ID}
	}
	return updated, nil
}

func (s *FinanceStore) DeleteRecurringIncome(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceStore.DeleteRecurringIncome")
	defer span.End()

	path := fmt.Sprintf("recurring_income?id=eq.%s&household_id=eq.%s", itemID, householdID)
	return s.client.doDelete(ctx, path)
}

// ============================================================
// Single-shot income
// ============================================================

func (s *FinanceStore) ListSingleShotIncome(ctx context.Context, householdID string) ([]domain.SingleShotIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.ListSingleShotIncome")
	defer span.End()

	path := fmt.Sprintf("single_shot_income?household_id=eq.%s&order=date.asc", householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.SingleShotIncome](body, "single_shot_income")
}

func (s *FinanceStore) CreateSingleShotIncome(ctx context.Context, item *domain.SingleShotIncome) (*domain.SingleShotIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.CreateSingleShotIncome")
	defer span.End()

	body, err := s.client.doPost(ctx, "single_shot_income", item)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.SingleShotIncome](body, "single_shot_income")
}

func (s *FinanceStore) DeleteSingleShotIncome(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceStore.DeleteSingleShotIncome")
	defer span.End()

	path := fmt.Sprintf("single_shot_income?id=eq.%s&household_id=eq.%s", itemID, householdID)
	return s.client.doDelete(ctx, path)
}

// ============================================================
// Fixed expenses
// ============================================================

func (s *FinanceStore) ListFixedExpenses(ctx context.Context, householdID string) ([]domain.FixedExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.ListFixedExpenses")
	defer span.End()

	path := fmt.Sprintf("fixed_expenses?household_id=eq.%s&order=due_day.asc", householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.FixedExpense](body, "fixed_expenses")
}

func (s *FinanceStore) CreateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.CreateFixedExpense")
	defer span.End()

	body, err := s.client.doPost(ctx, "fixed_expenses", item)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.FixedExpense](body, "fixed_expenses")
}

func (s *FinanceStore) UpdateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.UpdateFixedExpense")
	defer span.End()

	path := fmt.Sprintf("fixed_expenses?id=eq.%s&household_id=eq.%s", item.ID, item.HouseholdID)
	body, err := s.client.doPatch(ctx, path, item)
	if err != nil {
		return nil, err
	}
	updated, err := decodeOne[domain.FixedExpense](body, "fixed_expenses")
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.ErrNotFound{Resource: "fixed_expense", ID: item.ID}
	}
	return updated, nil
}

func (s *FinanceStore) DeleteFixedExpense(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceStore.DeleteFixedExpense")
	defer span.End()

	path := fmt.Sprintf("fixed_expenses?id=eq.%s&household_id=eq.%s", itemID, householdID)
	return s.client.doDelete(ctx, path)
}

// ============================================================
// Single-shot expenses
// ============================================================

func (s *FinanceStore) ListSingleShotExpenses(ctx context.Context, householdID string) ([]domain.SingleShotExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.ListSingleShotExpenses")
	defer span.End()

	path := fmt.Sprintf("single_shot_expenses?household_id=eq.%s&order=date.asc", householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.SingleShotExpense](body, "single_shot_expenses")
}

func (s *FinanceStore) CreateSingleShotExpense(ctx context.Context, item *domain.SingleShotExpense) (*domain.SingleShotExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.CreateSingleShotExpense")
	defer span.End()

	body, err := s.client.doPost(ctx, "single_shot_expenses", item)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.SingleShotExpense](body, "single_shot_expenses")
}

func (s *FinanceStore) DeleteSingleShotExpense(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceStore.DeleteSingleShotExpense")
	defer span.End()

	path := fmt.Sprintf("single_shot_expenses?id=eq.%s&household_id=eq.%s", itemID, householdID)
	return s.client.doDelete(ctx, path)
}

// ============================================================
// Credit cards
// ============================================================

func (s *FinanceStore) ListCreditCards(ctx context.Context, householdID string) ([]domain.CreditCard, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.ListCreditCards")
	defer span.End()

	path := fmt.Sprintf("credit_cards?household_id=eq.%s&order=name.asc", householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.CreditCard](body, "credit_cards")
}

func (s *FinanceStore) CreateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.CreateCreditCard")
	defer span.End()

	body, err := s.client.doPost(ctx, "credit_cards", card)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.CreditCard](body, "credit_cards")
}

func (s *FinanceStore) UpdateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.UpdateCreditCard")
	defer span.End()

	path := fmt.Sprintf("credit_cards?id=eq.%s&household_id=eq.%s", card.ID, card.HouseholdID)
	body, err := s.client.doPatch(ctx, path, card)
	if err != nil {
		return nil, err
	}
	updated, err := decodeOne[domain.CreditCard](body, "credit_cards")
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.ErrNotFound{Resource: "credit_card", ID: card.ID}
	}
	return updated, nil
}

func (s *FinanceStore) DeleteCreditCard(ctx context.Context, householdID, cardID string) error {
	ctx, span := tracer.Start(ctx, "FinanceStore.DeleteCreditCard")
	defer span.End()

	path := fmt.Sprintf("credit_cards?id=eq.%s&household_id=eq.%s", cardID, householdID)
	return s.client.doDelete(ctx, path)
}

// ============================================================
// Future statements
// ============================================================

func (s *FinanceStore) ListFutureStatements(ctx context.Context, householdID string) ([]domain.FutureStatement, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.ListFutureStatements")
	defer span.End()

	path := fmt.Sprintf("future_statements?household_id=eq.%s&order=target_year.asc,target_month.asc", householdID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.FutureStatement](body, "future_statements")
}

func (s *FinanceStore) CreateFutureStatement(ctx context.Context, stmt *domain.FutureStatement) (*domain.FutureStatement, error) {
	ctx, span := tracer.Start(ctx, "FinanceStore.CreateFutureStatement")
	defer span.End()

	body, err := s.client.doPost(ctx, "future_statements", stmt)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.FutureStatement](body, "future_statements")
}

func (s *FinanceStore) DeleteFutureStatement(ctx context.Context, householdID, stmtID string) error {
	ctx, span := tracer.Start(ctx, "FinanceStore.DeleteFutureStatement")
	defer span.End()

	path := fmt.Sprintf("future_statements?id=eq.%s&household_id=eq.%s", stmtID, householdID)
	return s.client.doDelete(ctx, path)
}
