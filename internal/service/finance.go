package service

import (
	"context"
	"strings"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
	"github.com/boddenberg/casa-cashflow-go/internal/port"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FinanceService handles CRUD on the household's financial entities. Every
// mutation validates first, then writes through to the store and drops the
// household's cached projection.
type FinanceService struct {
	store          port.FinanceStore
	cashflow       *CashflowService
	logger         *zap.Logger
	rejectNegative bool
}

// NewFinanceService creates the entity CRUD service.
func NewFinanceService(store port.FinanceStore, cashflow *CashflowService, logger *zap.Logger, rejectNegative bool) *FinanceService {
	return &FinanceService{
		store:          store,
		cashflow:       cashflow,
		logger:         logger,
		rejectNegative: rejectNegative,
	}
}

// ============================================================
// Validation helpers
// ============================================================

func (s *FinanceService) checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ErrValidation{Field: "name", Message: "must not be empty"}
	}
	return nil
}

func (s *FinanceService) checkAmount(field string, cents int64) error {
	if s.rejectNegative && cents < 0 {
		return &domain.ErrValidation{Field: field, Message: "must not be negative"}
	}
	return nil
}

func checkDayOfMonth(field string, day int) error {
	if day < 1 || day > 31 {
		return &domain.ErrValidation{Field: field, Message: "must be between 1 and 31"}
	}
	return nil
}

func checkSchedule(sched *domain.Schedule) error {
	switch sched.Frequency {
	case domain.FrequencyWeekly, domain.FrequencyBiweekly:
		if sched.Weekday < 1 || sched.Weekday > 7 {
			return &domain.ErrValidation{Field: "schedule.weekday", Message: "must be between 1 (Monday) and 7 (Sunday)"}
		}
	case domain.FrequencyMonthly:
		return checkDayOfMonth("schedule.day_of_month", sched.DayOfMonth)
	case domain.FrequencyTwiceMonthly:
		if err := checkDayOfMonth("schedule.first_day", sched.FirstDay); err != nil {
			return err
		}
		if err := checkDayOfMonth("schedule.second_day", sched.SecondDay); err != nil {
			return err
		}
		if sched.FirstDay == sched.SecondDay {
			return &domain.ErrValidation{Field: "schedule.second_day", Message: "must differ from first_day"}
		}
	default:
		return &domain.ErrValidation{Field: "schedule.frequency", Message: "unknown frequency"}
	}
	return nil
}

// ============================================================
// Accounts
// ============================================================

func (s *FinanceService) ListAccounts(ctx context.Context, householdID string) ([]domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListAccounts")
	defer span.End()

	return s.store.ListAccounts(ctx, householdID)
}

func (s *FinanceService) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateAccount")
	defer span.End()

	if err := s.checkName(account.Name); err != nil {
		return nil, err
	}
	switch account.AccountType {
	case domain.AccountChecking, domain.AccountSavings, domain.AccountInvestment:
	default:
		return nil, &domain.ErrValidation{Field: "account_type", Message: "must be checking, savings or investment"}
	}
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	created, err := s.store.CreateAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(account.HouseholdID)
	return created, nil
}

func (s *FinanceService) UpdateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateAccount")
	defer span.End()

	if err := s.checkName(account.Name); err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(account.HouseholdID)
	return updated, nil
}

func (s *FinanceService) DeleteAccount(ctx context.Context, householdID, accountID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteAccount")
	defer span.End()

	if err := s.store.DeleteAccount(ctx, householdID, accountID); err != nil {
		return err
	}
	s.cashflow.InvalidateProjection(householdID)
	return nil
}

// ============================================================
// Recurring income
// ============================================================

func (s *FinanceService) ListRecurringIncome(ctx context.Context, householdID string) ([]domain.RecurringIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListRecurringIncome")
	defer span.End()

	return s.store.ListRecurringIncome(ctx, householdID)
}

func (s *FinanceService) validateRecurringIncome(item *domain.RecurringIncome) error {
	if err := s.checkName(item.Name); err != nil {
		return err
	}
	if err := s.checkAmount("amount_cents", item.AmountCents); err != nil {
		return err
	}
	if !item.Certainty.Valid() {
		return &domain.ErrValidation{Field: "certainty", Message: "must be guaranteed, probable or uncertain"}
	}
	return checkSchedule(&item.Schedule)
}

func (s *FinanceService) CreateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateRecurringIncome")
	defer span.End()

	if err := s.validateRecurringIncome(item); err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	created, err := s.store.CreateRecurringIncome(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(item.HouseholdID)
	return created, nil
}

func (s *FinanceService) UpdateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateRecurringIncome")
	defer span.End()

	if err := s.validateRecurringIncome(item); err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateRecurringIncome(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(item.HouseholdID)
	return updated, nil
}

func (s *FinanceService) DeleteRecurringIncome(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteRecurringIncome")
	defer span.End()

	if err := s.store.DeleteRecurringIncome(ctx, householdID, itemID); err != nil {
		return err
	}
	s.cashflow.InvalidateProjection(householdID)
	return nil
}

// ============================================================
// Single-shot income
// ============================================================

func (s *FinanceService) ListSingleShotIncome(ctx context.Context, householdID string) ([]domain.SingleShotIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListSingleShotIncome")
	defer span.End()

	return s.store.ListSingleShotIncome(ctx, householdID)
}

func (s *FinanceService) CreateSingleShotIncome(ctx context.Context, item *domain.SingleShotIncome) (*domain.SingleShotIncome, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateSingleShotIncome")
	defer span.End()

	if err := s.checkName(item.Name); err != nil {
		return nil, err
	}
	if err := s.checkAmount("amount_cents", item.AmountCents); err != nil {
		return nil, err
	}
	if item.Date.IsZero() {
		return nil, &domain.ErrValidation{Field: "date", Message: "must be set"}
	}
	// Certainty is optional on single-shot income; when set it must be valid.
	if item.Certainty != "" && !item.Certainty.Valid() {
		return nil, &domain.ErrValidation{Field: "certainty", Message: "must be guaranteed, probable or uncertain"}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	created, err := s.store.CreateSingleShotIncome(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(item.HouseholdID)
	return created, nil
}

func (s *FinanceService) DeleteSingleShotIncome(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteSingleShotIncome")
	defer span.End()

	if err := s.store.DeleteSingleShotIncome(ctx, householdID, itemID); err != nil {
		return err
	}
	s.cashflow.InvalidateProjection(householdID)
	return nil
}

// ============================================================
// Fixed expenses
// ============================================================

func (s *FinanceService) ListFixedExpenses(ctx context.Context, householdID string) ([]domain.FixedExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListFixedExpenses")
	defer span.End()

	return s.store.ListFixedExpenses(ctx, householdID)
}

func (s *FinanceService) validateFixedExpense(item *domain.FixedExpense) error {
	if err := s.checkName(item.Name); err != nil {
		return err
	}
	if err := s.checkAmount("amount_cents", item.AmountCents); err != nil {
		return err
	}
	return checkDayOfMonth("due_day", item.DueDay)
}

func (s *FinanceService) CreateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateFixedExpense")
	defer span.End()

	if err := s.validateFixedExpense(item); err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	created, err := s.store.CreateFixedExpense(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(item.HouseholdID)
	return created, nil
}

func (s *FinanceService) UpdateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateFixedExpense")
	defer span.End()

	if err := s.validateFixedExpense(item); err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateFixedExpense(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(item.HouseholdID)
	return updated, nil
}

func (s *FinanceService) DeleteFixedExpense(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteFixedExpense")
	defer span.End()

	if err := s.store.DeleteFixedExpense(ctx, householdID, itemID); err != nil {
		return err
	}
	s.cashflow.InvalidateProjection(householdID)
	return nil
}

// ============================================================
// Single-shot expenses
// ============================================================

func (s *FinanceService) ListSingleShotExpenses(ctx context.Context, householdID string) ([]domain.SingleShotExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListSingleShotExpenses")
	defer span.End()

	return s.store.ListSingleShotExpenses(ctx, householdID)
}

func (s *FinanceService) CreateSingleShotExpense(ctx context.Context, item *domain.SingleShotExpense) (*domain.SingleShotExpense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateSingleShotExpense")
	defer span.End()

	if err := s.checkName(item.Name); err != nil {
		return nil, err
	}
	if err := s.checkAmount("amount_cents", item.AmountCents); err != nil {
		return nil, err
	}
	if item.Date.IsZero() {
		return nil, &domain.ErrValidation{Field: "date", Message: "must be set"}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	created, err := s.store.CreateSingleShotExpense(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(item.HouseholdID)
	return created, nil
}

func (s *FinanceService) DeleteSingleShotExpense(ctx context.Context, householdID, itemID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteSingleShotExpense")
	defer span.End()

	if err := s.store.DeleteSingleShotExpense(ctx, householdID, itemID); err != nil {
		return err
	}
	s.cashflow.InvalidateProjection(householdID)
	return nil
}

// ============================================================
// Credit cards
// ============================================================

func (s *FinanceService) ListCreditCards(ctx context.Context, householdID string) ([]domain.CreditCard, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListCreditCards")
	defer span.End()

	return s.store.ListCreditCards(ctx, householdID)
}

func (s *FinanceService) validateCreditCard(card *domain.CreditCard) error {
	if err := s.checkName(card.Name); err != nil {
		return err
	}
	if err := s.checkAmount("statement_balance_cents", card.StatementBalanceCents); err != nil {
		return err
	}
	return checkDayOfMonth("due_day", card.DueDay)
}

func (s *FinanceService) CreateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateCreditCard")
	defer span.End()

	if err := s.validateCreditCard(card); err != nil {
		return nil, err
	}
	if card.ID == "" {
		card.ID = uuid.NewString()
	}

	created, err := s.store.CreateCreditCard(ctx, card)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(card.HouseholdID)
	return created, nil
}

func (s *FinanceService) UpdateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateCreditCard")
	defer span.End()

	if err := s.validateCreditCard(card); err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateCreditCard(ctx, card)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(card.HouseholdID)
	return updated, nil
}

func (s *FinanceService) DeleteCreditCard(ctx context.Context, householdID, cardID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteCreditCard")
	defer span.End()

	if err := s.store.DeleteCreditCard(ctx, householdID, cardID); err != nil {
		return err
	}
	s.cashflow.InvalidateProjection(householdID)
	return nil
}

// ============================================================
// Future statements
// ============================================================

func (s *FinanceService) ListFutureStatements(ctx context.Context, householdID string) ([]domain.FutureStatement, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListFutureStatements")
	defer span.End()

	return s.store.ListFutureStatements(ctx, householdID)
}

func (s *FinanceService) CreateFutureStatement(ctx context.Context, stmt *domain.FutureStatement) (*domain.FutureStatement, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateFutureStatement")
	defer span.End()

	if stmt.CardID == "" {
		return nil, &domain.ErrValidation{Field: "card_id", Message: "must be set"}
	}
	if stmt.TargetMonth < 1 || stmt.TargetMonth > 12 {
		return nil, &domain.ErrValidation{Field: "target_month", Message: "must be between 1 and 12"}
	}
	if err := s.checkAmount("amount_cents", stmt.AmountCents); err != nil {
		return nil, err
	}
	if stmt.ID == "" {
		stmt.ID = uuid.NewString()
	}

	created, err := s.store.CreateFutureStatement(ctx, stmt)
	if err != nil {
		return nil, err
	}
	s.cashflow.InvalidateProjection(stmt.HouseholdID)
	return created, nil
}

func (s *FinanceService) DeleteFutureStatement(ctx context.Context, householdID, stmtID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteFutureStatement")
	defer span.End()

	if err := s.store.DeleteFutureStatement(ctx, householdID, stmtID); err != nil {
		return err
	}
	s.cashflow.InvalidateProjection(householdID)
	return nil
}
