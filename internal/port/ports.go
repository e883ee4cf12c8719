// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// FinanceStore defines all data operations on the household's financial
// entities. Implemented by the Supabase adapter (or any other persistence
// layer). The projection engine never sees this interface; services fetch
// plain slices and hand them over.
type FinanceStore interface {
	// Accounts
	ListAccounts(ctx context.Context, householdID string) ([]domain.Account, error)
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, householdID, accountID string) error

	// Recurring income
	ListRecurringIncome(ctx context.Context, householdID string) ([]domain.RecurringIncome, error)
	CreateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error)
	UpdateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error)
	DeleteRecurringIncome(ctx context.Context, householdID, itemID string) error

	// Single-shot income
	ListSingleShotIncome(ctx context.Context, householdID string) ([]domain.SingleShotIncome, error)
	CreateSingleShotIncome(ctx context.Context, item *domain.SingleShotIncome) (*domain.SingleShotIncome, error)
	DeleteSingleShotIncome(ctx context.Context, householdID, itemID string) error

	// Fixed expenses
	ListFixedExpenses(ctx context.Context, householdID string) ([]domain.FixedExpense, error)
	CreateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error)
	UpdateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error)
	DeleteFixedExpense(ctx context.Context, householdID, itemID string) error

	// Single-shot expenses
	ListSingleShotExpenses(ctx context.Context, householdID string) ([]domain.SingleShotExpense, error)
	CreateSingleShotExpense(ctx context.Context, item *domain.SingleShotExpense) (*domain.SingleShotExpense, error)
	DeleteSingleShotExpense(ctx context.Context, householdID, itemID string) error

	// Credit cards
	ListCreditCards(ctx context.Context, householdID string) ([]domain.CreditCard, error)
	CreateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error)
	UpdateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error)
	DeleteCreditCard(ctx context.Context, householdID, cardID string) error

	// Future statements
	ListFutureStatements(ctx context.Context, householdID string) ([]domain.FutureStatement, error)
	CreateFutureStatement(ctx context.Context, stmt *domain.FutureStatement) (*domain.FutureStatement, error)
	DeleteFutureStatement(ctx context.Context, householdID, stmtID string) error
}

// SnapshotStore persists computed projections verbatim for read-only
// replay.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *domain.ProjectionSnapshot) error
	ListSnapshots(ctx context.Context, householdID string, limit int) ([]domain.ProjectionSnapshot, error)
	GetSnapshot(ctx context.Context, householdID, snapshotID string) (*domain.ProjectionSnapshot, error)
}

// NotificationStore manages household notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, householdID string, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notifID string) error
}

// AuthStore defines all data operations for the authentication system.
type AuthStore interface {
	GetMemberByEmail(ctx context.Context, email string) (*domain.Member, error)
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error)
	TouchMemberLogin(ctx context.Context, memberID string, at time.Time) error

	StoreRefreshToken(ctx context.Context, memberID, householdID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*domain.AuthRefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllRefreshTokens(ctx context.Context, memberID string) error
}
