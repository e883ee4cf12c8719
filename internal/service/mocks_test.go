package service

import (
	"context"
	"sync"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// mockFinanceStore serves fixed slices and counts list calls.
type mockFinanceStore struct {
	mu        sync.Mutex
	listCalls int
	err       error

	accounts           []domain.Account
	recurringIncome    []domain.RecurringIncome
	singleShotIncome   []domain.SingleShotIncome
	fixedExpenses      []domain.FixedExpense
	singleShotExpenses []domain.SingleShotExpense
	creditCards        []domain.CreditCard
	futureStatements   []domain.FutureStatement
}

func (m *mockFinanceStore) countList() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	return m.err
}

func (m *mockFinanceStore) listCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

func (m *mockFinanceStore) ListAccounts(ctx context.Context, householdID string) ([]domain.Account, error) {
	if err := m.countList(); err != nil {
		return nil, err
	}
	return m.accounts, nil
}

func (m *mockFinanceStore) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	return account, m.err
}

func (m *mockFinanceStore) UpdateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	return account, m.err
}

func (m *mockFinanceStore) DeleteAccount(ctx context.Context, householdID, accountID string) error {
	return m.err
}

func (m *mockFinanceStore) ListRecurringIncome(ctx context.Context, householdID string) ([]domain.RecurringIncome, error) {
	if err := m.countList(); err != nil {
		return nil, err
	}
	return m.recurringIncome, nil
}

func (m *mockFinanceStore) CreateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error) {
	return item, m.err
}

func (m *mockFinanceStore) UpdateRecurringIncome(ctx context.Context, item *domain.RecurringIncome) (*domain.RecurringIncome, error) {
	return item, m.err
}

func (m *mockFinanceStore) DeleteRecurringIncome(ctx context.Context, householdID, itemID string) error {
	return m.err
}

func (m *mockFinanceStore) ListSingleShotIncome(ctx context.Context, householdID string) ([]domain.SingleShotIncome, error) {
	if err := m.countList(); err != nil {
		return nil, err
	}
	return m.singleShotIncome, nil
}

func (m *mockFinanceStore) CreateSingleShotIncome(ctx context.Context, item *domain.SingleShotIncome) (*domain.SingleShotIncome, error) {
	return item, m.err
}

func (m *mockFinanceStore) DeleteSingleShotIncome(ctx context.Context, householdID, itemID string) error {
	return m.err
}

func (m *mockFinanceStore) ListFixedExpenses(ctx context.Context, householdID string) ([]domain.FixedExpense, error) {
	if err := m.countList(); err != nil {
		return nil, err
	}
	return m.fixedExpenses, nil
}

func (m *mockFinanceStore) CreateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error) {
	return item, m.err
}

func (m *mockFinanceStore) UpdateFixedExpense(ctx context.Context, item *domain.FixedExpense) (*domain.FixedExpense, error) {
	return item, m.err
}

func (m *mockFinanceStore) DeleteFixedExpense(ctx context.Context, householdID, itemID string) error {
	return m.err
}

func (m *mockFinanceStore) ListSingleShotExpenses(ctx context.Context, householdID string) ([]domain.SingleShotExpense, error) {
	if err := m.countList(); err != nil {
		return nil, err
	}
	return m.singleShotExpenses, nil
}

func (m *mockFinanceStore) CreateSingleShotExpense(ctx context.Context, item *domain.SingleShotExpense) (*domain.SingleShotExpense, error) {
	return item, m.err
}

func (m *mockFinanceStore) DeleteSingleShotExpense(ctx context.Context, householdID, itemID string) error {
	return m.err
}

func (m *mockFinanceStore) ListCreditCards(ctx context.Context, householdID string) ([]domain.CreditCard, error) {
	if err := m.countList(); err != nil {
		return nil, err
	}
	return m.creditCards, nil
}

func (m *mockFinanceStore) CreateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error) {
	return card, m.err
}

func (m *mockFinanceStore) UpdateCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error) {
	return card, m.err
}

func (m *mockFinanceStore) DeleteCreditCard(ctx context.Context, householdID, cardID string) error {
	return m.err
}

func (m *mockFinanceStore) ListFutureStatements(ctx context.Context, householdID string) ([]domain.FutureStatement, error) {
	if err := m.countList(); err != nil {
		return nil, err
	}
	return m.futureStatements, nil
}

func (m *mockFinanceStore) CreateFutureStatement(ctx context.Context, stmt *domain.FutureStatement) (*domain.FutureStatement, error) {
	return stmt, m.err
}

func (m *mockFinanceStore) DeleteFutureStatement(ctx context.Context, householdID, stmtID string) error {
	return m.err
}

// mockSnapshotStore records saved snapshots.
type mockSnapshotStore struct {
	mu    sync.Mutex
	saved []*domain.ProjectionSnapshot
	err   error
}

func (m *mockSnapshotStore) SaveSnapshot(ctx context.Context, snap *domain.ProjectionSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotStore) ListSnapshots(ctx context.Context, householdID string, limit int) ([]domain.ProjectionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ProjectionSnapshot, 0, len(m.saved))
	for _, s := range m.saved {
		out = append(out, *s)
	}
	return out, m.err
}

func (m *mockSnapshotStore) GetSnapshot(ctx context.Context, householdID, snapshotID string) (*domain.ProjectionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.saved {
		if s.ID == snapshotID {
			return s, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "projection_snapshot", ID: snapshotID}
}

func (m *mockSnapshotStore) savedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}

// mockNotificationStore records created notifications.
type mockNotificationStore struct {
	mu      sync.Mutex
	created []*domain.Notification
	err     error
}

func (m *mockNotificationStore) CreateNotification(ctx context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationStore) ListNotifications(ctx context.Context, householdID string, unreadOnly bool) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Notification, 0, len(m.created))
	for _, n := range m.created {
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, *n)
	}
	return out, m.err
}

func (m *mockNotificationStore) MarkNotificationRead(ctx context.Context, notifID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.created {
		if n.ID == notifID {
			n.IsRead = true
			now := time.Now()
			n.ReadAt = &now
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "notification", ID: notifID}
}

func (m *mockNotificationStore) createdCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

// mockAuthStore is an in-memory member + refresh token store.
type mockAuthStore struct {
	mu      sync.Mutex
	members map[string]*domain.Member // by ID
	tokens  map[string]*domain.AuthRefreshToken
}

func newMockAuthStore() *mockAuthStore {
	return &mockAuthStore{
		members: make(map[string]*domain.Member),
		tokens:  make(map[string]*domain.AuthRefreshToken),
	}
}

func (m *mockAuthStore) GetMemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, member := range m.members {
		if member.Email == email {
			return member, nil
		}
	}
	return nil, nil
}

func (m *mockAuthStore) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.members[memberID], nil
}

func (m *mockAuthStore) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
	return member, nil
}

func (m *mockAuthStore) TouchMemberLogin(ctx context.Context, memberID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if member, ok := m.members[memberID]; ok {
		member.LastLoginAt = &at
	}
	return nil
}

func (m *mockAuthStore) StoreRefreshToken(ctx context.Context, memberID, householdID, tokenHash string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[tokenHash] = &domain.AuthRefreshToken{
		MemberID:    memberID,
		HouseholdID: householdID,
		TokenHash:   tokenHash,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now(),
	}
	return nil
}

func (m *mockAuthStore) GetRefreshToken(ctx context.Context, tokenHash string) (*domain.AuthRefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[tokenHash], nil
}

func (m *mockAuthStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, tokenHash)
	return nil
}

func (m *mockAuthStore) RevokeAllRefreshTokens(ctx context.Context, memberID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for hash, t := range m.tokens {
		if t.MemberID == memberID {
			delete(m.tokens, hash)
		}
	}
	return nil
}
