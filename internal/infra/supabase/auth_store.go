package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
)

// AuthStore persists household members and hashed refresh tokens.
type AuthStore struct {
	client *Client
}

// NewAuthStore creates an auth store backed by the given client.
func NewAuthStore(client *Client) *AuthStore {
	return &AuthStore{client: client}
}

// ============================================================
// Members
// ============================================================

func (s *AuthStore) GetMemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	ctx, span := tracer.Start(ctx, "AuthStore.GetMemberByEmail")
	defer span.End()

	path := fmt.Sprintf("members?email=eq.%s&limit=1", url.QueryEscape(email))
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Member](body, "members")
}

func (s *AuthStore) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	ctx, span := tracer.Start(ctx, "AuthStore.GetMemberByID")
	defer span.End()

	path := fmt.Sprintf("members?id=eq.%s&limit=1", memberID)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Member](body, "members")
}

func (s *AuthStore) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	ctx, span := tracer.Start(ctx, "AuthStore.CreateMember")
	defer span.End()

	body, err := s.client.doPost(ctx, "members", member)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Member](body, "members")
}

func (s *AuthStore) TouchMemberLogin(ctx context.Context, memberID string, at time.Time) error {
	ctx, span := tracer.Start(ctx, "AuthStore.TouchMemberLogin")
	defer span.End()

	path := fmt.Sprintf("members?id=eq.%s", memberID)
	_, err := s.client.doPatch(ctx, path, map[string]any{"last_login_at": at})
	return err
}

// ============================================================
// Refresh tokens
// ============================================================

func (s *AuthStore) StoreRefreshToken(ctx context.Context, memberID, householdID, tokenHash string, expiresAt time.Time) error {
	ctx, span := tracer.Start(ctx, "AuthStore.StoreRefreshToken")
	defer span.End()

	payload := map[string]any{
		"member_id":    memberID,
		"household_id": householdID,
		"token_hash":   tokenHash,
		"expires_at":   expiresAt,
	}
	_, err := s.client.doPost(ctx, "refresh_tokens", payload)
	return err
}

func (s *AuthStore) GetRefreshToken(ctx context.Context, tokenHash string) (*domain.AuthRefreshToken, error) {
	ctx, span := tracer.Start(ctx, "AuthStore.GetRefreshToken")
	defer span.End()

	path := fmt.Sprintf("refresh_tokens?token_hash=eq.%s&limit=1", tokenHash)
	body, err := s.client.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.AuthRefreshToken](body, "refresh_tokens")
}

func (s *AuthStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	ctx, span := tracer.Start(ctx, "AuthStore.RevokeRefreshToken")
	defer span.End()

	path := fmt.Sprintf("refresh_tokens?token_hash=eq.%s", tokenHash)
	return s.client.doDelete(ctx, path)
}

func (s *AuthStore) RevokeAllRefreshTokens(ctx context.Context, memberID string) error {
	ctx, span := tracer.Start(ctx, "AuthStore.RevokeAllRefreshTokens")
	defer span.End()

	path := fmt.Sprintf("refresh_tokens?member_id=eq.%s", memberID)
	return s.client.doDelete(ctx, path)
}
