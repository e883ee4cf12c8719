package service

import (
	"context"
	"strings"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
	"github.com/boddenberg/casa-cashflow-go/internal/port"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// AuthService handles member registration, login and JWT issuance.
// Refresh tokens are stored hashed and rotated on every refresh.
type AuthService struct {
	store      port.AuthStore
	logger     *zap.Logger
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates the authentication service.
func NewAuthService(store port.AuthStore, logger *zap.Logger, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		store:      store,
		logger:     logger,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a new member. When req.HouseholdID is empty a fresh
// household is created for the member.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &domain.ErrValidation{Field: "email", Message: "must be a valid email address"}
	}
	if len(req.Password) < 8 {
		return nil, &domain.ErrValidation{Field: "password", Message: "must be at least 8 characters"}
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, &domain.ErrValidation{Field: "full_name", Message: "must not be empty"}
	}

	existing, err := s.store.GetMemberByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ErrConflict{Message: "a member with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	householdID := req.HouseholdID
	if householdID == "" {
		householdID = uuid.NewString()
	}

	member, err := s.store.CreateMember(ctx, &domain.Member{
		ID:           uuid.NewString(),
		HouseholdID:  householdID,
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("member registered",
		zap.String("member_id", member.ID),
		zap.String("household_id", member.HouseholdID),
	)

	return s.issueTokens(ctx, member)
}

// Login authenticates a member by email and password.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	member, err := s.store.GetMemberByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsActive {
		return nil, &domain.ErrUnauthorized{Message: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &domain.ErrUnauthorized{Message: "invalid email or password"}
	}

	if err := s.store.TouchMemberLogin(ctx, member.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to record login time",
			zap.String("member_id", member.ID),
			zap.Error(err),
		)
	}

	return s.issueTokens(ctx, member)
}

// Refresh exchanges a refresh token for a new token pair. The presented
// token is revoked; reuse of a revoked token fails.
func (s *AuthService) Refresh(ctx context.Context, req *domain.RefreshRequest) (*domain.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Refresh")
	defer span.End()

	hash := hashToken(req.RefreshToken)
	stored, err := s.store.GetRefreshToken(ctx, hash)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, &domain.ErrUnauthorized{Message: "invalid refresh token"}
	}
	if time.Now().After(stored.ExpiresAt) {
		if err := s.store.RevokeRefreshToken(ctx, hash); err != nil {
			s.logger.Warn("failed to revoke expired refresh token", zap.Error(err))
		}
		return nil, &domain.ErrUnauthorized{Message: "refresh token expired"}
	}

	member, err := s.store.GetMemberByID(ctx, stored.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsActive {
		return nil, &domain.ErrUnauthorized{Message: "member no longer active"}
	}

	// Rotate: the presented token is single-use.
	if err := s.store.RevokeRefreshToken(ctx, hash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, member)
}

// Logout revokes the presented refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	ctx, span := tracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	return s.store.RevokeRefreshToken(ctx, hashToken(refreshToken))
}

func (s *AuthService) issueTokens(ctx context.Context, member *domain.Member) (*domain.LoginResponse, error) {
	access, err := s.newAccessToken(member)
	if err != nil {
		return nil, err
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.refreshTTL)
	if err := s.store.StoreRefreshToken(ctx, member.ID, member.HouseholdID, hashToken(refresh), expiresAt); err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.accessTTL.Seconds()),
		MemberID:     member.ID,
		HouseholdID:  member.HouseholdID,
		FullName:     member.FullName,
	}, nil
}
