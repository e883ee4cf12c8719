package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims are the access-token claims. Sub is the member ID.
type JWTClaims struct {
	HouseholdID string `json:"household_id"`
	TokenType   string `json:"type"`
	jwt.RegisteredClaims
}

func (s *AuthService) newAccessToken(member *domain.Member) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		HouseholdID: member.HouseholdID,
		TokenType:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// ValidateAccessToken parses and verifies an access token, returning its
// claims.
func (s *AuthService) ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, &domain.ErrUnauthorized{Message: "invalid or expired token"}
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || claims.TokenType != "access" {
		return nil, &domain.ErrUnauthorized{Message: "invalid token claims"}
	}
	return claims, nil
}

// newRefreshToken returns an opaque 256-bit random token, hex-encoded.
// Only its SHA-256 hash is ever stored.
func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
