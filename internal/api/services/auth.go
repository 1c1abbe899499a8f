package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 72 * time.Hour

var ErrEmptySigningKey = errors.New("jwt signing key is empty")

// AuthService mints the staff tokens accepted by middleware.RequireStaff.
type AuthService struct {
	jwtKey string
	now    func() time.Time
}

func NewAuthService(jwtKey string) *AuthService {
	return &AuthService{jwtKey: jwtKey, now: time.Now}
}

// IssueStaffToken signs an HS256 token whose subject is the staff name.
func (s *AuthService) IssueStaffToken(staff string, ttl time.Duration) (string, error) {
	if s.jwtKey == "" {
		return "", ErrEmptySigningKey
	}
	staff = strings.TrimSpace(staff)
	if staff == "" {
		return "", ErrInvalidInput
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   staff,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtKey))
}
