package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues JWTs for the shared inspector credential.
type AuthService struct {
	secret       []byte
	inspectorKey string
	tokenTTL     time.Duration
}

// NewAuthService creates an auth service.
func NewAuthService(secret, inspectorKey string) *AuthService {
	return &AuthService{
		secret:       []byte(secret),
		inspectorKey: inspectorKey,
		tokenTTL:     12 * time.Hour,
	}
}

// IssueToken validates the inspector key and returns a signed token.
func (s *AuthService) IssueToken(inspectorKey, subject string) (string, error) {
	if s.inspectorKey == "" || inspectorKey != s.inspectorKey {
		return "", fmt.Errorf("invalid inspector credential")
	}
	if subject == "" {
		subject = "inspector"
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
