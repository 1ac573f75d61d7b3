package middleware

import (
	"fmt"
	"time"

	"client_intake_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenField is the form field carrying the CSRF token.
	TokenField = "_csrf_token"
	// ContextKey holds the verification result for the form handler,
	// which owns the HTML re-render on failure.
	ContextKey = "csrfTokenValid"

	csrfIssuer = "client-intake-backend"
)

// CSRF mints and verifies the form tokens as short-lived HS256 JWTs.
// Tokens are stateless: possession of a token signed with the process
// secret and not yet expired is what proves the form render came from
// this server.
type CSRF struct {
	secret []byte
	ttl    time.Duration
}

// NewCSRF creates a token manager with the given signing secret and
// token lifetime.
func NewCSRF(secret string, ttl time.Duration) *CSRF {
	return &CSRF{secret: []byte(secret), ttl: ttl}
}

// Mint creates a fresh token for one form render.
func (m *CSRF) Mint() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    csrfIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign csrf token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string.
func (m *CSRF) Validate(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(csrfIssuer))
	if err != nil {
		return fmt.Errorf("csrf token validation failed: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid csrf token")
	}
	return nil
}

// RequireCSRF verifies the form token before any field handling and
// records the outcome in the request context. The form handler checks
// it first and, on failure, rejects the request outright with a
// form-level banner and no persistence attempt.
func RequireCSRF(m *CSRF) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := m.Validate(c.PostForm(TokenField))
		if err != nil {
			utils.LogWarn("CSRF token rejected", map[string]interface{}{
				"client_ip": c.ClientIP(),
				"reason":    err.Error(),
			})
		}
		c.Set(ContextKey, err == nil)
		c.Next()
	}
}
