// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers everything else: malformed token, unexpected
	// signing method, bad signature, unusable subject claim.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenManager issues and verifies signed, time-limited identity tokens.
// Expiry is the only invalidation mechanism; there is no revocation list.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager signing with the given secret.
// ttl is the default lifetime for session tokens.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a token for the user with the default session lifetime.
// extra claims are merged in; reserved claims (sub, exp, iat) always win.
func (m *TokenManager) Issue(userID uuid.UUID, extra map[string]string) (string, error) {
	return m.IssueWithTTL(userID, extra, m.ttl)
}

// IssueWithTTL creates a token with an explicit lifetime, for credentials
// that outlive a session (e.g. federated-login tokens).
func (m *TokenManager) IssueWithTTL(userID uuid.UUID, extra map[string]string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = userID.String()
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded user ID and
// the full claim set. Expired tokens are reported distinctly from invalid
// ones so callers can surface the difference.
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, nil, ErrTokenExpired
		}
		return uuid.Nil, nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, nil, ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("%w: subject is not a user ID", ErrTokenInvalid)
	}

	return userID, claims, nil
}
