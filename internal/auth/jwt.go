// Package auth issues and verifies the signed bearer tokens that guard every
// non-login endpoint. Tokens are stateless: the server keeps no session state
// and only checks the signature and expiry on each request.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// token, or expired claims.
var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the registered JWT claims plus the numeric user id.
// Subject carries the account email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"id"`
}

// Manager signs and verifies tokens with a shared symmetric secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager issuing tokens valid for ttl.
func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Issue creates an HS256-signed token embedding the user id and email.
func (m *Manager) Issue(userID int, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(m.secret)
}

// Verify parses the token and returns its claims, or ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
