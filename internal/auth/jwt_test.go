package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager([]byte("super-secret"), time.Hour)

	tok, err := m.Issue(42, "admin@example.com")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Subject)
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager([]byte("secret"), -1*time.Second)

	tok, err := m.Issue(1, "admin@example.com")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewManager([]byte("right-secret"), time.Hour)
	verifier := NewManager([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue(1, "admin@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	m := NewManager([]byte("k"), time.Hour)

	_, err := m.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_ExpiryWindow(t *testing.T) {
	m := NewManager([]byte("k"), 24*time.Hour)

	tok, err := m.Issue(7, "editor@example.com")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	validity := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, validity)
}
