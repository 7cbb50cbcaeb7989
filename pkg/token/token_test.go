package token_test

import (
	"testing"
	"time"

	"go-catalog-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	signed, err := token.Issue("user-1", "a@b.c", "admin", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := token.Parse(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := token.Issue("user-1", "a@b.c", "admin", "secret", time.Hour)
	require.NoError(t, err)

	_, err = token.Parse(signed, "other-secret")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	signed, err := token.Issue("user-1", "a@b.c", "admin", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = token.Parse(signed, "secret")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := token.Parse("not-a-token", "secret")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
