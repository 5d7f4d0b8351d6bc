package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("alice", secret, time.Hour)
	require.NoError(t, err)

	got, err := GetPrincipalFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, models.Principal("alice"), got)
}

func TestGetPrincipalFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("alice", secret, -1*time.Second)
	require.NoError(t, err)

	_, err = GetPrincipalFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetPrincipalFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("alice", []byte("one"), time.Hour)
	require.NoError(t, err)

	_, err = GetPrincipalFromToken(tok, []byte("two"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetPrincipalFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := GetPrincipalFromToken("not-a-jwt", []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetPrincipalFromToken_EmptyPrincipal(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("", secret, time.Hour)
	require.NoError(t, err)

	_, err = GetPrincipalFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetPrincipalFromToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{Principal: "alice"}).SignedString(secret)
	require.NoError(t, err)

	_, err = GetPrincipalFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
