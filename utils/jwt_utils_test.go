package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(7, RoleCustomer)
	require.NoError(t, err)

	id, role, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, 7, id)
	require.Equal(t, RoleCustomer, role)
}

func TestParseTokenRejectsUnexpectedMethod(t *testing.T) {
	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role:             RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	})
	token, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseToken("not-a-token")
	require.Error(t, err)
}
