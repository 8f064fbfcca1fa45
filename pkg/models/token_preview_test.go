package models

import (
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, identity, room string, expiry time.Time) string {
	t.Helper()

	sig, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.HS256,
		Key:       []byte("0123456789abcdef0123456789abcdef"),
	}, (&jose.SignerOptions{}).WithType("JWT"))
	require.NoError(t, err)

	claims := accessTokenClaims{
		Claims: jwt.Claims{
			Subject: identity,
			Issuer:  "APIkey",
			Expiry:  jwt.NewNumericDate(expiry),
		},
		Name:  "Test User",
		Video: &videoGrantClaim{Room: room, RoomJoin: true},
	}

	raw, err := jwt.Signed(sig).Claims(claims).Serialize()
	require.NoError(t, err)
	return raw
}

func TestPreviewToken(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signTestToken(t, "user-1", "abcd-1234", expiry)

	p := PreviewToken(raw)
	require.NotNil(t, p)
	assert.Equal(t, "user-1", p.Identity)
	assert.Equal(t, "Test User", p.Name)
	assert.Equal(t, "abcd-1234", p.Room)
	require.NotNil(t, p.ExpiresAt)
	assert.True(t, expiry.Equal(*p.ExpiresAt))
}

func TestPreviewToken_Undecodable(t *testing.T) {
	assert.Nil(t, PreviewToken(""))
	assert.Nil(t, PreviewToken("not-a-jwt"))
	assert.Nil(t, PreviewToken("a.b.c"))
}
