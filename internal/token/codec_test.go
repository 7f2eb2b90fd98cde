package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken mints a real HS256 token with the given claims.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret-that-is-long-enough"))
	require.NoError(t, err)
	return signed
}

func TestDecodeExpiration(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns exp claim in milliseconds", func(t *testing.T) {
		t.Parallel()
		tok := signedToken(t, jwt.MapClaims{"sub": "a@x.com", "exp": expiry.Unix()})

		ms, ok := DecodeExpiration(tok)
		assert.True(t, ok)
		assert.Equal(t, expiry.UnixMilli(), ms)
	})

	t.Run("signature is not checked", func(t *testing.T) {
		t.Parallel()
		tok := signedToken(t, jwt.MapClaims{"exp": expiry.Unix()})
		// Corrupt the signature segment; the payload must still decode.
		tampered := tok[:len(tok)-4] + "AAAA"

		ms, ok := DecodeExpiration(tampered)
		assert.True(t, ok)
		assert.Equal(t, expiry.UnixMilli(), ms)
	})

	t.Run("token without exp claim", func(t *testing.T) {
		t.Parallel()
		tok := signedToken(t, jwt.MapClaims{"sub": "a@x.com"})

		ms, ok := DecodeExpiration(tok)
		assert.False(t, ok)
		assert.Zero(t, ms)
	})

	t.Run("malformed inputs", func(t *testing.T) {
		t.Parallel()

		payload := base64.RawURLEncoding.EncodeToString([]byte("not json"))
		inputs := map[string]string{
			"empty string":       "",
			"no dot separators":  "opaque-session-token",
			"two segments":       "aaa.bbb",
			"four segments":      "a.b.c.d",
			"non-json payload":   "eyJhbGciOiJIUzI1NiJ9." + payload + ".sig",
			"non-base64 payload": "eyJhbGciOiJIUzI1NiJ9.%%%.sig",
		}

		for name, input := range inputs {
			ms, ok := DecodeExpiration(input)
			assert.False(t, ok, "input %q should not decode", name)
			assert.Zero(t, ms, "input %q should report no expiry", name)
		}
	})

	t.Run("non-numeric exp claim", func(t *testing.T) {
		t.Parallel()
		tok := signedToken(t, jwt.MapClaims{"exp": "tomorrow"})

		_, ok := DecodeExpiration(tok)
		assert.False(t, ok)
	})
}
