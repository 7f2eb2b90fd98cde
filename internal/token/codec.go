// Package token extracts scheduling information from bearer tokens.
//
// The codec performs no cryptographic verification. The server's
// signature check on every request is the actual authorization
// boundary; the decoded expiry is advisory only and exists so the
// client can schedule its own logout.
package token

import "github.com/golang-jwt/jwt/v5"

// DecodeExpiration extracts the exp claim of a JWT as an absolute epoch
// millisecond timestamp. The second return value is false when the
// token is malformed, not decodable, or carries no usable exp claim.
// Decode failures are never propagated as errors; an unknown expiry
// simply disables the client-side expiry watchdog for that session.
func DecodeExpiration(tokenString string) (int64, bool) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return 0, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	return exp.UnixMilli(), true
}
