// Package redact keeps credentials out of log output. Bearer tokens and
// error strings pass through here before being attached to log fields.
package redact

import "regexp"

// Placeholder substituted for redacted material.
const Placeholder = "[REDACTED]"

// Standard three-part base64url JWT shape.
var jwtRegex = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)

// Token reduces a bearer token to a short prefix suitable for log
// correlation. The bulk of the credential never reaches the logs.
func Token(tok string) string {
	if tok == "" {
		return ""
	}
	if len(tok) <= 8 {
		return Placeholder
	}
	return tok[:8] + "…"
}

// Error scrubs embedded JWT material from an error string. Other error
// text is assumed safe; the client never interpolates passwords into
// errors.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return jwtRegex.ReplaceAllString(err.Error(), Placeholder)
}
