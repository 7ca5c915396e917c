// Package mask provides deterministic partial redaction for sensitive
// strings. Every function is total: any input, including the empty string,
// yields a defined output.
package mask

// CardNumber redacts the middle of a card number, keeping the first and
// last four characters. Inputs shorter than eight characters are fully
// redacted.
func CardNumber(s string) string {
	if len(s) < 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}

// APIKey keeps the six-character key prefix and the last four characters
// of the remainder. Inputs shorter than ten characters are fully redacted.
func APIKey(s string) string {
	if len(s) < 10 {
		return "****"
	}
	rest := s[6:]
	return s[:6] + "..." + rest[len(rest)-4:]
}
