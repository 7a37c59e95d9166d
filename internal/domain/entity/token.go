package entity

import "time"

// Token is a tenant access token for the upstream API.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// ValidAt reports whether the token can still be served at now, keeping margin in reserve.
func (t Token) ValidAt(now time.Time, margin time.Duration) bool {
	if t.Value == "" {
		return false
	}

	return now.Before(t.ExpiresAt.Add(-margin))
}
