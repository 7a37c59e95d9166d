package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_ValidAt(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	token := Token{Value: "T1", ExpiresAt: issued.Add(7200 * time.Second)}
	margin := 5 * time.Minute

	tests := []struct {
		name  string
		token Token
		now   time.Time
		want  bool
	}{
		{name: "freshly issued", token: token, now: issued, want: true},
		{name: "just before margin", token: token, now: issued.Add(6899 * time.Second), want: true},
		{name: "at margin", token: token, now: issued.Add(6900 * time.Second), want: false},
		{name: "past expiry", token: token, now: issued.Add(3 * time.Hour), want: false},
		{name: "empty token", token: Token{ExpiresAt: issued.Add(time.Hour)}, now: issued, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.ValidAt(tt.now, margin))
		})
	}
}
