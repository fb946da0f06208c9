package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"elysian/internal/domains/auth/model"
)

func TestRefreshTokenUsable(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	revoked := now.Add(-time.Hour)

	tests := []struct {
		name  string
		token model.RefreshToken
		want  bool
	}{
		{
			name:  "live token",
			token: model.RefreshToken{ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "expired token",
			token: model.RefreshToken{ExpiresAt: now.Add(-time.Minute)},
			want:  false,
		},
		{
			name:  "expiry boundary is not usable",
			token: model.RefreshToken{ExpiresAt: now},
			want:  false,
		},
		{
			name:  "revoked token",
			token: model.RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Usable(now))
		})
	}
}

func TestHashToken(t *testing.T) {
	hash := model.HashToken("some-refresh-token")

	// sha256 hex digest
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, model.HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, model.HashToken("another-token"))
}
