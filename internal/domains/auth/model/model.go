package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"elysian/shared/model"
)

const (
	TableName  = "refresh_tokens"
	EntityName = "refresh_token"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldTokenHash = "token_hash"
	FieldExpiresAt = "expires_at"
	FieldRevokedAt = "revoked_at"
)

// RefreshToken is one issued refresh token, stored by hash only. A token is
// usable while it is unrevoked and unexpired; rotation revokes the presented
// token and inserts its successor.
type RefreshToken struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	model.Metadata
}

// Usable reports whether the token may still be exchanged.
func (t RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// HashToken derives the storage key for a refresh token. The raw token never
// touches the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
