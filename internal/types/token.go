package types

import "github.com/google/uuid"

// TokenClaims is the identity proven by a validated bearer token.
type TokenClaims struct {
	UserID  uuid.UUID `json:"user_id"`
	IsAdmin bool      `json:"is_admin"`
}
