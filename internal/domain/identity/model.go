package identity

import (
	"time"
)

// Identity is a registered principal. Login doubles as the owner identity
// recorded on art pieces and access entries.
type Identity struct {
	ID           int       `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
