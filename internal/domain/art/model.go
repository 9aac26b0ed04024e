package art

import (
	"time"
)

// Piece is a registered art piece. The ID is assigned by the store and never
// reused; Owner and CreatedAt are set at creation and only Transfer may touch
// the owner afterwards.
type Piece struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Owner       string    `json:"owner"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
}
