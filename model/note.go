package model

import (
	"time"
)

// Note is the single persisted entity: one piece of user text with a
// creation timestamp. CreatedAt is set once at insert time, in UTC,
// and never changes afterwards.
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
