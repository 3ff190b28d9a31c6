package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Book lifecycle statuses. Progress recomputation only ever moves a book
// forward through these; the status override endpoint can store anything.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Book is one catalog entry. Progress and Status are cached derived values:
// they reflect the session history as of the last recompute, not an
// independently authoritative state.
type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID            int        `bun:",pk,autoincrement" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Title         string     `bun:",nullzero" json:"title"`
	Author        string     `bun:",nullzero" json:"author"`
	Year          *int       `json:"year"`
	Genre         *string    `json:"genre"`
	FilePath      *string    `json:"file_path"`
	Pages         *int       `json:"pages"`
	Progress      *int       `json:"progress"`
	CompletedDate *time.Time `json:"completed_date"`
	Rating        *int       `json:"rating"`
	Language      *string    `json:"language"`
	Format        *string    `json:"format"`
	Source        *string    `json:"source"`
	Notes         *string    `json:"notes"`
	Status        string     `bun:",nullzero" json:"status"`
}

// HasPageCount reports whether a progress percentage can be computed for
// this book. A zero page count can't yield a percentage either.
func (b *Book) HasPageCount() bool {
	return b.Pages != nil && *b.Pages > 0
}
