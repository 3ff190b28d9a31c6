package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ReadingSession is one recorded interval of reading activity against a
// single book. Sessions are immutable after creation and are never
// reassigned to another book. The book side is fetched with a query-time
// lookup on book_id rather than a bidirectional relation.
type ReadingSession struct {
	bun.BaseModel `bun:"table:reading_sessions,alias:rs"`

	ID                  int       `bun:",pk,autoincrement" json:"id"`
	CreatedAt           time.Time `json:"created_at"`
	BookID              int       `bun:",notnull" json:"book_id"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	StartPage           *int      `json:"start_page"`
	EndPage             *int      `json:"end_page"`
	Location            *string   `json:"location"`
	ReadingFormat       *string   `json:"reading_format"`
	ComprehensionRating *int      `json:"comprehension_rating"`
	EnergyLevel         *int      `json:"energy_level"`
	Distractions        *bool     `json:"distractions"`
	Notes               *string   `json:"notes"`
}

// PagesRead returns end_page - start_page, or 0 when either marker is
// missing. The delta is a pass-through: a session stored with end_page <
// start_page yields a negative value.
func (s *ReadingSession) PagesRead() int {
	if s.StartPage == nil || s.EndPage == nil {
		return 0
	}
	return *s.EndPage - *s.StartPage
}

// Minutes returns the whole minutes between start and end time, truncated
// toward zero.
func (s *ReadingSession) Minutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}
