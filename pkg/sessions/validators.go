package sessions

import "time"

type CreateSessionPayload struct {
	BookID              int       `json:"book_id" validate:"required"`
	StartTime           time.Time `json:"start_time" validate:"required"`
	EndTime             time.Time `json:"end_time" validate:"required,gtefield=StartTime"`
	StartPage           *int      `json:"start_page,omitempty" validate:"omitempty,min=0"`
	EndPage             *int      `json:"end_page,omitempty" validate:"omitempty,min=0"`
	Location            *string   `json:"location,omitempty" validate:"omitempty,max=100"`
	ReadingFormat       *string   `json:"reading_format,omitempty" validate:"omitempty,max=50"`
	ComprehensionRating *int      `json:"comprehension_rating,omitempty" validate:"omitempty,min=1,max=5"`
	EnergyLevel         *int      `json:"energy_level,omitempty" validate:"omitempty,min=1,max=5"`
	Distractions        *bool     `json:"distractions,omitempty"`
	Notes               *string   `json:"notes,omitempty"`
}
