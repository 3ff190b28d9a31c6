package books

type CreateBookPayload struct {
	Title    string  `json:"title" validate:"required,max=300"`
	Author   string  `json:"author" validate:"required,max=200"`
	Year     *int    `json:"year,omitempty"`
	Genre    *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	FilePath *string `json:"file_path,omitempty"`
	Pages    *int    `json:"pages,omitempty" validate:"omitempty,min=1"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Language *string `json:"language,omitempty"`
	Format   *string `json:"format,omitempty"`
	Source   *string `json:"source,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdateBookStatusPayload carries the raw status override. Only presence is
// validated; the value itself is stored verbatim.
type UpdateBookStatusPayload struct {
	Status string `json:"status" validate:"required"`
}
