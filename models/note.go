package models

import "time"

// Note is a free-form text document.
type Note struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	Content  *string `json:"content"`

	// Folders and Tags are plain-text classification lists.
	Folders *string `json:"folders"`
	Tags    *string `json:"tags"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (Note) TableName() string {
	return "notes"
}

// NoteCreate is the payload of a note creation request.
type NoteCreate struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Subtitle *string `json:"subtitle" validate:"omitempty,max=255"`
	Content  *string `json:"content"`
	Folders  *string `json:"folders"`
	Tags     *string `json:"tags"`
}

// NoteUpdate is a partial update of a note.
type NoteUpdate struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	Subtitle *string `json:"subtitle" validate:"omitempty,max=255"`
	Content  *string `json:"content"`
	Folders  *string `json:"folders"`
	Tags     *string `json:"tags"`
}
