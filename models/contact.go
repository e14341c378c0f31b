package models

import "time"

// Contact is an entry of the personal address book.
type Contact struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id"`

	// FullName is the display name of the person.
	FullName string `json:"full_name"`

	Profession  *string `json:"profession"`
	PhoneNumber *string `json:"phone_number"`

	// Email is unique across all contacts.
	Email string `json:"email"`

	Address      *string `json:"address"`
	Organization *string `json:"organization"`
	BirthDate    *Date   `json:"birth_date"`

	// Tags is a free-form label list kept as plain text.
	Tags *string `json:"tags"`

	// Notes holds free-form remarks about the contact.
	Notes *string `json:"notes"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification; nil until the
	// record is first updated.
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate is the payload of a contact creation request.
type ContactCreate struct {
	FullName     string  `json:"full_name" validate:"required,max=255"`
	Profession   *string `json:"profession" validate:"omitempty,max=255"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,max=50"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Address      *string `json:"address" validate:"omitempty,max=255"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
	BirthDate    *Date   `json:"birth_date"`
	Tags         *string `json:"tags"`
	Notes        *string `json:"notes"`
}

// ContactUpdate is a partial update of a contact.
// Only non-nil fields are written.
type ContactUpdate struct {
	FullName     *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Profession   *string `json:"profession" validate:"omitempty,max=255"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,max=50"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Address      *string `json:"address" validate:"omitempty,max=255"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
	BirthDate    *Date   `json:"birth_date"`
	Tags         *string `json:"tags"`
	Notes        *string `json:"notes"`
}
