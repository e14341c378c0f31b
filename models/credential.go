package models

import "time"

// PasswordSealedMaxLen is the capacity of the sealed password column.
const PasswordSealedMaxLen = 512

// Credential is a stored account credential as persisted by the store.
// The password and the other info are sealed tokens; the database treats
// them as opaque strings.
type Credential struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id"`

	// SiteName names the site or account the credential belongs to.
	SiteName string `json:"site_name"`

	// Username is the login or email used on the site.
	Username string `json:"username"`

	// PasswordSealed is the sealed token of the password. Never empty.
	PasswordSealed string `json:"password_sealed"`

	// OtherInfoSealed is the sealed token of the free-text secret, nil when
	// none was supplied.
	OtherInfoSealed *string `json:"other_info_sealed"`

	Category *string `json:"category"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (Credential) TableName() string {
	return "credentials"
}

// CredentialCreate is the payload of a credential creation request.
// Password and OtherInfo are plaintext and are sealed before storage.
type CredentialCreate struct {
	SiteName  string  `json:"site_name" validate:"required,max=255"`
	Username  string  `json:"username" validate:"required,max=255"`
	Password  string  `json:"password" validate:"required,sealable=512"`
	OtherInfo *string `json:"other_info"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
}

// CredentialUpdate is a partial update of a credential carrying plaintext
// secrets.
type CredentialUpdate struct {
	SiteName  *string `json:"site_name" validate:"omitempty,min=1,max=255"`
	Username  *string `json:"username" validate:"omitempty,min=1,max=255"`
	Password  *string `json:"password" validate:"omitempty,min=1,sealable=512"`
	OtherInfo *string `json:"other_info"`
	Category  *string `json:"category" validate:"omitempty,max=100"`
}

// CredentialPatch is the storage-level form of [CredentialUpdate] with the
// secrets already sealed.
type CredentialPatch struct {
	SiteName        *string
	Username        *string
	PasswordSealed  *string
	OtherInfoSealed *string
	Category        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p CredentialPatch) IsEmpty() bool {
	return p.SiteName == nil && p.Username == nil && p.PasswordSealed == nil &&
		p.OtherInfoSealed == nil && p.Category == nil
}

// CredentialDetail is the single-record view of a credential with both
// secrets opened.
type CredentialDetail struct {
	ID        int64       `json:"id"`
	SiteName  string      `json:"site_name"`
	Username  string      `json:"username"`
	Password  SecretValue `json:"password"`
	OtherInfo SecretValue `json:"other_info"`
	Category  *string     `json:"category"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt *time.Time  `json:"updated_at"`
}
