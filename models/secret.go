package models

// SecretState tells what happened when a sealed field was opened.
type SecretState string

const (
	// SecretOpened means the token was opened and Value holds the plaintext.
	SecretOpened SecretState = "opened"

	// SecretAbsent means no secret was ever stored for the field.
	SecretAbsent SecretState = "absent"

	// SecretUndecryptable means a token is stored but could not be opened
	// with the current key.
	SecretUndecryptable SecretState = "undecryptable"
)

// SecretValue is an opened sealed field. An undecryptable field is
// distinguishable from an absent one and never carries a value.
type SecretValue struct {
	State SecretState `json:"state"`
	Value string      `json:"value,omitempty"`
}

// OpenedSecret returns a [SecretValue] holding plaintext.
func OpenedSecret(plaintext string) SecretValue {
	return SecretValue{State: SecretOpened, Value: plaintext}
}

// AbsentSecret returns the [SecretValue] of a field that was never set.
func AbsentSecret() SecretValue {
	return SecretValue{State: SecretAbsent}
}

// UndecryptableSecret returns the [SecretValue] of a field whose token failed
// to open.
func UndecryptableSecret() SecretValue {
	return SecretValue{State: SecretUndecryptable}
}
