package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher seals individual record fields for storage and opens them back.
//
// A sealed token is the base64url encoding of nonce ‖ ciphertext ‖ tag and is
// opaque to every caller. The empty string is never encrypted: Seal("") and
// Open("") both return "".
//
// Implementations hold no mutable state and are safe for concurrent use.
type FieldCipher interface {
	// Seal encrypts plaintext under the process key with a fresh random nonce.
	// Two calls with the same plaintext return different tokens.
	// A non-nil error wraps [ErrSealFailed] and means the entropy source or the
	// cipher itself is broken.
	Seal(plaintext string) (string, error)

	// Open authenticates and decrypts a token produced by Seal.
	// Any malformed, truncated, tampered or foreign-key token yields exactly
	// [ErrUndecryptable]; the cause is only written to the diagnostic log.
	Open(token string) (string, error)
}
