// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEncryptionKeyMissing is returned by [ParseEncryptionKey] when no key
	// was configured at all.
	ErrEncryptionKeyMissing = errors.New("encryption key is not set")

	// ErrEncryptionKeyInvalid is returned when the configured key is not
	// base64url text or does not decode to exactly [KeySize] bytes.
	ErrEncryptionKeyInvalid = errors.New("encryption key must be base64url encoded 32 bytes")

	// ErrSealFailed is returned by [FieldCipher.Seal] when the random source or
	// the AEAD fails. It indicates a broken runtime, not bad input.
	ErrSealFailed = errors.New("failed to seal field")

	// ErrUndecryptable is the only error [FieldCipher.Open] returns. It does
	// not say why the token could not be opened.
	ErrUndecryptable = errors.New("sealed field cannot be opened")
)
