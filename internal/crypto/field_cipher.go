// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/ai-one-api/internal/logger"
)

const (
	// KeySize is the length of the AES-256 process key in bytes.
	KeySize = 32

	// NonceSize is the length of the random nonce leading every token.
	NonceSize = 16

	// TagSize is the length of the GCM authentication tag trailing every token.
	TagSize = 16
)

// tokenEncoding is the single binary-to-text step of the token format.
var tokenEncoding = base64.URLEncoding

// aesFieldCipher is the AES-256-GCM implementation of [FieldCipher].
type aesFieldCipher struct {
	aead cipher.AEAD

	// random is the nonce source; crypto/rand.Reader outside of tests.
	random io.Reader

	logger *logger.Logger
}

// NewFieldCipher builds a [FieldCipher] bound to key. The key must be exactly
// [KeySize] bytes; use [ParseEncryptionKey] to obtain it from configuration.
func NewFieldCipher(key []byte, log *logger.Logger) (FieldCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrEncryptionKeyInvalid, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	return &aesFieldCipher{
		aead:   aead,
		random: rand.Reader,
		logger: log,
	}, nil
}

// ParseEncryptionKey decodes the configured key text. Both padded and
// unpadded base64url are accepted, surrounding whitespace is ignored.
func ParseEncryptionKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrEncryptionKeyMissing
	}

	enc := base64.URLEncoding
	if !strings.HasSuffix(encoded, "=") {
		enc = base64.RawURLEncoding
	}

	key, err := enc.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryptionKeyInvalid, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrEncryptionKeyInvalid, len(key))
	}

	return key, nil
}

// SealedLen returns the token length Seal produces for a plaintext of n bytes.
func SealedLen(n int) int {
	if n == 0 {
		return 0
	}
	return tokenEncoding.EncodedLen(NonceSize + n + TagSize)
}

// Seal implements [FieldCipher].
func (c *aesFieldCipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	// nonce ‖ ciphertext ‖ tag in one allocation
	blob := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, blob); err != nil {
		c.logger.Error().Err(err).Str("func", "aesFieldCipher.Seal").Msg("failed to read nonce")
		return "", fmt.Errorf("%w: generate nonce: %w", ErrSealFailed, err)
	}

	blob = c.aead.Seal(blob, blob[:NonceSize], []byte(plaintext), nil)

	return tokenEncoding.EncodeToString(blob), nil
}

// Open implements [FieldCipher].
func (c *aesFieldCipher) Open(token string) (plaintext string, err error) {
	if token == "" {
		return "", nil
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Str("func", "aesFieldCipher.Open").Any("panic", r).Msg("cipher panicked while opening field")
			plaintext, err = "", ErrUndecryptable
		}
	}()

	blob, decodeErr := tokenEncoding.DecodeString(token)
	if decodeErr != nil {
		c.logger.Warn().Err(decodeErr).Str("func", "aesFieldCipher.Open").Msg("token is not base64url")
		return "", ErrUndecryptable
	}

	if len(blob) < NonceSize+TagSize {
		c.logger.Warn().Str("func", "aesFieldCipher.Open").Int("len", len(blob)).Msg("token is shorter than nonce and tag")
		return "", ErrUndecryptable
	}

	nonce, sealed := blob[:NonceSize], blob[NonceSize:]

	opened, openErr := c.aead.Open(nil, nonce, sealed, nil)
	if openErr != nil {
		c.logger.Warn().Err(openErr).Str("func", "aesFieldCipher.Open").Msg("token failed authentication")
		return "", ErrUndecryptable
	}

	return string(opened), nil
}
