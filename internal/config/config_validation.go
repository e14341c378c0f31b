// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/ai-one-api/internal/crypto"
)

// applyDefaults fills fields that no configuration source provided.
// The legacy SECRET_ENCRYPTION_KEY is promoted into App.EncryptionKey here.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.EncryptionKey == "" {
		cfg.App.EncryptionKey = cfg.LegacyEncryptionKey
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = DefaultRateLimit
	}
	if cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = DefaultRateBurst
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The encryption key is decoded here so that a missing or malformed key stops
// the process before any storage or transport is created.
func (cfg *StructuredConfig) validate() error {
	if _, err := crypto.ParseEncryptionKey(cfg.App.EncryptionKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
