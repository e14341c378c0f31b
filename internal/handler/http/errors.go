// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed requests rejected before the service layer
// is reached. All of them map to 400 Bad Request.
var (
	// ErrInvalidID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrInvalidPagination is returned when the skip or limit query
	// parameters are not non-negative integers.
	ErrInvalidPagination = errors.New("skip and limit must be non-negative integers")

	// ErrInvalidJSON is returned when the request body cannot be decoded
	// into the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
