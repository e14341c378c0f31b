package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrSealingSecret = errors.New("failed to seal secret")
)
