package models

import "errors"

var (
	// ErrInvalidEntity is returned when an entity definition is incomplete or inconsistent
	ErrInvalidEntity = errors.New("entity: invalid")

	// ErrInvalidAttribute is returned when an attribute value is outside its domain
	ErrInvalidAttribute = errors.New("entity: invalid attribute")

	// ErrAttributeMismatch is returned when attributes of one entity type are applied to another
	ErrAttributeMismatch = errors.New("entity: attributes do not match entity type")
)
