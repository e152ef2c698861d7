package diary

import "errors"

var (
	ErrEntryNotFound    = errors.New("diary entry not found")
	ErrEmptyDescription = errors.New("entry description must not be empty")
	ErrInvalidMeal      = errors.New("invalid meal type")
	ErrNotOwner         = errors.New("entry belongs to another patient")
)
