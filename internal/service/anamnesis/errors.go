package anamnesis

import "errors"

var (
	ErrNotFound     = errors.New("anamnesis not submitted")
	ErrEmptyPayload = errors.New("anamnesis answers must not be empty")
)
