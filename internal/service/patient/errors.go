package patient

import "errors"

var (
	ErrNotFound     = errors.New("patient not found")
	ErrInvalidInput = errors.New("invalid profile input")
)
