package content

import "errors"

var (
	ErrNotFound   = errors.New("setting not found")
	ErrInvalidKey = errors.New("invalid setting key")
)
