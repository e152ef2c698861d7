package media

import "errors"

var (
	ErrInvalidEntity      = errors.New("invalid media entity")
	ErrInvalidContentType = errors.New("unsupported content type")
)
