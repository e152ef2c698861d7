package community

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyContent = errors.New("post content must not be empty")
	ErrNotAuthor    = errors.New("post belongs to another user")
)
