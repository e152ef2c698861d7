package checklist

import "errors"

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrEmptyTitle    = errors.New("habit title must not be empty")
)
