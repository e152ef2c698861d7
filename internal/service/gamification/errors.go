package gamification

import "errors"

var ErrInvalidGoal = errors.New("hydration goal must be positive")
