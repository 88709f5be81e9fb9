package domain

import "errors"

// Repository errors shared by every storage implementation.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameConflict = errors.New("username conflict")
	ErrMazeNotFound     = errors.New("maze not found")
)
