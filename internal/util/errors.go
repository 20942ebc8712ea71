package util

import "errors"

var (
	ErrTutorialNotFound  = errors.New("tutorial not found")
	ErrProblemNotFound   = errors.New("practice problem not found")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidIndex      = errors.New("index out of range")
	ErrNotToggleable     = errors.New("section has nothing to reveal")
	ErrStateNotFound     = errors.New("page state not found")
	ErrNoSession         = errors.New("missing session")
)
