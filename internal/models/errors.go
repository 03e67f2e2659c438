package models

import (
	"errors"
)

var (
	ErrNoKeywords = errors.New("no valid keywords extracted")
	ErrValidation = errors.New("validation error")
)
