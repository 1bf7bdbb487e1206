package book

import (
	"errors"
)

var (
	ErrNotFound  = errors.New("book not found")
	ErrInvalidID = errors.New("invalid book id")
)
