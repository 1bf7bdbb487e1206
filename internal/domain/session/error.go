package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSession - общий класс ошибок сессии, под него попадают все ниже
	ErrInvalidSession = errors.New("invalid session")
	ErrInvalidToken   = fmt.Errorf("%w: malformed or forged token", ErrInvalidSession)
	ErrTokenExpired   = fmt.Errorf("%w: token expired", ErrInvalidSession)
	ErrEmptySecret    = errors.New("signing secret is empty")
)
