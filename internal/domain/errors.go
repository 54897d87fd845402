package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRoomNotFound     = errors.New("room does not exist")
	ErrNotAMember       = errors.New("not in room")
	ErrInvalidPosition  = errors.New("invalid move")
	ErrCellTaken        = fmt.Errorf("%w: cell already taken", ErrInvalidPosition)
	ErrGameFinished     = errors.New("game already finished")
	ErrValidationFailed = errors.New("validation failed")
)
