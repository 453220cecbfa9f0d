package todos

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyList       = errors.New("list is empty")
	ErrMoveOutOfBounds = errors.New("move would leave the list")
	ErrNoPrevious      = errors.New("no previous item")
	ErrNoSearch        = errors.New("no active search")
	ErrNoMatches       = errors.New("no matches")
)

type OutOfRangeError struct {
	Op    string
	Index int
	Len   int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (list has %d items)", e.Op, e.Index, e.Len)
}
