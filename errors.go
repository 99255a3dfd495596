package blocklist

import (
	"errors"
	"fmt"
)

var (
	// ErrConcurrentModification is returned by an Iterator that observes a
	// structural change made through the List after the Iterator was created.
	ErrConcurrentModification = errors.New("list structurally modified during iteration")
	// ErrRemoveNotReady is returned by Iterator.Remove when no element has
	// been yielded since the last removal.
	ErrRemoveNotReady = errors.New("remove requires a prior call to Next")
	// ErrIterationDone is returned by Iterator.Next once the iteration has
	// passed the final element.
	ErrIterationDone = errors.New("iteration has no more elements")
)

// ErrIndexOutOfRange indicates an index argument outside the operation's
// valid interval.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: index = %d, length = %d", e.Index, e.Length)
}

// ErrInvalidRange indicates a RemoveRange interval that does not satisfy
// 0 <= from <= to <= length.
type ErrInvalidRange struct {
	From   int
	To     int
	Length int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range: from = %d, to = %d, length = %d", e.From, e.To, e.Length)
}

// ErrInvalidBlockSize indicates a configured block size too small for the
// split and merge thresholds to work with.
type ErrInvalidBlockSize struct {
	Size int
}

func (e *ErrInvalidBlockSize) Error() string {
	return fmt.Sprintf("block size must be greater than 4, got %d", e.Size)
}
