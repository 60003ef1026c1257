package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrNotWritable      = errors.New("not writable")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// NotWritableError is returned when a mutation targets an item whose
// writable flag is false. For structural changes Item is the directory
// that refused the change.
type NotWritableError struct {
	Item Item
}

func (e *NotWritableError) Error() string {
	return fmt.Sprintf("%s: %s", describe(e.Item), ErrNotWritable)
}

func (e *NotWritableError) Is(target error) bool {
	return target == ErrNotWritable
}

// InvalidArgumentError covers name collisions, cycles, and lookups or
// removals of items that are not there. Item may be nil when the
// argument was a name that matched nothing.
type InvalidArgumentError struct {
	Item   Item
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Item == nil {
		return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", describe(e.Item), ErrInvalidArgument, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IndexOutOfBoundsError reports a position query outside 1..Len.
type IndexOutOfBoundsError struct {
	Item  Item
	Index int
	Len   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s: index %d not in [1, %d]", describe(e.Item), ErrIndexOutOfBounds, e.Index, e.Len)
}

func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

func describe(it Item) string {
	if it == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q", it.Kind(), it.Name())
}
