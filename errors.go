package arena

import "github.com/pkg/errors"

var (
	// ErrInvalidHandle reports a handle whose page or slot does not exist in the arena.
	ErrInvalidHandle = errors.New("arena: invalid handle")
	// ErrTypeMismatch reports a page accessed with a type other than the one it was created for.
	ErrTypeMismatch = errors.New("arena: page type mismatch")
	// ErrTooManyPages is raised when a page index would not fit in a handle.
	ErrTooManyPages = errors.New("arena: max pages exceeded")
	// ErrSlotOutOfRange is raised when a slot index would not fit in a handle.
	ErrSlotOutOfRange = errors.New("arena: slot out of range")
	// ErrReleased is raised on use after Release.
	ErrReleased = errors.New("arena: use after Release()")
)

// fault panics with err wrapped in the formatted context. Faults are programmer
// errors: forged or corrupted handles, or a broken construction invariant.
func fault(err error, format string, args ...any) {
	panic(errors.Wrapf(err, format, args...))
}
