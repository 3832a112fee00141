package gc

import "github.com/pkg/errors"

// Sentinel errors for the two raise sites §7 specifies. They are created
// once at package initialisation, so the stack pkg/errors records on them
// is that of package init, not of the raise; raise wraps them in *Error
// (below) without adding a trace of its own.
var (
	ErrOutOfMemory   = errors.New("Out of memory")
	ErrArenaOverflow = errors.New("arena overflow error")
)

// Error is what the collector panics with for both raise conditions in
// §7. Go has no setjmp/longjmp; a panic carrying a typed value is the
// idiomatic analogue of the host language's exception unwind, and
// embedders are expected to recover() at their call boundary the same way
// a host catches mrb_raise.
type Error struct {
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func raise(err error) {
	panic(&Error{Err: err})
}
