package internal

import "github.com/pkg/errors"

// Threading errors up and down the recursive determinant and cross product
// expansions would add a ton of noise to the geometry code. Instead, we use
// panics, and the public API recovers to convert to an error.

var (
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrInvalidSimplex      = errors.New("invalid simplex")
	ErrNoSuchVertex        = errors.New("no such vertex")
	ErrNoSuchNode          = errors.New("no such node")
	ErrLocationFailure     = errors.New("no containing triangle")
	ErrUnsupportedMutation = errors.New("triangles are immutable")
	ErrOpenRing            = errors.New("triangle ring is not closed")
	ErrNonFinite           = errors.New("non-finite coordinate")
)

// Only values of this type are converted back into errors. Anything else that
// panics (nil dereferences, index errors) is a real bug and keeps panicking.
type thrown struct {
	err error
}

// Panic with an error of the given kind. The kind stays reachable through
// errors.Is.
func fatalf(kind error, format string, args ...interface{}) {
	panic(thrown{errors.Wrapf(kind, format, args...)})
}

// Fatalf is fatalf for callers outside this package.
func Fatalf(kind error, format string, args ...interface{}) {
	fatalf(kind, format, args...)
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if t, ok := r.(thrown); ok {
			return t.err
		}
		panic(r)
	}
	return nil
}

// Run fn and return whatever it threw.
func Try(fn func()) (err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
