package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf(ErrInvalidSimplex, "kaboom %d", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom 3: invalid simplex")
		assert.True(t, errors.Is(err, ErrInvalidSimplex))
		assert.False(t, errors.Is(err, ErrDimensionMismatch))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("plain errors are not swallowed", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = Try(func() { panic(errors.New("not thrown")) })
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestTry(t *testing.T) {
	err := Try(func() { Fatalf(ErrNoSuchVertex, "point %s", "P") })
	assert.True(t, errors.Is(err, ErrNoSuchVertex))
	assert.NoError(t, Try(func() {}))
}
