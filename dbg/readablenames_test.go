package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	names := NewNames[uint64]()
	assert.Equal(t, 0, names.Len(), "names are generated lazily")

	first := names.Name(7)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, names.Name(7), "names are memoized")
	names.Name(8)
	assert.Equal(t, 2, names.Len())

	names.Forget(7)
	names.Forget(99)
	assert.Equal(t, 1, names.Len())
}
