// Package dbg turns identifiers into readable names for debug logs. Triangle
// ids all look alike in a log, "BraveFalcon" and "QuietOtter" do not.
package dbg

import (
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

func init() {
	// Names are handed out in order of demand, so they are nondeterministic to
	// make clear that a name means nothing across runs.
	petname.NonDeterministicMode()
}

// Names memoizes a pet name per key. Names are generated lazily, so nothing is
// stored unless something asks for a name. Keys should be plain values such as
// ids; keying by pointer keeps the pointee alive until Forget.
type Names[K comparable] struct {
	mu    sync.Mutex
	names map[K]string
}

func NewNames[K comparable]() *Names[K] {
	return &Names[K]{names: make(map[K]string)}
}

func (n *Names[K]) Name(key K) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if name, ok := n.names[key]; ok {
		return name
	}
	name := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	n.names[key] = name
	return name
}

// Forget drops the name for key, if any. A later Name call for the same key
// gets a fresh name.
func (n *Names[K]) Forget(key K) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.names, key)
}

func (n *Names[K]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.names)
}
