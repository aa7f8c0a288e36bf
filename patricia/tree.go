package patricia

import (
	"fmt"
	"iter"
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
)

type treeState uint8

const (
	stateClean treeState = iota
	stateStale
)

// Tree is a PATRICIA index over an ordered list of names.
//
// Mutations only edit the name list and mark the tree stale. The node array
// is rebuilt on the next lookup or serialization. A failed rebuild leaves the
// previous node array in place and the tree stale.
//
// Tree is not safe for concurrent use. Callers that share one must hold a
// single lock across every call, lookups included, as lookups may rebuild.
//
// The zero value is an empty tree.
type Tree struct {
	log   logger.Logger
	names []string
	nodes arena
	state treeState
}

// New returns an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{nodes: newArena(0)}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Tree) debugf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.Debugf(format, args...)
}

// Len returns the number of keys.
func (t *Tree) Len() int { return len(t.names) }

// Stale reports whether the node array needs a rebuild.
func (t *Tree) Stale() bool {
	return t.state == stateStale || len(t.nodes) == 0
}

func (t *Tree) touch() { t.state = stateStale }

// Add appends name to the key list.
func (t *Tree) Add(name string) {
	t.names = append(t.names, name)
	t.touch()
}

// Insert places name at pos in the key list, 0 <= pos <= Len().
func (t *Tree) Insert(pos int, name string) error {
	if pos < 0 || pos > len(t.names) {
		return fmt.Errorf("%w: insert at %d, len %d", ErrIndexOutOfRange, pos, len(t.names))
	}
	t.names = slices.Insert(t.names, pos, name)
	t.touch()
	return nil
}

// Remove deletes the first occurrence of name. It reports whether name was present.
func (t *Tree) Remove(name string) bool {
	i := slices.Index(t.names, name)
	if i < 0 {
		return false
	}
	t.names = slices.Delete(t.names, i, i+1)
	t.touch()
	return true
}

// RemoveAt deletes the key at pos.
func (t *Tree) RemoveAt(pos int) error {
	if err := t.checkPos(pos); err != nil {
		return err
	}
	t.names = slices.Delete(t.names, pos, pos+1)
	t.touch()
	return nil
}

// SetAt replaces the key at pos.
func (t *Tree) SetAt(pos int, name string) error {
	if err := t.checkPos(pos); err != nil {
		return err
	}
	if t.names[pos] == name {
		return nil
	}
	t.names[pos] = name
	t.touch()
	return nil
}

func (t *Tree) Clear() {
	t.names = nil
	t.touch()
}

func (t *Tree) checkPos(pos int) error {
	if pos < 0 || pos >= len(t.names) {
		return fmt.Errorf("%w: %d, len %d", ErrIndexOutOfRange, pos, len(t.names))
	}
	return nil
}

// FindName returns the key at pos. It never rebuilds.
func (t *Tree) FindName(pos int) (string, error) {
	if err := t.checkPos(pos); err != nil {
		return "", err
	}
	return t.names[pos], nil
}

// FindIndex returns the position of name, or NotFound. The error is non nil
// only if a pending rebuild fails.
func (t *Tree) FindIndex(name string) (int, error) {
	if err := t.ensureBuilt(); err != nil {
		return NotFound, err
	}
	i := t.nodes.lookup(name)
	if i == 0 || t.nodes[i].Name != name {
		return NotFound, nil
	}
	return i - 1, nil
}

func (t *Tree) Contains(name string) (bool, error) {
	i, err := t.FindIndex(name)
	return i != NotFound, err
}

// MaxKeyLength returns the byte length of the longest key. It is computed on
// every call.
func (t *Tree) MaxKeyLength() int {
	n := 0
	for _, name := range t.names {
		n = max(n, len(name))
	}
	return n
}

// Names returns a copy of the ordered key list.
func (t *Tree) Names() []string {
	return slices.Clone(t.names)
}

// All yields each position and key in order.
func (t *Tree) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, name := range t.names {
			if !yield(i, name) {
				return
			}
		}
	}
}

// Nodes returns a copy of the node array, rebuilding it if needed.
func (t *Tree) Nodes() ([]Node, error) {
	if err := t.ensureBuilt(); err != nil {
		return nil, err
	}
	return slices.Clone(t.nodes), nil
}

// NodeCount returns the node array length (keys plus the sentinel), rebuilding if needed.
func (t *Tree) NodeCount() (int, error) {
	if err := t.ensureBuilt(); err != nil {
		return 0, err
	}
	return len(t.nodes), nil
}
