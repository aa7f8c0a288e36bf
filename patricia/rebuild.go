package patricia

import "fmt"

func (t *Tree) ensureBuilt() error {
	if !t.Stale() {
		return nil
	}
	return t.rebuild()
}

// rebuild inserts every key, in list order, into a fresh arena and swaps it
// in only once all insertions succeed.
func (t *Tree) rebuild() error {
	if len(t.names) > MaxKeys {
		return fmt.Errorf("%w: %d keys", ErrTooManyKeys, len(t.names))
	}

	keyLen := t.MaxKeyLength()
	nodes := newArena(len(t.names))
	for i, name := range t.names {
		if err := nodes.insert(name, keyLen); err != nil {
			return fmt.Errorf("key %d: %w", i, err)
		}
	}

	t.nodes = nodes
	t.state = stateClean
	t.debugf("patricia rebuild: keys=%d maxKeyLength=%d", len(t.names), keyLen)
	return nil
}
