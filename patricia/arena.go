package patricia

import (
	"fmt"
	"strings"
)

// arena is the flat node array. Node 0 is always the sentinel.
type arena []Node

// newArena returns an arena holding only the sentinel, sized for keyCount keys.
func newArena(keyCount int) arena {
	a := make(arena, 1, keyCount+1)
	if keyCount > 0 {
		a[0].RefBit = SentinelRefBit
	}
	return a
}

// descend walks from the sentinel towards name, following child links only
// while reference bits strictly decrease and stay above startBit. It returns
// the index it stopped at and the node it was reached from.
func (a arena) descend(name string, startBit uint32) (index int, parent int) {
	index = int(a[0].Left)
	for {
		p, c := a[parent], a[index]
		if p.RefBit <= c.RefBit || c.RefBit <= startBit {
			return index, parent
		}
		parent = index
		index = c.child(bitAt(name, c.RefBit))
	}
}

// lookup returns the index of the only key that can equal name. It follows
// child links for as long as reference bits strictly decrease, so unlike
// descend it enters nodes branching on bit 0.
func (a arena) lookup(name string) int {
	parent, index := 0, int(a[0].Left)
	for a[index].RefBit < a[parent].RefBit {
		parent = index
		index = a[index].child(bitAt(name, a[index].RefBit))
	}
	return index
}

// paddedEqual reports whether a and b are the same key once zero padded.
func paddedEqual(a, b string) bool {
	return strings.TrimRight(a, "\x00") == strings.TrimRight(b, "\x00")
}

// duplicateErr describes name colliding with the key at index i.
func (a arena) duplicateErr(name string, i int) error {
	if i == 0 {
		return fmt.Errorf("%w: %q has no set bits", ErrDuplicateKey, name)
	}
	return fmt.Errorf("%w: %q matches %q", ErrDuplicateKey, name, a[i].Name)
}

// insert adds name as a new node. keyLen is the longest key length of the
// whole key set, not just the keys inserted so far.
func (a *arena) insert(name string, keyLen int) error {
	nodes := *a
	if len(nodes) > MaxKeys {
		return ErrTooManyKeys
	}

	// descend never reaches a key held by a bit 0 node, so duplicates are
	// found with lookup.
	if i := nodes.lookup(name); paddedEqual(nodes[i].Name, name) {
		return nodes.duplicateErr(name, i)
	}

	nearest, _ := nodes.descend(name, 0)

	bit := keyLen*8 - 1
	for ; bit >= 0; bit-- {
		if bitAt(nodes[nearest].Name, uint32(bit)) != bitAt(name, uint32(bit)) {
			break
		}
	}
	if bit < 0 {
		return nodes.duplicateErr(name, nearest)
	}

	refBit := uint32(bit)
	self := uint16(len(nodes))
	existing, parent := nodes.descend(name, refBit)

	n := Node{RefBit: refBit, Name: name}
	if bitAt(name, refBit) {
		n.Left, n.Right = uint16(existing), self
	} else {
		n.Left, n.Right = self, uint16(existing)
	}

	if bitAt(name, nodes[parent].RefBit) {
		nodes[parent].Right = self
	} else {
		nodes[parent].Left = self
	}

	*a = append(nodes, n)
	return nil
}
