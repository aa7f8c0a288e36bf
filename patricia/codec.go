package patricia

import (
	"fmt"

	"github.com/forestrie/go-h3dnames/binser"
)

// DeserializeFrom reads a node array from the cursor, replacing the tree's
// keys and nodes.
//
// The array carries no count. Node i is read only while i does not exceed
// the largest left/right index seen in nodes 0..i-1, so reading stops once
// every referenced index exists. Node i > 0 contributes its name as key i-1.
//
// On success the decoded array is kept as is and the tree is clean, so
// serializing again reproduces the input records exactly.
func (t *Tree) DeserializeFrom(r *binser.Reader) error {
	var nodes arena
	var names []string

	maxIndex := 0
	for i := 0; i <= maxIndex; i++ {
		var n Node
		if err := r.ReadRecord(&n); err != nil {
			return fmt.Errorf("%w: node %d of at least %d: %w", ErrMalformedStream, i, maxIndex+1, err)
		}
		maxIndex = max(maxIndex, int(n.Left), int(n.Right))

		if i == 0 {
			if n.Name != "" {
				return fmt.Errorf("%w: sentinel carries name %q", ErrMalformedStream, n.Name)
			}
		} else {
			names = append(names, n.Name)
		}
		nodes = append(nodes, n)
	}

	t.nodes = nodes
	t.names = names
	t.state = stateClean
	t.debugf("patricia decode: nodes=%d", len(nodes))
	return nil
}

// SerializeTo rebuilds if needed and writes the node array in index order.
func (t *Tree) SerializeTo(w *binser.Writer) error {
	if err := t.ensureBuilt(); err != nil {
		return err
	}
	return binser.WriteRecords(w, []Node(t.nodes))
}
