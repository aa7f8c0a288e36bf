package patricia

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// FormatNodes renders one line per node, in index order.
func FormatNodes(nodes []Node) string {
	var sb strings.Builder
	for i, n := range nodes {
		fmt.Fprintf(&sb, "%d ref=%08x left=%d right=%d", i, n.RefBit, n.Left, n.Right)
		if i > 0 {
			fmt.Fprintf(&sb, " name=%q", n.Name)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render draws the branch structure. Branches are labeled with their
// reference bit, leaves are the links back to key nodes.
func (t *Tree) Render() (string, error) {
	nodes, err := t.Nodes()
	if err != nil {
		return "", err
	}
	root := treeprint.NewWithRoot(fmt.Sprintf("%d keys", len(nodes)-1))
	renderEdge(root, nodes, nodes[0].RefBit, int(nodes[0].Left), "")
	return root.String(), nil
}

func renderEdge(tree treeprint.Tree, nodes []Node, parentBit uint32, i int, side string) {
	n := nodes[i]
	if n.RefBit >= parentBit {
		tree.AddNode(side + nodeLabel(nodes, i))
		return
	}
	branch := tree.AddBranch(fmt.Sprintf("%sbit %d", side, n.RefBit))
	renderEdge(branch, nodes, n.RefBit, int(n.Left), "0: ")
	renderEdge(branch, nodes, n.RefBit, int(n.Right), "1: ")
}

func nodeLabel(nodes []Node, i int) string {
	if i == 0 {
		return "[sentinel]"
	}
	return fmt.Sprintf("[%d] %q", i-1, nodes[i].Name)
}
