package patricia

import "github.com/forestrie/go-h3dnames/binser"

// Node is one entry of the flat node array.
//
// Left and Right are array indices. An index whose node has a reference bit
// that is not strictly lower than this node's is a link back up to a key.
type Node struct {
	RefBit uint32 `cbor:"1,keyasint"`
	Left   uint16 `cbor:"2,keyasint"`
	Right  uint16 `cbor:"3,keyasint"`
	Name   string `cbor:"4,keyasint,omitempty"`
}

// child returns the index selected by bit.
func (n Node) child(bit bool) int {
	if bit {
		return int(n.Right)
	}
	return int(n.Left)
}

// EncodeRecord writes the fixed node layout.
func (n Node) EncodeRecord(w *binser.Writer) error {
	w.WriteU32(n.RefBit)
	w.WriteU16(n.Left)
	w.WriteU16(n.Right)
	return w.WriteString(n.Name)
}

// DecodeRecord reads the fixed node layout.
func (n *Node) DecodeRecord(r *binser.Reader) error {
	var err error
	if n.RefBit, err = r.ReadU32(); err != nil {
		return err
	}
	if n.Left, err = r.ReadU16(); err != nil {
		return err
	}
	if n.Right, err = r.ReadU16(); err != nil {
		return err
	}
	n.Name, err = r.ReadString()
	return err
}
