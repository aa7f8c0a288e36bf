package h3d

import (
	"fmt"

	"github.com/forestrie/go-h3dnames/binser"
	"github.com/forestrie/go-h3dnames/patricia"
)

// SerializeTo writes the item count, each item through the record engine,
// then the name index node array.
//
// Names are re-read from the items first, and the index is built before
// anything is written, so a duplicate name fails without partial output.
func (l *PatriciaList[T]) SerializeTo(w *binser.Writer) error {
	l.syncNames()
	if _, err := l.tree().NodeCount(); err != nil {
		return err
	}

	w.WriteU32(uint32(len(l.items)))
	for i, v := range l.items {
		if err := w.WriteValue(v); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return l.tree().SerializeTo(w)
}

// DeserializeFrom replaces the list contents with the items and name index
// at the cursor. The decoded index must name the decoded items in order.
// Observers are sent a single ActionReset on success.
func (l *PatriciaList[T]) DeserializeFrom(r *binser.Reader) error {
	if l.newItem == nil {
		return ErrNoItemFactory
	}

	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	items := make([]T, 0, min(int(n), r.Len()))
	for i := range int(n) {
		v := l.newItem()
		if err := r.Deserialize(v); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, v)
	}

	names := patricia.New(patricia.WithLogger(l.log))
	if err := names.DeserializeFrom(r); err != nil {
		return err
	}
	if names.Len() != len(items) {
		return fmt.Errorf("%w: %d names for %d items", ErrNameMismatch, names.Len(), len(items))
	}
	for i, name := range names.All() {
		if items[i].Name() != name {
			return fmt.Errorf("%w: item %d is %q, index has %q", ErrNameMismatch, i, items[i].Name(), name)
		}
	}

	l.items = items
	l.names = names
	l.debugf("h3d: decoded %d items", len(items))

	var zero T
	l.emit(ActionReset, zero, NoIndex)
	return nil
}
