package h3d

import (
	"fmt"
	"iter"
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-h3dnames/patricia"
)

// PatriciaList is an ordered collection of named items with name lookup.
//
// The name index holds exactly the item names, in item order, so the index
// a name resolves to is the item's position. Names are read from items when
// they are added, inserted or set. An item renamed in place keeps its old
// name in the index until Reindex is called or the list is serialized. Like
// patricia.Tree it is not safe for concurrent use.
//
// The zero value is an empty list with no observers and no item factory.
type PatriciaList[T Named] struct {
	items []T
	names *patricia.Tree

	observers []observer[T]
	nextID    uint64

	newItem func() T
	log     logger.Logger
}

// NewPatriciaList returns an empty list.
func NewPatriciaList[T Named](opts ...ListOption[T]) *PatriciaList[T] {
	l := &PatriciaList[T]{}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *PatriciaList[T]) tree() *patricia.Tree {
	if l.names == nil {
		l.names = patricia.New(patricia.WithLogger(l.log))
	}
	return l.names
}

func (l *PatriciaList[T]) debugf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.Debugf(format, args...)
}

func (l *PatriciaList[T]) Len() int { return len(l.items) }

func (l *PatriciaList[T]) checkPos(pos int) error {
	if pos < 0 || pos >= len(l.items) {
		return fmt.Errorf("%w: %d, len %d", patricia.ErrIndexOutOfRange, pos, len(l.items))
	}
	return nil
}

func (l *PatriciaList[T]) Get(pos int) (T, error) {
	if err := l.checkPos(pos); err != nil {
		var zero T
		return zero, err
	}
	return l.items[pos], nil
}

// Set replaces the item at pos and re-indexes its name.
func (l *PatriciaList[T]) Set(pos int, v T) error {
	if err := l.checkPos(pos); err != nil {
		return err
	}
	if err := l.tree().SetAt(pos, v.Name()); err != nil {
		return err
	}
	l.items[pos] = v
	l.emit(ActionReplace, v, pos)
	return nil
}

// GetByName returns the item called name, or patricia.ErrKeyNotFound.
func (l *PatriciaList[T]) GetByName(name string) (T, error) {
	var zero T
	i, err := l.indexOf(name)
	if err != nil {
		return zero, err
	}
	return l.items[i], nil
}

// SetByName replaces the item called name.
func (l *PatriciaList[T]) SetByName(name string, v T) error {
	i, err := l.indexOf(name)
	if err != nil {
		return err
	}
	return l.Set(i, v)
}

func (l *PatriciaList[T]) indexOf(name string) (int, error) {
	i, err := l.tree().FindIndex(name)
	if err != nil {
		return patricia.NotFound, err
	}
	if i == patricia.NotFound {
		return patricia.NotFound, fmt.Errorf("%w: %q", patricia.ErrKeyNotFound, name)
	}
	return i, nil
}

// Add appends v.
func (l *PatriciaList[T]) Add(v T) {
	l.items = append(l.items, v)
	l.tree().Add(v.Name())
	l.emit(ActionAdd, v, NoIndex)
}

// Insert places v at pos, 0 <= pos <= Len().
func (l *PatriciaList[T]) Insert(pos int, v T) error {
	if err := l.tree().Insert(pos, v.Name()); err != nil {
		return err
	}
	l.items = slices.Insert(l.items, pos, v)
	l.emit(ActionInsert, v, pos)
	return nil
}

// Remove deletes the first occurrence of v. It reports whether v was present.
func (l *PatriciaList[T]) Remove(v T) bool {
	i := slices.Index(l.items, v)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	l.emit(ActionRemove, v, NoIndex)
	return true
}

// RemoveAt deletes the item at pos.
func (l *PatriciaList[T]) RemoveAt(pos int) error {
	if err := l.checkPos(pos); err != nil {
		return err
	}
	v := l.removeAt(pos)
	l.emit(ActionRemove, v, pos)
	return nil
}

// RemoveByName deletes the item called name, or returns patricia.ErrKeyNotFound.
func (l *PatriciaList[T]) RemoveByName(name string) error {
	i, err := l.indexOf(name)
	if err != nil {
		return err
	}
	return l.RemoveAt(i)
}

func (l *PatriciaList[T]) removeAt(pos int) T {
	v := l.items[pos]
	l.items = slices.Delete(l.items, pos, pos+1)
	// positions match, so this cannot fail
	_ = l.tree().RemoveAt(pos)
	return v
}

func (l *PatriciaList[T]) Clear() {
	l.items = nil
	l.tree().Clear()
	var zero T
	l.emit(ActionReset, zero, NoIndex)
}

func (l *PatriciaList[T]) Contains(name string) (bool, error) {
	return l.tree().Contains(name)
}

// FindIndex returns the position of the item called name, or patricia.NotFound.
func (l *PatriciaList[T]) FindIndex(name string) (int, error) {
	return l.tree().FindIndex(name)
}

func (l *PatriciaList[T]) FindName(pos int) (string, error) {
	return l.tree().FindName(pos)
}

// Names returns the indexed names in item order.
func (l *PatriciaList[T]) Names() []string {
	return l.tree().Names()
}

// All yields each position and item in order.
func (l *PatriciaList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Reindex re-reads every item name, so items renamed in place are found
// under their current name.
func (l *PatriciaList[T]) Reindex() {
	l.syncNames()
}

// syncNames re-reads every item name so items renamed after they were added
// are indexed under their current name.
func (l *PatriciaList[T]) syncNames() {
	renamed := 0
	for i, v := range l.items {
		name := v.Name()
		if cur, _ := l.tree().FindName(i); cur != name {
			_ = l.tree().SetAt(i, name)
			renamed++
		}
	}
	if renamed > 0 {
		l.debugf("h3d: reindexed %d renamed items", renamed)
	}
}
