package h3d

import (
	"fmt"
	"slices"
)

// Action is the kind of change reported to list observers.
type Action uint8

const (
	ActionAdd Action = iota + 1
	// ActionInsert reports an insertion; Index is the new item's position
	// and every later item has shifted up by one.
	ActionInsert
	ActionReplace
	ActionRemove
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionInsert:
		return "insert"
	case ActionReplace:
		return "replace"
	case ActionRemove:
		return "remove"
	case ActionReset:
		return "reset"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// NoIndex is the ChangeEvent index when the change has no position.
const NoIndex = -1

// ChangeEvent describes one mutation. Item is the zero value for
// ActionReset, and Index is NoIndex for plain adds, removals by value and
// resets.
type ChangeEvent[T any] struct {
	Action Action
	Item   T
	Index  int
}

type observer[T any] struct {
	id uint64
	fn func(ChangeEvent[T])
}

// Subscribe registers fn to be called, synchronously and in subscription
// order, after every mutation. The returned func removes it and may be
// called more than once.
func (l *PatriciaList[T]) Subscribe(fn func(ChangeEvent[T])) (unsubscribe func()) {
	l.nextID++
	id := l.nextID
	l.observers = append(l.observers, observer[T]{id: id, fn: fn})
	return func() {
		l.observers = slices.DeleteFunc(l.observers, func(o observer[T]) bool { return o.id == id })
	}
}

func (l *PatriciaList[T]) emit(action Action, item T, index int) {
	if len(l.observers) == 0 {
		return
	}
	ev := ChangeEvent[T]{Action: action, Item: item, Index: index}
	// observers may unsubscribe while being notified
	for _, o := range slices.Clone(l.observers) {
		o.fn(ev)
	}
}
