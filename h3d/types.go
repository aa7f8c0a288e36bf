package h3d

import "errors"

var (
	ErrNoItemFactory = errors.New("h3d: list has no item factory for decoding")
	ErrNameMismatch  = errors.New("h3d: name index does not match item names")
)

// Named is the constraint for list items. Items are compared by identity
// when removed by value, so pointer types are the usual choice.
type Named interface {
	comparable
	Name() string
}
