package h3d

import "github.com/datatrails/go-datatrails-common/logger"

type ListOption[T Named] func(*PatriciaList[T])

// WithNew sets the factory used to create each item before the record
// engine decodes into it. Lists that are only ever written don't need one.
func WithNew[T Named](fn func() T) ListOption[T] {
	return func(l *PatriciaList[T]) {
		l.newItem = fn
	}
}

// WithListLogger enables debug logging for the list and its name index.
func WithListLogger[T Named](log logger.Logger) ListOption[T] {
	return func(l *PatriciaList[T]) {
		l.log = log
	}
}
