package patricia

import "github.com/datatrails/go-datatrails-common/logger"

type Option func(*Tree)

// WithLogger enables debug logging of rebuilds and decodes.
func WithLogger(log logger.Logger) Option {
	return func(t *Tree) {
		t.log = log
	}
}
