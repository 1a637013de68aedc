package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     *logger.Logger
)

func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration order.
func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

func CloseAll(ctx context.Context) error {
	mu.Lock()
	pending := make([]namedCloser, len(closers))
	copy(pending, closers)
	closers = nil
	l := log
	mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		c := pending[i]
		if err := c.fn(ctx); err != nil {
			if l != nil {
				l.Error(ctx, "close "+c.name, logger.ErrorF(err))
			}
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}

	return errors.Join(errs...)
}
