package objectspace

import (
	"go.uber.org/zap"

	"github.com/jpare/objectspace/internal/coordinator"
)

// Space is a process-wide, thread-safe, heterogeneously-typed store.
// Values are deposited with Write and retrieved with the package-level
// generic operations (Read, Take, ReadAll, ...), which all take a *Space as
// their second argument, after the context, since Go methods cannot introduce new type
// parameters beyond those of their receiver.
//
// The zero value is not usable; construct one with New.
type Space struct {
	c *coordinator.Coordinator
}

// New creates an empty Space.
func New(opts ...Option) *Space {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Space{c: coordinator.New(cfg.logger)}
}

// Close releases every goroutine currently blocked in a Read or Take call on
// s with ErrClosed, and causes every subsequent operation on s to fail the
// same way. Close is idempotent.
func (s *Space) Close() {
	s.c.Close()
}
