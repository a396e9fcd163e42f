package objectspace

import "go.uber.org/zap"

// config collects constructor-time settings applied by Option values.
type config struct {
	logger *zap.Logger
}

// Option configures a Space at construction time.
type Option func(*config)

// WithLogger attaches a zap logger a Space uses to report soft failures that
// don't abort the operation that triggered them (e.g. a candidate that
// matched an index but failed to decode under TakeAll). A nil logger is
// treated the same as omitting the option.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
