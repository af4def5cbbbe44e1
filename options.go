package lmt

import "go.uber.org/zap"

// Options configures a MerkleTree.
type Options struct {
	Logger *zap.Logger
}

// Option sets a field of Options.
type Option func(*Options)

// WithLogger sets the logger used to report tree construction and leaf
// updates at debug level. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
