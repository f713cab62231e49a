package selection

import "github.com/hupe1980/bitkit"

// cancelCheckRows is how many rows are converted between context checks.
const cancelCheckRows = 1 << 16

type options struct {
	logger *bitkit.Logger
}

// Option configures a conversion.
type Option func(*options)

// WithLogger sets the logger conversions report to.
//
// If nil is passed, logging is disabled.
func WithLogger(l *bitkit.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = bitkit.NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: bitkit.NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
