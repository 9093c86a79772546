package codec

// Options controls how payloads are decoded
type Options struct {
	// Strict rejects closed-enum values outside their documented set
	Strict bool
}

// Option configures Options
type Option func(*Options)

// WithStrict enables strict closed-enum decoding
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithStrictMode sets strict decoding from a flag value
func WithStrictMode(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// Apply folds opts into an Options value
func Apply(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
