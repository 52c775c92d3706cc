package solver

// DefaultMaxPasses bounds the number of diversified max-coverage passes when
// the caller does not supply a tighter cap. The effective pass count is the
// smaller of this cap and the number of candidate providers.
const DefaultMaxPasses = 500

type settings struct {
	maxPasses int
}

// Option applies a configuration option to Alternatives.
type Option func(*settings)

// WithMaxPasses caps the number of greedy passes.
func WithMaxPasses(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxPasses = n
		}
	}
}

func newSettings(opts ...Option) settings {
	s := settings{maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
