package bench

// defaultTrials is the number of timed runs per measurement, after the
// single untimed warm-up.
const defaultTrials = 5

// settings holds shared harness and scorer configuration.
type settings struct {
	trials int
}

// Option configures a Harness or Scorer.
type Option func(*settings)

// WithTrials sets the number of timed runs per measurement.
// Values below 1 are ignored.
func WithTrials(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.trials = n
		}
	}
}

func newSettings(opts ...Option) settings {
	s := settings{trials: defaultTrials}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
