package batch

// defaultGrainSize is the slice length below which the parallel
// transforms stay sequential; goroutine fan-out costs more than the
// arithmetic for small inputs.
const defaultGrainSize = 4096

// Option configures the batch transforms.
type Option func(*config)

type config struct {
	parallel  bool
	grainSize int
}

func defaultConfig() config {
	return config{
		grainSize: defaultGrainSize,
	}
}

// WithParallel enables data-parallel execution for inputs at least as
// long as the grain size.
func WithParallel() Option {
	return func(c *config) {
		c.parallel = true
	}
}

// WithGrainSize configures the minimum slice length for parallel
// execution. Values below 1 are ignored.
func WithGrainSize(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.grainSize = n
		}
	}
}
