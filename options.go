package lfu

// DefaultMaxSize is the size bound used by [New]
// when [WithMaxSize] is not provided.
const DefaultMaxSize = 64

type config struct {
	maxSize int
}

// Option configures a [Cache] during [New].
type Option func(*config)

// WithMaxSize sets the advisory bound on the summed
// length of stored values.
// It cannot be changed after construction.
func WithMaxSize(size int) Option {
	return func(c *config) {
		c.maxSize = size
	}
}

func defaultConfig() config {
	return config{maxSize: DefaultMaxSize}
}
