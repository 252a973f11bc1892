package affinity

import "errors"

// Sentinel errors.
var (
	// ErrDisconnected means no threshold yields a single component, which
	// happens when the kernel underflows to 0 for every edge of some cut.
	ErrDisconnected = errors.New("affinity: graph is disconnected at every threshold")

	// ErrBadEpsilon indicates a non-positive or non-finite kernel scale.
	ErrBadEpsilon = errors.New("affinity: epsilon must be positive and finite")
)

// DefaultEpsilon is the default kernel scale ε.
const DefaultEpsilon = 1.0

// Option configures Matrix and DistanceBound.
type Option func(*Options)

// Options holds the kernel parameters.
type Options struct {
	// Epsilon is the kernel scale ε.
	Epsilon float64
}

// DefaultOptions returns Options with Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon sets the kernel scale ε.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}
