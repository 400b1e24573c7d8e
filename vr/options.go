// SPDX-License-Identifier: MIT
//
// options.go - functional configuration for VR/witness construction.
// Mirrors the donor builder package's functional-option-into-immutable-
// config pattern: WithX constructors populate an unexported config struct
// resolved once by newConfig, never mutated afterward.
package vr

// Expansion selects the nerve-expansion algorithm used to build simplices
// above dimension 1.
type Expansion int

const (
	// Inductive expands dimension by dimension: for each d-simplex, find
	// common lower neighbors of all its vertices.
	Inductive Expansion = iota
	// Incremental expands vertex by vertex, extending a running simplex by
	// intersecting lower-neighbor sets as it grows.
	Incremental
)

// String renders the expansion method for error messages and diagnostics.
func (e Expansion) String() string {
	switch e {
	case Inductive:
		return "inductive"
	case Incremental:
		return "incremental"
	default:
		return "unknown"
	}
}

// LandmarkMethod labels the convention used by the caller to select the
// witness-complex landmark set. Landmark selection itself remains an
// external collaborator. The label is stored in the resolved config only;
// neither Build nor Witness reads it, and it changes no output.
type LandmarkMethod int

const (
	// RandomLandmarks indicates landmarks were chosen uniformly at random.
	RandomLandmarks LandmarkMethod = iota
	// MinMaxLandmarks indicates landmarks were chosen by a minmax/farthest-
	// point heuristic.
	MinMaxLandmarks
)

const (
	// DefaultMaxDim bounds expansion when the caller does not specify one.
	DefaultMaxDim = 3
)

// config is the resolved, immutable configuration used by Build and Witness.
type config struct {
	maxDim         int
	expansion      Expansion
	weights        bool
	landmarkMethod LandmarkMethod
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxDim:         DefaultMaxDim,
		expansion:      Inductive,
		weights:        false,
		landmarkMethod: RandomLandmarks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures Build/Witness behavior.
type Option func(*config)

// WithMaxDim bounds the highest simplex dimension constructed.
func WithMaxDim(d int) Option {
	return func(c *config) { c.maxDim = d }
}

// WithExpansion selects the nerve-expansion algorithm.
func WithExpansion(e Expansion) Option {
	return func(c *config) { c.expansion = e }
}

// WithWeights requests that filtration weights be computed and returned
// alongside the complex.
func WithWeights() Option {
	return func(c *config) { c.weights = true }
}

// WithLandmarkMethod tags the landmark-selection convention used by the
// caller (stored only; see LandmarkMethod).
func WithLandmarkMethod(m LandmarkMethod) Option {
	return func(c *config) { c.landmarkMethod = m }
}
