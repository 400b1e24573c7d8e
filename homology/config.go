// SPDX-License-Identifier: MIT
package homology

// config is the resolved, immutable configuration for a Compute call.
type config struct {
	solver     Solver
	generators bool
}

func newConfig(opts ...Option) config {
	cfg := config{solver: currentDefaultSolver()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures a Compute call.
type Option func(*config)

// WithSolver overrides the SNF solver for this call only, independent of the
// process-wide default (see SetDefaultSolver). A nil fn is ignored.
func WithSolver(fn Solver) Option {
	return func(c *config) {
		if fn != nil {
			c.solver = fn
		}
	}
}

// WithGenerators requests explicit generator chains alongside Betti numbers
// and torsion coefficients.
func WithGenerators() Option {
	return func(c *config) { c.generators = true }
}
