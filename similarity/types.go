package similarity

import (
	"errors"

	"github.com/katalvlaran/simbyte/kernelexec"
)

// Sentinel errors surfaced by the façade. Kernels themselves never error —
// arithmetic overflow is structurally impossible once the façade has picked
// a cell width (memreq.Estimate), so the only recoverable failure left is
// allocation.
var (
	// ErrOutOfMemory is returned when an Allocator fails to satisfy a
	// scratch-buffer request. The output is left untouched.
	ErrOutOfMemory = errors.New("similarity: out of memory")

	// ErrInvalidGapCost names an invalid gap-cost configuration. No function
	// in this package returns it: GapCost values are not validated.
	ErrInvalidGapCost = errors.New("similarity: invalid gap cost")
)

// Locality selects whether a call computes a global (end-to-end) or local
// (best-substring) alignment.
type Locality int

const (
	// Global requires the alignment to span both sequences end to end
	// (Levenshtein, Needleman-Wunsch).
	Global Locality = iota
	// Local allows the alignment to start and end anywhere (Smith-Waterman).
	Local
)

// Objective selects whether the DP recurrence's opt() picks the minimum
// (edit distance, smaller is better) or the maximum (alignment score,
// larger is better).
type Objective int

const (
	// MinimizeDistance makes opt() behave as min.
	MinimizeDistance Objective = iota
	// MaximizeScore makes opt() behave as max.
	MaximizeScore
)

// GapCost is the linear or affine gap penalty. Open == Extend collapses to
// the linear model (façade delegates accordingly, per §4.G step 1).
type GapCost struct {
	Open   int8
	Extend int8
}

// Linear constructs a linear gap cost of g per gap cell.
func Linear(g int8) GapCost { return GapCost{Open: g, Extend: g} }

// Affine constructs an affine gap cost: open once, then extend per cell.
func Affine(open, extend int8) GapCost { return GapCost{Open: open, Extend: extend} }

// IsAffine reports whether this cost needs the seven-buffer affine walker.
func (g GapCost) IsAffine() bool { return g.Open != g.Extend }

// Magnitude returns the largest absolute value either field can contribute,
// the same role subcost.Substituter.Magnitude() plays for substitution costs.
func (g GapCost) Magnitude() int8 {
	return maxAbs8(g.Open, g.Extend)
}

func maxAbs8(values ...int8) int8 {
	var m int8
	for _, v := range values {
		a := v
		if a < 0 {
			if a == -128 {
				a = 127
			} else {
				a = -a
			}
		}
		if a > m {
			m = a
		}
	}

	return m
}

// Allocator abstracts scratch-buffer acquisition so a caller can inject a
// bounded or failing allocator in tests, per spec §9.1's "every call takes
// an allocator" design note. ProcessAllocator is the zero-configuration
// default used when no WithAllocator option is supplied.
type Allocator interface {
	Alloc(n int) ([]byte, error)
}

// ProcessAllocator satisfies every request from the Go heap and never fails.
type ProcessAllocator struct{}

// Alloc implements Allocator.
func (ProcessAllocator) Alloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

// config collects the options every façade function accepts. Unexported —
// callers only ever see the Option functions and WithXxx constructors.
type config struct {
	bound     uint64
	hasBound  bool
	allocator Allocator
	executor  kernelexec.Executor
}

func defaultConfig() config {
	return config{
		allocator: ProcessAllocator{},
		executor:  kernelexec.SingleThreaded{},
	}
}

// Option customizes a façade call. Construct one via WithBound,
// WithAllocator, or WithExecutor.
type Option func(*config)

// WithBound caps the computed distance: once the DP is known to exceed
// bound, the call returns bound exactly (the convention this module fixes
// for the spec's open bounded-distance question — see DESIGN.md).
func WithBound(bound uint64) Option {
	return func(c *config) {
		c.bound = bound
		c.hasBound = true
	}
}

// WithAllocator overrides the scratch-buffer source. Panics on nil, matching
// this module's other Option constructors' fail-fast convention.
func WithAllocator(a Allocator) Option {
	if a == nil {
		panic("similarity: WithAllocator(nil)")
	}

	return func(c *config) { c.allocator = a }
}

// WithExecutor overrides the parallelism strategy used inside the walker.
// Panics on nil.
func WithExecutor(e kernelexec.Executor) Option {
	if e == nil {
		panic("similarity: WithExecutor(nil)")
	}

	return func(c *config) { c.executor = e }
}

func applyOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
