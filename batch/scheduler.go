package batch

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/simbyte/kernelexec"
	"github.com/katalvlaran/simbyte/memreq"
	"github.com/katalvlaran/simbyte/similarity"
	"github.com/katalvlaran/simbyte/subcost"
)

// ErrCountMismatch is returned when the two input sequences (or an input
// sequence and the output buffer) have different lengths — spec §7's
// "length mismatch" taxonomy entry, resolved for Go as an always-checked
// error rather than the source's debug-assert/release-undefined split
// (Go has no separate debug/release build mode; see DESIGN.md).
var ErrCountMismatch = errors.New("batch: input sequence counts differ")

// defaultL1Threshold approximates a typical L1 data cache size. Pairs whose
// memreq.Requirements.TotalBytes stays under this run one-per-worker;
// pairs at or above it run cooperatively, one pair at a time, using every
// worker on that single pair's diagonals.
const defaultL1Threshold = 32 * 1024

// Scheduler runs similarity calls over many pairs concurrently.
type Scheduler struct {
	// Executor supplies parallelism for both strategies: Eager for small
	// pairs, full ForEach-based cooperation inside the walker for large
	// ones. A nil Executor defaults to kernelexec.SingleThreaded{}.
	Executor kernelexec.Executor
	// L1Threshold overrides defaultL1Threshold when positive.
	L1Threshold int
}

// NewScheduler returns a Scheduler backed by exec with the default L1
// threshold.
func NewScheduler(exec kernelexec.Executor) *Scheduler {
	return &Scheduler{Executor: exec}
}

func (s *Scheduler) executor() kernelexec.Executor {
	if s.Executor != nil {
		return s.Executor
	}

	return kernelexec.SingleThreaded{}
}

func (s *Scheduler) threshold() int {
	if s.L1Threshold > 0 {
		return s.L1Threshold
	}

	return defaultL1Threshold
}

// run is the shared scheduling core (spec §4.H). footprint estimates pair
// i's scratch-buffer size; compute performs pair i's work using the given
// inner executor and reports an error (nil on success).
func (s *Scheduler) run(n int, footprint func(i int) int, compute func(i int, exec kernelexec.Executor) error) error {
	exec := s.executor()
	threshold := s.threshold()

	var failed atomic.Pointer[error]
	publish := func(err error) {
		if err == nil {
			return
		}
		e := err
		failed.CompareAndSwap(nil, &e)
	}
	shortCircuited := func() bool { return failed.Load() != nil }

	var small, big []int
	for i := 0; i < n; i++ {
		if footprint(i) < threshold {
			small = append(small, i)
		} else {
			big = append(big, i)
		}
	}

	exec.Eager(len(small), func(idx int) {
		if shortCircuited() {
			return
		}
		i := small[idx]
		publish(compute(i, kernelexec.SingleThreaded{}))
	})

	for _, i := range big {
		if shortCircuited() {
			break
		}
		publish(compute(i, exec))
	}

	if p := failed.Load(); p != nil {
		return *p
	}

	return nil
}

func checkCounts(n int, lens ...int) error {
	for _, l := range lens {
		if l != n {
			return ErrCountMismatch
		}
	}

	return nil
}

// EditDistances computes similarity.EditDistance for every (as[i], bs[i])
// pair and writes the results into out.
func (s *Scheduler) EditDistances(as, bs [][]byte, out []uint64, opts ...similarity.Option) error {
	n := len(as)
	if err := checkCounts(n, len(bs), len(out)); err != nil {
		return err
	}

	sub := subcost.Uniform{Match: 0, Mismatch: 1}
	gap := similarity.Linear(1)

	footprint := func(i int) int {
		return pairFootprint(as[i], bs[i], gap, sub.Magnitude(), false)
	}
	compute := func(i int, exec kernelexec.Executor) error {
		result, err := similarity.EditDistance(as[i], bs[i], append(append([]similarity.Option{}, opts...), similarity.WithExecutor(exec))...)
		if err != nil {
			return err
		}
		out[i] = result

		return nil
	}

	return s.run(n, footprint, compute)
}

// NeedlemanWunschScores computes similarity.NeedlemanWunschScore for every
// (as[i], bs[i]) pair under the shared subs/gap, writing into out.
func (s *Scheduler) NeedlemanWunschScores(as, bs [][]byte, subs subcost.Substituter, gap similarity.GapCost, out []int64, opts ...similarity.Option) error {
	return s.runAlignment(as, bs, subs, gap, out, false, opts)
}

// SmithWatermanScores computes similarity.SmithWatermanScore for every
// (as[i], bs[i]) pair under the shared subs/gap, writing into out.
func (s *Scheduler) SmithWatermanScores(as, bs [][]byte, subs subcost.Substituter, gap similarity.GapCost, out []int64, opts ...similarity.Option) error {
	return s.runAlignment(as, bs, subs, gap, out, true, opts)
}

func (s *Scheduler) runAlignment(as, bs [][]byte, subs subcost.Substituter, gap similarity.GapCost, out []int64, local bool, opts []similarity.Option) error {
	n := len(as)
	if err := checkCounts(n, len(bs), len(out)); err != nil {
		return err
	}

	footprint := func(i int) int {
		return pairFootprint(as[i], bs[i], gap, subs.Magnitude(), true)
	}
	compute := func(i int, exec kernelexec.Executor) error {
		fullOpts := append(append([]similarity.Option{}, opts...), similarity.WithExecutor(exec))

		var result int64
		var err error
		if local {
			result, err = similarity.SmithWatermanScore(as[i], bs[i], subs, gap, fullOpts...)
		} else {
			result, err = similarity.NeedlemanWunschScore(as[i], bs[i], subs, gap, fullOpts...)
		}
		if err != nil {
			return err
		}
		out[i] = result

		return nil
	}

	return s.run(n, footprint, compute)
}

func pairFootprint(a, b []byte, gap similarity.GapCost, subMagnitude int8, signed bool) int {
	model := memreq.Linear
	if gap.IsAffine() {
		model = memreq.Affine
	}

	return memreq.Estimate(len(a), len(b), model, subMagnitude, gap.Magnitude(), 1, 8, signed).TotalBytes
}
