package dispatch

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Capability names a CPU feature a kernel implementation may require.
// Generic always matches and is the required fallback for every slot.
type Capability string

const (
	Generic Capability = "generic"
	AVX2    Capability = "avx2"
	SSE42   Capability = "sse4.2"
)

// KernelSlot names a pluggable operation dispatch selects an implementation
// for. Each package that wants capability-keyed dispatch registers its
// default (Generic) implementation at init time under its own slot.
type KernelSlot string

const (
	SlotChecksumSum64 KernelSlot = "checksum.sum64"
	SlotBytescanFind  KernelSlot = "bytescan.find"
	// SlotSimilarityCell is reserved but unregistered: the cell kernel is a
	// Go-generic function monomorphized per cell width (similarity.Cell),
	// so there is no single concrete function value to store per
	// capability the way Sum64 or Find have one. A capability-specific
	// cell kernel would need its own per-width registration scheme.
	SlotSimilarityCell KernelSlot = "similarity.cell"
)

// DetectedCapabilities returns the capabilities this host supports, most
// specific first, always ending in Generic. Queries klauspost/cpuid/v2's
// global CPU descriptor exactly once per call — cheap, since cpuid caches
// its own probe results internally.
func DetectedCapabilities() []Capability {
	var caps []Capability
	if cpuid.CPU.Supports(cpuid.AVX2) {
		caps = append(caps, AVX2)
	}
	if cpuid.CPU.Supports(cpuid.SSE42) {
		caps = append(caps, SSE42)
	}

	return append(caps, Generic)
}

// Registry maps a KernelSlot and Capability pair to a registered
// implementation value. Implementations are stored as `any` and type-
// asserted by the caller, mirroring a function-pointer table keyed on
// capability rather than a generic dispatch mechanism — the slot's
// expected signature is a contract between registrar and caller, not
// something the registry itself enforces.
type Registry struct {
	mu    sync.RWMutex
	impls map[KernelSlot]map[Capability]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{impls: make(map[KernelSlot]map[Capability]any)}
}

// Register installs impl as slot's implementation for capability. Panics
// if impl is nil — a programmer error, not a runtime condition.
func (r *Registry) Register(slot KernelSlot, capability Capability, impl any) {
	if impl == nil {
		panic("dispatch: Register with nil impl")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.impls[slot] == nil {
		r.impls[slot] = make(map[Capability]any)
	}
	r.impls[slot][capability] = impl
}

// Select returns the best registered implementation for slot given caps
// (typically DetectedCapabilities()), walked in order, plus the capability
// it was registered under. ok is false if the slot has no registration at
// all, including Generic.
func (r *Registry) Select(slot KernelSlot, caps []Capability) (impl any, matched Capability, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byCapability := r.impls[slot]
	for _, c := range caps {
		if impl, found := byCapability[c]; found {
			return impl, c, true
		}
	}

	return nil, "", false
}

// Default is the process-wide registry every package's init() registers
// its Generic implementation into. Most callers use this instead of
// constructing their own Registry.
var Default = NewRegistry()
