// Package dispatch models capability-keyed kernel dispatch: a table of
// kernel implementations keyed by which CPU feature each one needs, with
// selection resolved by Registry.Select against the host's detected
// capabilities (spec §1's "external collaborator" framing for SIMD kernel
// selection — "just a function-pointer table keyed on detected
// capabilities").
//
// Actual SIMD codegen is out of scope (spec §1 non-goals), so today every
// slot has exactly one registered implementation, tagged Generic. The
// table itself is real: Registry.Select still walks DetectedCapabilities
// in best-first order and would pick a faster registration transparently
// the day one is added, without any caller-visible change.
package dispatch
