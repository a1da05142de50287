// Package memreq computes the per-request DP buffer sizing used by the
// similarity engine: the diagonal length, the cell width that keeps every
// DP value representable, and the total scratch-buffer size (spec §4.J).
package memreq
