package unique

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlmesh/core"
	"github.com/katalvlaran/lvlmesh/interrupt"
)

// Section weights inside Group (sum to 1).
const (
	weightSort = 0.6
	weightScan = 0.4
)

// scanStride is how many sorted items pass between progress reports.
const scanStride = 1024

// Grouping is the outcome of grouping n keyed items by key equality.
//
//   - Rep[g]     the smallest original index in group g (its representative).
//   - Of[i]      the group id of item i (the inverse scatter).
//   - Members[g] every item of group g, ascending by original index.
//
// Invariants: len(Of) == n; every i appears in exactly one Members[Of[i]];
// Members[g][0] == Rep[g].
type Grouping struct {
	Rep     []int
	Of      []int
	Members [][]int
}

// Len returns the number of groups.
func (g Grouping) Len() int { return len(g.Rep) }

// Group sorts item indices by key and numbers the groups of equal keys.
// It is the shared "sort, scan for boundaries, emit forward/backward maps"
// routine behind unique-edge mapping and unique-simplex deduplication.
//
// Implementation:
//   - Stage 1 (weight 0.6): sort indices by compare(keys[a], keys[b]),
//     ties broken by original index.
//   - Stage 2 (weight 0.4): scan the sorted order; a key change closes a
//     group. Groups are numbered in key order.
//
// Inputs:
//   - keys:    one canonical key per item.
//   - compare: total order on keys (negative, zero, positive).
//   - opts:    core options; only the interrupter is used.
//
// Returns:
//   - Grouping with Rep, Of and Members (see Grouping).
//
// Errors:
//   - core.ErrOptionViolation, interrupt.ErrInterrupted (zero Grouping).
//
// Complexity:
//   - Time O(n log n) compare calls for the sort, O(n) for the scan.
//   - Space O(n).
//
// Notes:
//   - The sort is one step and is not interruptible; the scan polls the
//     interrupter per item.
func Group[K any](keys []K, compare func(a, b K) int, opts ...core.Option) (Grouping, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return Grouping{}, err
	}

	return GroupWith(keys, compare, o)
}

// GroupWith is Group for callers that already resolved their Options.
func GroupWith[K any](keys []K, compare func(a, b K) int, o core.Options) (Grouping, error) {
	in := o.Interrupter()
	n := len(keys)

	// 1) Stable lexicographic sort of item indices.
	if interrupt.Begin(in, weightSort) {
		return Grouping{}, interrupt.ErrInterrupted
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	slices.SortFunc(perm, func(a, b int) int {
		if c := compare(keys[a], keys[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if interrupt.End(in) {
		return Grouping{}, interrupt.ErrInterrupted
	}

	// 2) Scan for group boundaries.
	if interrupt.Begin(in, weightScan) {
		return Grouping{}, interrupt.ErrInterrupted
	}
	g := Grouping{Of: make([]int, n)}
	lo := 0
	for r := 0; r <= n; r++ {
		if r < n && pollAt(in, r, n) {
			return Grouping{}, interrupt.ErrInterrupted
		}
		if r > 0 && (r == n || compare(keys[perm[r-1]], keys[perm[r]]) != 0) {
			// Members share perm's storage; within a group perm is ascending.
			g.Rep = append(g.Rep, perm[lo])
			g.Members = append(g.Members, perm[lo:r:r])
			lo = r
		}
		if r < n {
			g.Of[perm[r]] = len(g.Rep)
		}
	}
	if interrupt.End(in) {
		return Grouping{}, interrupt.ErrInterrupted
	}

	return g, nil
}

// ByFirstOccurrence renumbers the groups so that Rep is ascending, i.e.
// groups appear in the order their first member appears in the input.
// The receiver is not modified.
func (g Grouping) ByFirstOccurrence() Grouping {
	order := make([]int, g.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return cmp.Compare(g.Rep[a], g.Rep[b]) })

	renum := make([]int, g.Len())
	out := Grouping{
		Rep:     make([]int, g.Len()),
		Of:      make([]int, len(g.Of)),
		Members: make([][]int, g.Len()),
	}
	for next, old := range order {
		renum[old] = next
		out.Rep[next] = g.Rep[old]
		out.Members[next] = g.Members[old]
	}
	for i, old := range g.Of {
		out.Of[i] = renum[old]
	}

	return out
}

// pollAt checks for cancellation at item r of n, reporting progress every
// scanStride items.
func pollAt(in interrupt.Interrupter, r, n int) bool {
	if r%scanStride == 0 {
		return interrupt.CheckAt(in, float64(r)/float64(n))
	}

	return interrupt.Check(in)
}
