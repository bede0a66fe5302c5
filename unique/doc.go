// Package unique deduplicates simplices and provides the generic
// sort-and-group primitive shared with unique-edge mapping.
//
// What
//
//   - Group / GroupWith: sort item indices by a canonical key (ties broken by
//     original index), scan for key changes, and emit
//     Rep (group → first item), Of (item → group) and Members (group → items).
//   - Simplices: canonicalize each face (vertex indices ascending, winding
//     discarded), group, and gather one representative row per group into
//     FF, with IA (FF → F) and IC (F → FF).
//   - SimplicesOnly: FF alone.
//
// Ordering
//
//	Group numbers groups in key order. Simplices re-numbers them by first
//	occurrence unless core.WithKeyOrder() is given, which makes running it on
//	an already deduplicated table a no-op (IA is the identity permutation).
//
// Progress sections (weights within each call sum to 1):
//
//	Group:     sort 0.6, scan 0.4
//	Simplices: canonicalize 0.2, group 0.6, gather 0.2
//
// Complexity (n rows of width k)
//
//   - Time:   O(n·k·log n)
//   - Memory: O(n·k)
//
// Usage
//
//	F := core.MustTable([][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 3}})
//	res, err := unique.Simplices(F)
//	// res.FF = [[0 1 2] [1 2 3]], res.IA = [0 2], res.IC = [0 0 1]
package unique
