package domain

import "slices"

// DiffCategoryIDs computes the join rows to insert and delete so that a
// note associated with current ends up associated with exactly desired.
// Duplicates in either input are ignored. Both results are sorted.
func DiffCategoryIDs(current, desired []int64) (add, remove []int64) {
	have := make(map[int64]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}
	want := make(map[int64]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}

	for id := range want {
		if _, ok := have[id]; !ok {
			add = append(add, id)
		}
	}
	for id := range have {
		if _, ok := want[id]; !ok {
			remove = append(remove, id)
		}
	}

	slices.Sort(add)
	slices.Sort(remove)
	return add, remove
}

// UniqueIDs returns ids with duplicates removed, keeping first occurrence order.
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
