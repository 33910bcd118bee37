package project

import "sort"

// SortByRecency returns a new slice ordered by ModifiedAt descending, most
// recent first. The sort is stable: records with equal timestamps keep their
// relative order from the input. The input slice is not mutated.
func SortByRecency(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ModifiedAt.After(sorted[j].ModifiedAt)
	})

	return sorted
}
