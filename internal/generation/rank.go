package generation

import "sort"

// SortByScore orders s by descending score in place. Equal scores keep
// their relative order.
func SortByScore(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Score > s[j].Score
	})
}
