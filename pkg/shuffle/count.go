package shuffle

import "github.com/matzehuels/shuffleset/pkg/perm"

// MaxEnumerableItems is the largest set CountValid enumerates (8! = 40320
// permutations).
const MaxEnumerableItems = 8

// CountValid returns the exact number of distinct orderings of items with no
// adjacent same-artist tracks. The second result is false, and the count 0,
// when the set is larger than MaxEnumerableItems.
//
// items must be duplicate-free (see [Normalize]); each permutation then is a
// distinct ordering.
func CountValid(items []Item) (int, bool) {
	if len(items) > MaxEnumerableItems {
		return 0, false
	}

	artists := make([]string, len(items))
	for i, it := range items {
		artists[i] = it.Artist()
	}

	count := 0
	for _, p := range perm.Generate(len(items), 0) {
		valid := true
		for i := 1; i < len(p); i++ {
			if artists[p[i]] == artists[p[i-1]] {
				valid = false
				break
			}
		}
		if valid {
			count++
		}
	}
	return count, true
}
