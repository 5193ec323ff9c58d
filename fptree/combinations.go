package fptree

// combinations returns every non-empty subset of items, preserving the
// relative order of items within each subset. For n items it returns
// 2^n - 1 subsets. The enumeration order is fixed: it is a bitmask count
// from 1 to 2^n-1 where bit i selects items[i], so the first subset
// emitted is the singleton [items[0]] and the last is the full sequence.
// Every mask with bit 0 set produces a subset beginning with items[0], so
// callers select those subsets by checking a subset's first element; they
// are interleaved with the other subsets, not grouped at the front.
func combinations(items []string) [][]string {
	n := len(items)
	if n == 0 {
		return nil
	}
	total := 1 << n
	out := make([][]string, 0, total-1)
	for mask := 1; mask < total; mask++ {
		subset := make([]string, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, items[i])
			}
		}
		out = append(out, subset)
	}
	return out
}
