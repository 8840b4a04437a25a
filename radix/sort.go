package radix

// radix is the bucket count each character-position pass uses.
const radix = 256

// SortKeyed stably sorts n records — where n = len(keys) — by their byte
// keys, using swap(i, j) to exchange the records backing keys[i] and
// keys[j] whenever the computed order requires it.
//
// table, if non-nil, translates every key byte before it is used to select
// a bucket (e.g. to collate case-insensitively); it does not alter the
// keys themselves.
func SortKeyed(keys [][]byte, swap func(i, j int), table *[256]byte) {
	n := len(keys)
	if n < 2 {
		return
	}

	maxLen := 0
	for _, k := range keys {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}
	if maxLen == 0 {
		return // every key is empty; input order is already the sorted order
	}

	lengthBuckets := make([][]int, maxLen+1)
	for i, k := range keys {
		l := len(k)
		lengthBuckets[l] = append(lengthBuckets[l], i)
	}

	counts := make([]int, radix+1)
	work := make([]int, 0, n)

	for l := maxLen; l >= 1; l-- {
		// A key of length l ties with a longer key on positions 0..l-1 only
		// when it is that key's prefix, and then it sorts first, so the
		// shorter group goes in front of the keys already in work.
		work = append(lengthBuckets[l], work...)

		for pos := l - 1; pos >= 0; pos-- {
			work = bucketPass(work, pos, keys, table, counts)
		}
	}

	order := make([]int, 0, n)
	order = append(order, lengthBuckets[0]...) // empty keys precede everything else
	order = append(order, work...)

	applyPermutation(order, swap)
}

// bucketPass runs one counting-sort pass over work, keyed on the byte at
// position pos of each record's key, and returns the re-bucketed order.
// It assumes every index in work has a key at least pos+1 bytes long.
func bucketPass(work []int, pos int, keys [][]byte, table *[256]byte, counts []int) []int {
	for i := range counts {
		counts[i] = 0
	}

	byteAt := make([]byte, len(work))
	for i, idx := range work {
		c := keys[idx][pos]
		if table != nil {
			c = table[c]
		}
		byteAt[i] = c
		counts[int(c)+1]++
	}

	for c := 0; c < radix; c++ {
		counts[c+1] += counts[c]
	}

	out := make([]int, len(work))
	for i, idx := range work {
		c := int(byteAt[i])
		out[counts[c]] = idx
		counts[c]++
	}

	return out
}

// applyPermutation rearranges the caller's n records so that position i
// ends up holding the record originally living at order[i]. It tracks,
// for every original index, which physical position currently holds it
// (cur) and, for every physical position, which original index currently
// sits there (loc), so each swap can be resolved in constant time — the
// cycle decomposition of order falls out of this bookkeeping without
// needing to materialize the cycles explicitly.
func applyPermutation(order []int, swap func(i, j int)) {
	n := len(order)
	cur := make([]int, n) // cur[originalIdx] = its current physical position
	loc := make([]int, n) // loc[position] = originalIdx currently there
	for i := 0; i < n; i++ {
		cur[i] = i
		loc[i] = i
	}

	for target := 0; target < n; target++ {
		want := order[target]
		src := cur[want]
		if src == target {
			continue
		}

		swap(target, src)

		moved := loc[target]
		loc[target], loc[src] = want, moved
		cur[want], cur[moved] = target, src
	}
}

// Sort stably sorts items by the byte key keyOf extracts from each one.
// It is the generic equivalent of SortKeyed for callers that have a plain
// slice rather than a pre-extracted key/swap pair.
func Sort[T any](items []T, keyOf func(T) []byte, table *[256]byte) {
	keys := make([][]byte, len(items))
	for i, it := range items {
		keys[i] = keyOf(it)
	}

	SortKeyed(keys, func(i, j int) {
		items[i], items[j] = items[j], items[i]
	}, table)
}
