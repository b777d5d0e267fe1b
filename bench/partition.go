package bench

// PartitionRanges splits n items into contiguous ranges whose sizes differ
// by at most one. The first n mod workers ranges take the extra item, so
// boundaries depend only on (n, workers), never on timing.
func PartitionRanges(n, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	perWorker := n / workers
	remaining := n % workers

	ranges := make([]Range, workers)
	start := 0
	for i := range ranges {
		size := perWorker
		if i < remaining {
			size++
		}
		ranges[i] = Range{Start: start, End: start + size}
		start += size
	}

	return ranges
}
