package bench

// Range is a half-open index interval [Start, End) over the dataset,
// assigned to exactly one worker.
type Range struct {
	Start int
	End   int
}

// Size returns the number of vectors in the range.
func (r Range) Size() int {
	return r.End - r.Start
}
