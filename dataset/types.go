package dataset

// GeneratorConfig describes the shape and value range of one dataset.
type GeneratorConfig struct {
	NumVectors int
	VectorSize int
	MinValue   int // inclusive
	MaxValue   int // inclusive
}
