package rng

// Generator is a source of random numbers. The deck shuffles through this
// interface so tests can substitute a deterministic source.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
