// Package shuffle provides a cheap, deterministic shuffle for building varied test data.
// It is not random in any useful sense; the same input always gives the same order.
package shuffle

// Seeded shuffles s in place, using seed to pick the order.
func Seeded[T any](s []T, seed uint64) {
	r := seed
	for i := len(s) - 1; i >= 1; i-- {
		j := r % uint64(i+1)
		s[i], s[j] = s[j], s[i]
		r = r*6364793005 + 1
	}
}

// Shuffle shuffles s in place seeded by its length, and returns it.
func Shuffle[T any](s []T) []T {
	Seeded(s, uint64(len(s)))
	return s
}
