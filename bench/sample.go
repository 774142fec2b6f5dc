package bench

import "slices"

// Sample returns k elements of xs chosen uniformly at random without
// replacement, in random order. xs is not modified. If k exceeds len(xs) the
// whole of xs is returned, shuffled.
func Sample[T any](xs []T, k int, rand func() uint64) []T {
	out := slices.Clone(xs)
	k = min(k, len(out))
	// partial Fisher-Yates: out[:i] is the sample so far
	for i := 0; i < k; i++ {
		j := i + int(rand()%uint64(len(out)-i))
		out[i], out[j] = out[j], out[i]
	}
	return out[:k]
}

// Shuffle returns a random permutation of xs.
func Shuffle[T any](xs []T, rand func() uint64) []T {
	return Sample(xs, len(xs), rand)
}

// Seeded returns a deterministic xorshift source, for repeatable samples.
func Seeded(seed uint64) func() uint64 {
	x := seed | 1
	return func() uint64 {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		return x
	}
}
