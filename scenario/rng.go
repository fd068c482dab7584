package scenario

import "math/rand"

// defaultSeed is used when callers pass Seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
// The returned generator is not safe for concurrent use.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// intIn returns a uniform integer in [r.Min, r.Max].
func intIn(rng *rand.Rand, r Range) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
