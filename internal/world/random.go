package world

import (
	"hash/fnv"
	"math/rand"
)

// DefaultSeed is used when a world is constructed without an explicit seed.
const DefaultSeed = "world"

// DeterministicSeedValue hashes a root seed and a label into a non-zero
// source seed so independent subsystems draw from independent streams.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewDeterministicRNG builds a seeded RNG for the given root seed and label.
func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}
