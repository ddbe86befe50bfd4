package learn

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

// optionSeed derives a deterministic shuffle seed for one item's options.
// The same set, card and position always produce the same seed, so a
// rebuilt session shows options in the same visual order.
func optionSeed(setID, cardID string, index int) int64 {
	h := fnv.New64a()
	h.Write([]byte(setID))
	h.Write([]byte{'|'})
	h.Write([]byte(cardID))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(index)))
	return int64(h.Sum64())
}

// shuffleOptionsSeeded shuffles options in place with the given seed.
func shuffleOptionsSeeded(options []Option, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
}

// shuffleIDs shuffles item IDs in place, unseeded. Retry pools use this so
// each retry round truly randomizes.
func shuffleIDs(ids []string) {
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}
