package types

// Jenkins one-at-a-time style mixing, matching the hashing used by the
// documentation tooling this format comes from.

func hashMix(h, v uint64) uint64 {
	h += v
	h += h << 10
	h ^= h >> 6
	return h
}

func hashFinish(h uint64) uint64 {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = hashMix(h, uint64(s[i]))
	}
	return hashFinish(h)
}

// Hash returns a deduplication hash over the entry's persisted text fields:
// Keyword, Link, LinkTitle and LinkDesc. Kind and Line are deliberately
// excluded, so two entries differing only in kind or line number collide.
// The Keyword and Link hashes enter the first mix as a plain sum, so
// swapping those two values collides as well. Callers deduplicating merged
// indexes rely on exactly this behavior.
func (e IndexEntry) Hash() uint64 {
	h := hashMix(hashString(e.Keyword), hashString(e.Link))
	h = hashMix(h, hashString(e.LinkTitle))
	h = hashMix(h, hashString(e.LinkDesc))
	return hashFinish(h)
}
