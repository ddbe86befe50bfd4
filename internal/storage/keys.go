package storage

// Key namespaces. Every persisted record lives under a per-set key so that
// clearing one set's study state never touches another's.
const (
	prefixLearnSession  = "learn:session:"
	prefixLearnSettings = "learn:settings:"
	prefixFlashProgress = "flash:progress:"
	prefixDeckSet       = "deck:set:"

	// DeckIndexKey holds the JSON list of all set IDs.
	DeckIndexKey = "deck:index"
)

// LearnSessionKey returns the key for a set's persisted learn session.
func LearnSessionKey(setID string) string {
	return prefixLearnSession + setID
}

// LearnSettingsKey returns the key for a set's learn settings.
func LearnSettingsKey(setID string) string {
	return prefixLearnSettings + setID
}

// FlashProgressKey returns the key for a set's flashcards-mode progress.
func FlashProgressKey(setID string) string {
	return prefixFlashProgress + setID
}

// DeckSetKey returns the key for a stored card set.
func DeckSetKey(setID string) string {
	return prefixDeckSet + setID
}
