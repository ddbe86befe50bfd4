package learn

import (
	"encoding/json"
	"log"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/storage"
)

// Logger receives best-effort persistence failures. Saving is never allowed
// to interrupt the study flow, so errors are logged instead of returned.
type Logger interface {
	Printf(format string, v ...any)
}

type stdLogger struct{}

func (stdLogger) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// SessionStore persists learn sessions in the KV surface, one record per set.
type SessionStore struct {
	kv     storage.KV
	logger Logger
}

// NewSessionStore creates a SessionStore. A nil logger falls back to the
// standard library logger.
func NewSessionStore(kv storage.KV, logger Logger) *SessionStore {
	if logger == nil {
		logger = stdLogger{}
	}
	return &SessionStore{kv: kv, logger: logger}
}

// Save writes the session synchronously. Storage failures are logged and
// swallowed: the in-memory session keeps working, only durability is lost.
func (ss *SessionStore) Save(state *SessionState) {
	data, err := json.Marshal(state)
	if err != nil {
		ss.logger.Printf("learn: marshal session for set %s: %v", state.SetID, err)
		return
	}
	if err := ss.kv.Set(storage.LearnSessionKey(state.SetID), string(data)); err != nil {
		ss.logger.Printf("learn: save session for set %s: %v", state.SetID, err)
	}
}

// Load returns the persisted session for a set, or nil when no usable
// session exists and a fresh build is needed. A session is unusable when
// the record is missing or unparseable, the schema version or set ID
// doesn't match, or the stored item count differs from the current card
// count (the card set changed since the session was saved).
func (ss *SessionStore) Load(setID string, cards []deck.Card) *SessionState {
	raw, ok := ss.kv.Get(storage.LearnSessionKey(setID))
	if !ok {
		return nil
	}

	var state SessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		ss.logger.Printf("learn: discarding corrupt session for set %s: %v", setID, err)
		return nil
	}

	if state.SchemaVersion != SessionSchemaVersion {
		return nil
	}
	if state.SetID != setID {
		return nil
	}
	if len(state.Items) != len(cards) {
		return nil
	}
	return &state
}

// Clear removes the persisted session for a set ("restart from scratch").
func (ss *SessionStore) Clear(setID string) {
	if err := ss.kv.Remove(storage.LearnSessionKey(setID)); err != nil {
		ss.logger.Printf("learn: clear session for set %s: %v", setID, err)
	}
}
