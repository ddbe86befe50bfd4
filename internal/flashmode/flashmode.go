// Package flashmode tracks simple know/still-learning progress for the
// flashcards study mode. Unlike learn mode there is no adaptive logic:
// cards are either marked known or still learning, nothing else.
package flashmode

import (
	"encoding/json"
	"log"

	"github.com/abhisek/flashdeck/internal/storage"
)

// SchemaVersion guards the persisted progress shape.
const SchemaVersion = 1

// Progress is the per-set flashcards progress record.
type Progress struct {
	SchemaVersion int      `json:"schemaVersion"`
	SetID         string   `json:"setId"`
	KnownCardIDs  []string `json:"knownCardIds"`
}

// Tracker persists know/learning toggles for one set.
type Tracker struct {
	kv       storage.KV
	setID    string
	progress Progress
}

// NewTracker loads the set's progress, starting empty on missing, corrupt
// or version-mismatched data.
func NewTracker(kv storage.KV, setID string) *Tracker {
	t := &Tracker{
		kv:       kv,
		setID:    setID,
		progress: Progress{SchemaVersion: SchemaVersion, SetID: setID},
	}

	raw, ok := kv.Get(storage.FlashProgressKey(setID))
	if !ok {
		return t
	}
	var p Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return t
	}
	if p.SchemaVersion != SchemaVersion || p.SetID != setID {
		return t
	}
	t.progress = p
	return t
}

// Known reports whether the card is marked known.
func (t *Tracker) Known(cardID string) bool {
	for _, id := range t.progress.KnownCardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}

// KnownCount returns how many cards are marked known.
func (t *Tracker) KnownCount() int {
	return len(t.progress.KnownCardIDs)
}

// MarkKnown marks a card known and persists.
func (t *Tracker) MarkKnown(cardID string) {
	if t.Known(cardID) {
		return
	}
	t.progress.KnownCardIDs = append(t.progress.KnownCardIDs, cardID)
	t.save()
}

// MarkLearning moves a card back to still-learning and persists.
func (t *Tracker) MarkLearning(cardID string) {
	kept := t.progress.KnownCardIDs[:0]
	for _, id := range t.progress.KnownCardIDs {
		if id != cardID {
			kept = append(kept, id)
		}
	}
	t.progress.KnownCardIDs = kept
	t.save()
}

// Reset clears all progress for the set.
func (t *Tracker) Reset() {
	t.progress.KnownCardIDs = nil
	if err := t.kv.Remove(storage.FlashProgressKey(t.setID)); err != nil {
		log.Printf("flashmode: reset progress for set %s: %v", t.setID, err)
	}
}

// save persists best-effort; a failed write only costs durability.
func (t *Tracker) save() {
	data, err := json.Marshal(t.progress)
	if err != nil {
		log.Printf("flashmode: marshal progress for set %s: %v", t.setID, err)
		return
	}
	if err := t.kv.Set(storage.FlashProgressKey(t.setID), string(data)); err != nil {
		log.Printf("flashmode: save progress for set %s: %v", t.setID, err)
	}
}
