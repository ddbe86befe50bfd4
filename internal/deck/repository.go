package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/flashdeck/internal/storage"
)

// ErrSetNotFound is returned when no set exists under the requested ID.
var ErrSetNotFound = errors.New("deck: set not found")

// Repository stores card sets as JSON blobs in the KV surface, one key per
// set plus an index key listing all set IDs.
type Repository struct {
	kv storage.KV
}

// NewRepository creates a Repository over the given KV store.
func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

// Save persists the set and adds it to the index if new.
func (r *Repository) Save(set *Set) error {
	set.UpdatedAt = time.Now()

	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal set %s: %w", set.ID, err)
	}
	if err := r.kv.Set(storage.DeckSetKey(set.ID), string(data)); err != nil {
		return fmt.Errorf("save set %s: %w", set.ID, err)
	}

	ids := r.index()
	for _, id := range ids {
		if id == set.ID {
			return nil
		}
	}
	return r.writeIndex(append(ids, set.ID))
}

// Get returns the set stored under id, or ErrSetNotFound.
func (r *Repository) Get(id string) (*Set, error) {
	raw, ok := r.kv.Get(storage.DeckSetKey(id))
	if !ok {
		return nil, ErrSetNotFound
	}
	var set Set
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		// A corrupt record reads the same as a missing one.
		return nil, ErrSetNotFound
	}
	return &set, nil
}

// GetCards returns the ordered card list for a set. A missing set is an
// error; an existing set with zero cards is a valid empty result the caller
// must surface as its own condition before starting any study mode.
func (r *Repository) GetCards(setID string) ([]Card, error) {
	set, err := r.Get(setID)
	if err != nil {
		return nil, err
	}
	return set.Cards, nil
}

// List returns all stored sets in index order, skipping unreadable records.
func (r *Repository) List() []*Set {
	var sets []*Set
	for _, id := range r.index() {
		set, err := r.Get(id)
		if err != nil {
			continue
		}
		sets = append(sets, set)
	}
	return sets
}

// Delete removes the set and its index entry. Deleting a missing set is a no-op.
func (r *Repository) Delete(id string) error {
	if err := r.kv.Remove(storage.DeckSetKey(id)); err != nil {
		return fmt.Errorf("delete set %s: %w", id, err)
	}

	ids := r.index()
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return r.writeIndex(kept)
}

// index returns the stored set ID list, empty on missing or corrupt data.
func (r *Repository) index() []string {
	raw, ok := r.kv.Get(storage.DeckIndexKey)
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

func (r *Repository) writeIndex(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := r.kv.Set(storage.DeckIndexKey, string(data)); err != nil {
		return fmt.Errorf("save index: %w", err)
	}
	return nil
}
