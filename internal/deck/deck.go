package deck

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card is a single term/definition pair within a set.
type Card struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Set is a named collection of cards.
type Set struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Cards       []Card    `json:"cards"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewSet creates a set with a fresh ID and timestamps.
func NewSet(title string, cards []Card) *Set {
	now := time.Now()
	return &Set{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(title),
		Cards:     cards,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCard creates a card with a fresh ID.
func NewCard(term, definition string) Card {
	return Card{
		ID:         uuid.New().String(),
		Term:       term,
		Definition: definition,
	}
}
