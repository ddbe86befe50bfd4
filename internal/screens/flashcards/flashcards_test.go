package flashcards

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/storage"
)

func twoCardSet() *deck.Set {
	return &deck.Set{
		ID:    "set-1",
		Title: "Test",
		Cards: []deck.Card{
			{ID: "c1", Term: "bonjour", Definition: "hello"},
			{ID: "c2", Term: "merci", Definition: "thank you"},
		},
	}
}

func TestFlipShowsDefinition(t *testing.T) {
	f := New(twoCardSet(), storage.NewMemory())

	view := f.View(80, 24)
	if !strings.Contains(view, "bonjour") {
		t.Error("expected term on the front")
	}

	f.Update(tea.KeyPressMsg{Code: ' '})
	view = f.View(80, 24)
	if !strings.Contains(view, "hello") {
		t.Error("expected definition after flip")
	}
}

func TestMarkKnownAdvancesAndPersists(t *testing.T) {
	kv := storage.NewMemory()
	f := New(twoCardSet(), kv)

	f.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})

	if f.index != 1 {
		t.Errorf("index = %d, want 1 after marking known", f.index)
	}
	if !f.tracker.Known("c1") {
		t.Error("expected c1 marked known")
	}

	// A fresh screen over the same store sees the mark.
	f2 := New(twoCardSet(), kv)
	if !f2.tracker.Known("c1") {
		t.Error("expected known mark to persist")
	}
}

func TestNavigationResetsFlip(t *testing.T) {
	f := New(twoCardSet(), storage.NewMemory())

	f.Update(tea.KeyPressMsg{Code: ' '})
	f.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	if f.index != 1 {
		t.Errorf("index = %d, want 1", f.index)
	}
	if f.flipped {
		t.Error("moving to another card should show its front")
	}
}

func TestMarkLearningClearsKnown(t *testing.T) {
	kv := storage.NewMemory()
	f := New(twoCardSet(), kv)

	f.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	f.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	f.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})

	if f.tracker.Known("c1") {
		t.Error("expected c1 back to still-learning")
	}
}
