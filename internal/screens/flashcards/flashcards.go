// Package flashcards is the simple flip-through study mode. Cards are
// browsed in order; marking a card known or still-learning persists
// immediately through the tracker.
package flashcards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/flashmode"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// FlashScreen flips through a set's cards.
type FlashScreen struct {
	set     *deck.Set
	tracker *flashmode.Tracker
	index   int
	flipped bool
}

var _ screen.Screen = (*FlashScreen)(nil)
var _ screen.KeyHintProvider = (*FlashScreen)(nil)

// New creates the flashcards screen, resuming any persisted known marks.
func New(set *deck.Set, kv storage.KV) *FlashScreen {
	return &FlashScreen{
		set:     set,
		tracker: flashmode.NewTracker(kv, set.ID),
	}
}

func (f *FlashScreen) Init() tea.Cmd {
	return nil
}

func (f *FlashScreen) Title() string {
	return "Flashcards"
}

func (f *FlashScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←/→", Description: "Prev/Next"},
		{Key: "Y", Description: "Know it"},
		{Key: "N", Description: "Still learning"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FlashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	card := f.current()

	switch kmsg.String() {
	case "space", " ", "enter":
		f.flipped = !f.flipped
	case "right", "l":
		if f.index < len(f.set.Cards)-1 {
			f.index++
			f.flipped = false
		}
	case "left", "h":
		if f.index > 0 {
			f.index--
			f.flipped = false
		}
	case "y", "Y":
		if card != nil {
			f.tracker.MarkKnown(card.ID)
			f.next()
		}
	case "n", "N":
		if card != nil {
			f.tracker.MarkLearning(card.ID)
			f.next()
		}
	case "r":
		f.tracker.Reset()
	case "esc", "q":
		return f, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return f, nil
}

func (f *FlashScreen) next() {
	if f.index < len(f.set.Cards)-1 {
		f.index++
	}
	f.flipped = false
}

func (f *FlashScreen) current() *deck.Card {
	if f.index < 0 || f.index >= len(f.set.Cards) {
		return nil
	}
	return &f.set.Cards[f.index]
}

func (f *FlashScreen) View(width, height int) string {
	card := f.current()
	if card == nil {
		return centered(width, height, theme.Hint.Render("This set has no cards."))
	}

	total := len(f.set.Cards)
	bar := components.NewProgressBar(
		"Known",
		float64(f.tracker.KnownCount())/float64(total),
		true,
		min(width-8, 60),
	)

	position := theme.Subtitle.Render(fmt.Sprintf("Card %d of %d", f.index+1, total))

	side := "TERM"
	text := card.Term
	if f.flipped {
		side = "DEFINITION"
		text = card.Definition
	}

	known := ""
	if f.tracker.Known(card.ID) {
		known = theme.Correct.Render("  ✓ known")
	}

	face := theme.Hint.Render(side) + known + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(text)

	cardBox := theme.Card.
		Width(min(width-8, 64)).
		Align(lipgloss.Center).
		Render(face)

	content := strings.Join([]string{bar.View(), position, "", cardBox}, "\n")
	return centered(width, height, content)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
