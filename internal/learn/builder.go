package learn

import (
	"strings"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
)

const (
	// maxOptions caps the option count per item.
	maxOptions = 4

	// maxLabelRunes caps option display text; Value keeps the full text.
	maxLabelRunes = 80

	emptyTermPlaceholder       = "(empty term)"
	emptyDefinitionPlaceholder = "(empty definition)"
)

// BuildSession builds a fresh SessionState from a set's cards: one item per
// card in card order, each with a deterministically pre-shuffled option set.
// Returns ErrNoCards for an empty card list; the caller must treat that as
// a distinct empty-set condition, not a build failure.
func BuildSession(setID string, cards []deck.Card) (*SessionState, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	items := make([]Item, 0, len(cards))
	poolIDs := make([]string, 0, len(cards))
	for i := range cards {
		item := buildItem(setID, cards, i)
		items = append(items, item)
		poolIDs = append(poolIDs, item.ItemID)
	}

	now := time.Now()
	return &SessionState{
		SchemaVersion:   SessionSchemaVersion,
		SetID:           setID,
		Items:           items,
		OutcomeByItemID: make(map[string]Outcome),
		PoolItemIDs:     poolIDs,
		CurrentIndex:    0,
		AttemptNumber:   1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// buildItem builds the item for the card at position index.
func buildItem(setID string, cards []deck.Card, index int) Item {
	card := cards[index]

	prompt := strings.TrimSpace(card.Term)
	if prompt == "" {
		prompt = emptyTermPlaceholder
	}
	answer := strings.TrimSpace(card.Definition)
	if answer == "" {
		answer = emptyDefinitionPlaceholder
	}

	itemID := "item:" + card.ID

	correct := Option{
		OptionID:  "opt:" + card.ID,
		Label:     truncateLabel(answer),
		Value:     answer,
		IsCorrect: true,
	}
	options := []Option{correct}
	seen := map[string]bool{normalizeText(answer): true}

	// Distractors come from the other cards' definitions in original order,
	// skipping any whose normalized text duplicates a chosen label.
	optionCount := min(maxOptions, len(cards))
	for _, other := range cards {
		if len(options) >= optionCount {
			break
		}
		if other.ID == card.ID {
			continue
		}
		text := strings.TrimSpace(other.Definition)
		if text == "" {
			continue
		}
		norm := normalizeText(text)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		options = append(options, Option{
			OptionID: "opt:" + other.ID,
			Label:    truncateLabel(text),
			Value:    text,
		})
	}

	shuffleOptionsSeeded(options, optionSeed(setID, card.ID, index))

	return Item{
		ItemID:           itemID,
		CardID:           card.ID,
		Prompt:           prompt,
		CorrectAnswer:    answer,
		Options:          options,
		CorrectOptionIDs: []string{correct.OptionID},
	}
}

func truncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) <= maxLabelRunes {
		return s
	}
	return string(runes[:maxLabelRunes-1]) + "…"
}
