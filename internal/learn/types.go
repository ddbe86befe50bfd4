package learn

import "time"

// SessionSchemaVersion is bumped whenever the persisted session shape
// changes; a stored session with any other version is discarded on load.
const SessionSchemaVersion = "1"

// QuestionType identifies how a learn item is asked and answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeMultiSelect    QuestionType = "multi_select"
	TypeWritten        QuestionType = "written"
)

// typePriority is the canonical ordering used when intersecting enabled and
// available question types. The rotation cycles through types in this order.
var typePriority = []QuestionType{TypeMultipleChoice, TypeMultiSelect, TypeWritten}

// AvailableTypes returns the question types this build supports.
func AvailableTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeMultiSelect, TypeWritten}
}

// Outcome is the per-item result within the current mastery journey.
type Outcome string

const (
	OutcomeUnseen    Outcome = "unseen"
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
)

// isMistake reports whether the outcome puts an item into the retry pool.
func (o Outcome) isMistake() bool {
	return o == OutcomeIncorrect || o == OutcomeSkipped
}

// Option is one answer choice on a learn item.
type Option struct {
	// OptionID is unique within the item and stable across rebuilds.
	OptionID string `json:"optionId"`

	// Label is the display text, possibly truncated for rendering.
	Label string `json:"label"`

	// Value is the full untruncated answer text.
	Value string `json:"value"`

	// IsCorrect marks the single correct option.
	IsCorrect bool `json:"isCorrect"`
}

// Item is one quiz question derived from one card. Items are immutable
// after the session is built.
type Item struct {
	ItemID        string `json:"itemId"`
	CardID        string `json:"cardId"`
	Prompt        string `json:"prompt"`
	CorrectAnswer string `json:"correctAnswer"`

	// Options are pre-shuffled at build time with a deterministic seed so
	// a resumed session shows the same order.
	Options []Option `json:"options"`

	// CorrectOptionIDs is the exact set a multi-select answer must match.
	CorrectOptionIDs []string `json:"correctOptionIds"`
}

// CorrectOption returns the option flagged correct.
func (it *Item) CorrectOption() *Option {
	for i := range it.Options {
		if it.Options[i].IsCorrect {
			return &it.Options[i]
		}
	}
	return nil
}

// SessionState is the full persisted state of one learn session. It
// round-trips losslessly through JSON.
type SessionState struct {
	SchemaVersion string `json:"schemaVersion"`
	SetID         string `json:"setId"`

	// Items holds every item built for the session, in card order.
	Items []Item `json:"items"`

	// OutcomeByItemID maps item IDs to outcomes. Missing entries are unseen.
	OutcomeByItemID map[string]Outcome `json:"outcomeByItemId"`

	// PoolItemIDs is the current attempt's working set in play order.
	PoolItemIDs []string `json:"poolItemIds"`

	// CurrentIndex is the position within PoolItemIDs.
	CurrentIndex int `json:"currentIndex"`

	// AttemptNumber starts at 1 and increments on each retry round.
	AttemptNumber int `json:"attemptNumber"`

	// MaxProgressPercent is a monotonic high-water mark; the displayed
	// progress never regresses below it.
	MaxProgressPercent int `json:"maxProgressPercent"`

	// QuestionTypeRotation assigns a question type to each pool position.
	QuestionTypeRotation []QuestionType `json:"questionTypeRotation"`

	// LastTypeUsed records the type of the most recently completed position.
	LastTypeUsed QuestionType `json:"lastTypeUsed,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemByID returns the item with the given ID, or nil.
func (s *SessionState) ItemByID(itemID string) *Item {
	for i := range s.Items {
		if s.Items[i].ItemID == itemID {
			return &s.Items[i]
		}
	}
	return nil
}

// Outcome returns the recorded outcome for an item, OutcomeUnseen if none.
func (s *SessionState) Outcome(itemID string) Outcome {
	if o, ok := s.OutcomeByItemID[itemID]; ok {
		return o
	}
	return OutcomeUnseen
}

// AttemptComplete reports whether the current pool has been exhausted.
func (s *SessionState) AttemptComplete() bool {
	return s.CurrentIndex >= len(s.PoolItemIDs)
}

// MistakeItemIDs returns the IDs of items whose outcome is incorrect or
// skipped, over the full item set and in item order. Sticky-correct items
// never appear.
func (s *SessionState) MistakeItemIDs() []string {
	var ids []string
	for i := range s.Items {
		if s.Outcome(s.Items[i].ItemID).isMistake() {
			ids = append(ids, s.Items[i].ItemID)
		}
	}
	return ids
}
