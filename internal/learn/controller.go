package learn

import (
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/storage"
)

// continueDebounce ignores a Continue arriving this soon after the previous
// one, so a double key press can't advance two positions.
const continueDebounce = 300 * time.Millisecond

// Action is a state transition request handled by Controller.Dispatch.
// Every mutation of session state flows through one of these; the UI layer
// never touches the state directly.
type Action interface{ isAction() }

// SubmitChoice answers a multiple-choice question with one option.
type SubmitChoice struct{ OptionID string }

// SubmitMultiSelect answers a multi-select question with a set of options.
type SubmitMultiSelect struct{ OptionIDs []string }

// SubmitWritten answers a written question with typed text.
type SubmitWritten struct{ Text string }

// Skip marks the current item skipped and shows its answer.
type Skip struct{}

// Continue advances past the feedback for the current item.
type Continue struct{}

// RetryMistakes starts a new attempt over the incorrect and skipped items.
type RetryMistakes struct{}

// Restart clears all persisted session state and rebuilds from scratch.
type Restart struct{}

// ApplySettings replaces the session's settings mid-flight.
type ApplySettings struct{ Settings Settings }

func (SubmitChoice) isAction()      {}
func (SubmitMultiSelect) isAction() {}
func (SubmitWritten) isAction()     {}
func (Skip) isAction()              {}
func (Continue) isAction()          {}
func (RetryMistakes) isAction()     {}
func (Restart) isAction()           {}
func (ApplySettings) isAction()     {}

// Completion classifies a finished attempt.
type Completion struct {
	// Mastered is true when no item is incorrect or skipped.
	Mastered bool

	// MistakeCount counts items needing a retry, over the full item set.
	MistakeCount int
}

// Controller orchestrates one learn session for one set: it owns the
// session state, applies actions atomically and persists after every
// mutation, so a reload at any point resumes at the last committed state.
type Controller struct {
	setID     string
	cards     []deck.Card
	kv        storage.KV
	store     *SessionStore
	logger    Logger
	state     *SessionState
	settings  Settings
	effective []QuestionType

	// now is injectable so tests control the debounce window.
	now          func() time.Time
	lastContinue time.Time

	answered    bool
	lastCorrect bool
}

// NewController resumes a persisted session for the set or builds a fresh
// one. Returns ErrNoCards for an empty card list and ErrNoEffectiveTypes
// when the stored settings leave no usable question type; neither creates
// any session state.
func NewController(setID string, cards []deck.Card, kv storage.KV, logger Logger) (*Controller, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	settings := LoadSettings(kv, setID)
	effective := EffectiveTypes(settings.EnabledTypes(), AvailableTypes())
	if len(effective) == 0 {
		return nil, ErrNoEffectiveTypes
	}

	store := NewSessionStore(kv, logger)
	c := &Controller{
		setID:     setID,
		cards:     cards,
		kv:        kv,
		store:     store,
		logger:    logger,
		settings:  settings,
		effective: effective,
		now:       time.Now,
	}

	state := store.Load(setID, cards)
	if state == nil {
		var err error
		state, err = c.buildFresh()
		if err != nil {
			return nil, err
		}
	}
	c.state = state

	// A resumed session from before a settings change may carry a stale
	// rotation: wrong length, or types the user has since disabled.
	// Visited positions keep their recorded types either way.
	if len(state.QuestionTypeRotation) != len(state.PoolItemIDs) {
		state.QuestionTypeRotation = GenerateRotation(effective, len(state.PoolItemIDs))
	} else if !rotationWithin(state.QuestionTypeRotation[state.CurrentIndex:], effective) {
		state.QuestionTypeRotation = RegenerateRemaining(
			state.QuestionTypeRotation, effective, state.CurrentIndex, len(state.PoolItemIDs))
	}

	store.Save(state)
	return c, nil
}

// buildFresh builds a brand new session honoring the shuffle setting.
func (c *Controller) buildFresh() (*SessionState, error) {
	state, err := BuildSession(c.setID, c.cards)
	if err != nil {
		return nil, err
	}
	if c.settings.Options.ShuffleQuestions {
		shuffleIDs(state.PoolItemIDs)
	}
	state.QuestionTypeRotation = GenerateRotation(c.effective, len(state.PoolItemIDs))
	return state, nil
}

// State exposes the session state to renderers. Treat it as read-only;
// mutations go through Dispatch.
func (c *Controller) State() *SessionState {
	return c.state
}

// Settings returns the active settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// CurrentItem returns the item at the current pool position, nil when the
// attempt is complete.
func (c *Controller) CurrentItem() *Item {
	if c.state.AttemptComplete() {
		return nil
	}
	return c.state.ItemByID(c.state.PoolItemIDs[c.state.CurrentIndex])
}

// CurrentType returns the question type for the current pool position.
func (c *Controller) CurrentType() QuestionType {
	return TypeAt(c.state.QuestionTypeRotation, c.effective, c.state.CurrentIndex)
}

// AwaitingContinue reports whether feedback for an answer is on screen.
func (c *Controller) AwaitingContinue() bool {
	return c.answered
}

// LastAnswerCorrect reports whether the most recent graded answer was right.
func (c *Controller) LastAnswerCorrect() bool {
	return c.lastCorrect
}

// Progress returns the aggregate outcome counts.
func (c *Controller) Progress() Progress {
	return ComputeProgress(c.state)
}

// DisplayPercent returns the monotonic progress percentage for the UI.
func (c *Controller) DisplayPercent() int {
	return DisplayPercent(c.state)
}

// Completion classifies the session once the current attempt's pool is
// exhausted; nil while the attempt is still in progress.
func (c *Controller) Completion() *Completion {
	if !c.state.AttemptComplete() {
		return nil
	}
	mistakes := len(c.state.MistakeItemIDs())
	return &Completion{
		Mastered:     mistakes == 0,
		MistakeCount: mistakes,
	}
}

// Dispatch applies one action as a synchronous, atomic transition. State is
// persisted before Dispatch returns, never after, so the caller renders
// only committed state. Validation errors (ErrEmptySelection,
// ErrEmptyAnswer, ErrNoEffectiveTypes) leave the state untouched.
func (c *Controller) Dispatch(action Action) error {
	switch a := action.(type) {
	case SubmitChoice:
		return c.submit(func(item *Item) (bool, error) {
			return CheckChoice(item, a.OptionID), nil
		})
	case SubmitMultiSelect:
		return c.submit(func(item *Item) (bool, error) {
			return CheckMultiSelect(item, a.OptionIDs)
		})
	case SubmitWritten:
		return c.submit(func(item *Item) (bool, error) {
			return CheckWritten(item, a.Text)
		})
	case Skip:
		return c.skip()
	case Continue:
		return c.advance()
	case RetryMistakes:
		return c.retryMistakes()
	case Restart:
		return c.restart()
	case ApplySettings:
		return c.applySettings(a.Settings)
	}
	return nil
}

// submit grades the current item and records the outcome. Ignored when the
// attempt is complete or feedback is already showing.
func (c *Controller) submit(check func(*Item) (bool, error)) error {
	item := c.CurrentItem()
	if item == nil || c.answered {
		return nil
	}

	correct, err := check(item)
	if err != nil {
		return err
	}

	outcome := OutcomeIncorrect
	if correct {
		outcome = OutcomeCorrect
	}
	// The recorded outcome may differ from the grade: an already-correct
	// item stays correct. Feedback still reflects the actual grade.
	RecordOutcome(c.state, item.ItemID, outcome)

	c.answered = true
	c.lastCorrect = correct
	// A fresh answer opens a fresh feedback screen; the debounce only
	// guards repeat Continues on the same one.
	c.lastContinue = time.Time{}
	c.touch()
	c.store.Save(c.state)
	return nil
}

func (c *Controller) skip() error {
	item := c.CurrentItem()
	if item == nil || c.answered {
		return nil
	}

	RecordOutcome(c.state, item.ItemID, OutcomeSkipped)
	c.answered = true
	c.lastCorrect = false
	c.lastContinue = time.Time{}
	c.touch()
	c.store.Save(c.state)
	return nil
}

// advance moves to the next pool position after feedback. Rapid duplicate
// Continues inside the debounce window are dropped.
func (c *Controller) advance() error {
	if !c.answered {
		return nil
	}
	now := c.now()
	if !c.lastContinue.IsZero() && now.Sub(c.lastContinue) < continueDebounce {
		return nil
	}
	c.lastContinue = now

	c.state.LastTypeUsed = c.CurrentType()
	c.state.CurrentIndex++
	c.answered = false
	c.touch()
	c.store.Save(c.state)
	return nil
}

// retryMistakes builds the next attempt's pool from exactly the incorrect
// and skipped items, freshly shuffled. No-op unless the attempt is complete
// and there is something to retry.
func (c *Controller) retryMistakes() error {
	if !c.state.AttemptComplete() {
		return nil
	}
	mistakes := c.state.MistakeItemIDs()
	if len(mistakes) == 0 {
		return nil
	}

	shuffleIDs(mistakes)
	c.state.PoolItemIDs = mistakes
	c.state.CurrentIndex = 0
	c.state.AttemptNumber++
	c.state.QuestionTypeRotation = GenerateRotation(c.effective, len(mistakes))
	c.answered = false
	c.touch()
	c.store.Save(c.state)
	return nil
}

// restart clears the persisted session and rebuilds from scratch.
func (c *Controller) restart() error {
	c.store.Clear(c.setID)

	state, err := c.buildFresh()
	if err != nil {
		return err
	}
	c.state = state
	c.answered = false
	c.lastCorrect = false
	c.store.Save(c.state)
	return nil
}

// applySettings validates and adopts new settings. The rotation is
// regenerated for the remaining positions only; visited positions keep
// their recorded types.
func (c *Controller) applySettings(s Settings) error {
	effective := EffectiveTypes(s.EnabledTypes(), AvailableTypes())
	if len(effective) == 0 {
		return ErrNoEffectiveTypes
	}

	c.settings = s
	c.effective = effective
	SaveSettings(c.kv, c.setID, s, c.logger)

	keep := c.state.CurrentIndex
	if c.answered {
		keep++
	}
	c.state.QuestionTypeRotation = RegenerateRemaining(
		c.state.QuestionTypeRotation, effective, keep, len(c.state.PoolItemIDs))
	c.touch()
	c.store.Save(c.state)
	return nil
}

func (c *Controller) touch() {
	c.state.UpdatedAt = c.now()
}
