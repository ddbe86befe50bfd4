// Package learnmode renders the adaptive learn session. All state changes
// go through the controller's Dispatch; this screen only translates key
// presses into actions and paints the committed state.
package learnmode

import (
	"errors"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/learn"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/settings"
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// LearnScreen drives one learn session for one set.
type LearnScreen struct {
	controller *learn.Controller

	opts   components.OptionList
	input  components.TextInput
	widget string // item+attempt the widgets were built for

	errMsg  string
	notice  string
	skipped bool // last answered position was a skip
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates the learn screen, resuming a persisted session when one
// exists. Construction errors are held and rendered; any key then backs out.
func New(set *deck.Set, kv storage.KV) *LearnScreen {
	l := &LearnScreen{}

	controller, err := learn.NewController(set.ID, set.Cards, kv, nil)
	if err != nil {
		l.errMsg = errorText(err)
		return l
	}
	l.controller = controller
	l.syncWidgets()
	return l
}

func (l *LearnScreen) Init() tea.Cmd {
	return nil
}

func (l *LearnScreen) Title() string {
	return "Learn"
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	if l.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if l.controller.Completion() != nil {
		c := l.controller.Completion()
		if c.Mastered {
			return []layout.KeyHint{
				{Key: "R", Description: "Start over"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry mistakes"},
			{Key: "R", Description: "Start over"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if l.controller.AwaitingContinue() {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}

	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if l.controller.CurrentType() == learn.TypeMultiSelect {
		hints = append([]layout.KeyHint{{Key: "Space", Description: "Toggle"}}, hints...)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Tab", Description: "Skip"},
		layout.KeyHint{Key: "Ctrl+S", Description: "Settings"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Non-key messages only matter to the text input (cursor blink).
		if l.activeWritten() {
			var cmd tea.Cmd
			l.input, cmd = l.input.Update(msg)
			return l, cmd
		}
		return l, nil
	}

	if l.errMsg != "" {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}

	key := kmsg.String()

	if l.controller.Completion() != nil {
		return l.handleCompletionKey(key)
	}

	if l.controller.AwaitingContinue() {
		switch key {
		case "enter", "space", " ":
			l.dispatch(learn.Continue{})
		case "esc":
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return l, nil
	}

	switch key {
	case "esc":
		// Session state is already persisted; just leave.
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab":
		l.dispatch(learn.Skip{})
		if l.controller.AwaitingContinue() {
			l.skipped = true
		}
		return l, nil
	case "ctrl+s":
		return l, l.openSettings()
	}

	return l.handleQuestionKey(msg, key)
}

// handleQuestionKey routes input to the active question widget.
func (l *LearnScreen) handleQuestionKey(msg tea.Msg, key string) (screen.Screen, tea.Cmd) {
	switch l.controller.CurrentType() {
	case learn.TypeMultipleChoice:
		var submitted bool
		l.opts, submitted = l.opts.Update(msg)
		if submitted {
			ids := l.opts.SelectedIDs()
			if len(ids) == 1 {
				l.dispatch(learn.SubmitChoice{OptionID: ids[0]})
			}
		}

	case learn.TypeMultiSelect:
		var submitted bool
		l.opts, submitted = l.opts.Update(msg)
		if submitted {
			l.dispatch(learn.SubmitMultiSelect{OptionIDs: l.opts.SelectedIDs()})
		}

	case learn.TypeWritten:
		if key == "enter" {
			l.dispatch(learn.SubmitWritten{Text: l.input.Value()})
			return l, nil
		}
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LearnScreen) handleCompletionKey(key string) (screen.Screen, tea.Cmd) {
	c := l.controller.Completion()
	switch key {
	case "enter":
		if !c.Mastered {
			l.dispatch(learn.RetryMistakes{})
		}
	case "r", "R":
		l.dispatch(learn.Restart{})
	case "esc":
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return l, nil
}

// dispatch applies an action and refreshes the widgets when the current
// position changed. Validation errors become an inline notice.
func (l *LearnScreen) dispatch(action learn.Action) {
	err := l.controller.Dispatch(action)
	switch {
	case err == nil:
		l.notice = ""
		l.skipped = false
	case errors.Is(err, learn.ErrEmptySelection):
		l.notice = "Select at least one option first."
		return
	case errors.Is(err, learn.ErrEmptyAnswer):
		l.notice = "Type an answer first."
		return
	case errors.Is(err, learn.ErrNoEffectiveTypes):
		l.notice = "At least one question type must stay enabled."
		return
	default:
		l.errMsg = errorText(err)
		return
	}

	// Submit/skip locks the option list for colored feedback.
	if l.controller.AwaitingContinue() {
		l.markSubmitted()
		return
	}

	// A reset pool can land on the same item and position as the stale
	// widget; drop the key so the widget is rebuilt unlocked.
	switch action.(type) {
	case learn.RetryMistakes, learn.Restart:
		l.widget = ""
	}
	l.syncWidgets()
}

// markSubmitted colors the just-answered option list.
func (l *LearnScreen) markSubmitted() {
	item := l.controller.CurrentItem()
	if item == nil {
		return
	}
	switch l.controller.CurrentType() {
	case learn.TypeMultipleChoice:
		if opt := item.CorrectOption(); opt != nil {
			l.opts.MarkSubmitted([]string{opt.OptionID})
		}
	case learn.TypeMultiSelect:
		l.opts.MarkSubmitted(item.CorrectOptionIDs)
	case learn.TypeWritten:
		l.input.Submit(l.controller.LastAnswerCorrect())
	}
}

// syncWidgets rebuilds the answer widgets for the current position.
func (l *LearnScreen) syncWidgets() {
	item := l.controller.CurrentItem()
	if item == nil {
		return
	}

	state := l.controller.State()
	key := item.ItemID + "#" + strconv.Itoa(state.AttemptNumber) + "#" + strconv.Itoa(state.CurrentIndex)
	if key == l.widget {
		return
	}
	l.widget = key

	switch l.controller.CurrentType() {
	case learn.TypeMultipleChoice, learn.TypeMultiSelect:
		choices := make([]components.Choice, 0, len(item.Options))
		for _, opt := range item.Options {
			choices = append(choices, components.Choice{ID: opt.OptionID, Label: opt.Label})
		}
		multi := l.controller.CurrentType() == learn.TypeMultiSelect
		l.opts = components.NewOptionList(item.Prompt, choices, multi)
	case learn.TypeWritten:
		l.input = components.NewTextInput("Type the definition...", 120)
	}
}

// activeWritten reports whether the written input currently has focus.
func (l *LearnScreen) activeWritten() bool {
	return l.errMsg == "" &&
		l.controller != nil &&
		l.controller.Completion() == nil &&
		!l.controller.AwaitingContinue() &&
		l.controller.CurrentType() == learn.TypeWritten
}

// openSettings pushes the settings editor wired to the live session.
func (l *LearnScreen) openSettings() tea.Cmd {
	return func() tea.Msg {
		apply := func(ns learn.Settings) error {
			if err := l.controller.Dispatch(learn.ApplySettings{Settings: ns}); err != nil {
				return err
			}
			// The current position's question type may have changed.
			l.widget = ""
			l.syncWidgets()
			return nil
		}
		return router.PushScreenMsg{
			Screen: settings.New(l.controller.Settings(), apply),
		}
	}
}

func errorText(err error) string {
	switch {
	case errors.Is(err, learn.ErrNoCards):
		return "This set has no cards to study."
	case errors.Is(err, learn.ErrNoEffectiveTypes):
		return "No question types are enabled for this set."
	default:
		return err.Error()
	}
}
