package learnmode

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/storage"
)

func testSet(n int) *deck.Set {
	cards := make([]deck.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, deck.Card{
			ID:         string(rune('a' + i)),
			Term:       "term " + string(rune('a'+i)),
			Definition: "definition " + string(rune('a'+i)),
		})
	}
	return &deck.Set{ID: "set-1", Title: "Test Set", Cards: cards}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestEmptySetShowsErrorAndBacksOut(t *testing.T) {
	l := New(&deck.Set{ID: "empty", Title: "Empty"}, storage.NewMemory())

	if l.errMsg == "" {
		t.Fatal("expected an error message for an empty set")
	}

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command to leave the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on key press in error state")
	}
}

func TestAnswerCorrectThenContinueMasters(t *testing.T) {
	kv := storage.NewMemory()
	l := New(testSet(1), kv)

	if l.errMsg != "" {
		t.Fatalf("unexpected error: %s", l.errMsg)
	}

	// Single card, single option: enter submits the correct choice.
	l.Update(specialKey(tea.KeyEnter))
	if !l.controller.AwaitingContinue() {
		t.Fatal("expected feedback after submit")
	}
	if !l.controller.LastAnswerCorrect() {
		t.Error("only option should be the correct one")
	}

	l.Update(specialKey(tea.KeyEnter))
	c := l.controller.Completion()
	if c == nil || !c.Mastered {
		t.Fatalf("expected mastered completion, got %+v", c)
	}
}

func TestSkipFlowsIntoRetryRound(t *testing.T) {
	kv := storage.NewMemory()
	l := New(testSet(2), kv)

	for i := 0; i < 2; i++ {
		l.Update(specialKey(tea.KeyTab))
		if !l.skipped {
			t.Fatal("expected skip feedback")
		}
		l.Update(specialKey(tea.KeyEnter))
	}

	c := l.controller.Completion()
	if c == nil {
		t.Fatal("expected completion after exhausting the pool")
	}
	if c.Mastered {
		t.Error("skipped items should not count as mastered")
	}
	if c.MistakeCount != 2 {
		t.Errorf("MistakeCount = %d, want 2", c.MistakeCount)
	}

	// Enter on the completion view starts the retry round.
	l.Update(specialKey(tea.KeyEnter))
	if l.controller.Completion() != nil {
		t.Fatal("expected a new round after retry")
	}
	if got := len(l.controller.State().PoolItemIDs); got != 2 {
		t.Errorf("retry pool size = %d, want 2", got)
	}
	if l.controller.State().AttemptNumber != 2 {
		t.Errorf("AttemptNumber = %d, want 2", l.controller.State().AttemptNumber)
	}
}

func TestRestartFromCompletion(t *testing.T) {
	kv := storage.NewMemory()
	l := New(testSet(1), kv)

	l.Update(specialKey(tea.KeyEnter))
	l.Update(specialKey(tea.KeyEnter))
	if l.controller.Completion() == nil {
		t.Fatal("expected completion")
	}

	l.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	state := l.controller.State()
	if l.controller.Completion() != nil {
		t.Fatal("expected a fresh round after restart")
	}
	if state.AttemptNumber != 1 || state.CurrentIndex != 0 {
		t.Errorf("expected fresh state, got attempt %d index %d",
			state.AttemptNumber, state.CurrentIndex)
	}
	if l.opts.Submitted {
		t.Error("restart should rebuild the answer widget unlocked")
	}
}

func TestEscLeavesWithSessionPersisted(t *testing.T) {
	kv := storage.NewMemory()
	l := New(testSet(2), kv)

	l.Update(specialKey(tea.KeyTab))
	_, cmd := l.Update(specialKey(tea.KeyEscape))
	_ = cmd

	if _, ok := kv.Get(storage.LearnSessionKey("set-1")); !ok {
		t.Error("expected session to remain persisted after leaving")
	}
}

func TestResumePicksUpPersistedSession(t *testing.T) {
	kv := storage.NewMemory()
	set := testSet(3)

	l := New(set, kv)
	l.Update(specialKey(tea.KeyTab))   // skip first
	l.Update(specialKey(tea.KeyEnter)) // continue

	l2 := New(set, kv)
	if l2.errMsg != "" {
		t.Fatalf("unexpected error on resume: %s", l2.errMsg)
	}
	if got := l2.controller.State().CurrentIndex; got != 1 {
		t.Errorf("resumed CurrentIndex = %d, want 1", got)
	}
}

func TestSettingsShortcutPushesEditor(t *testing.T) {
	kv := storage.NewMemory()
	l := New(testSet(2), kv)

	_, cmd := l.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg for the settings editor")
	}
}
