package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/screen"
)

// fakeScreen records lifecycle calls so tests can assert routing behavior.
type fakeScreen struct {
	name     string
	inits    int
	lastMsg  tea.Msg
	updates  int
	viewedAt [2]int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(width, height int) string {
	f.viewedAt = [2]int{width, height}
	return f.name
}

func (f *fakeScreen) Title() string { return f.name }

func TestRouter_PushInitsAndActivates(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	set := &fakeScreen{name: "set"}
	r.Push(set)

	if got := r.Depth(); got != 2 {
		t.Errorf("Depth = %d, want 2", got)
	}
	if r.Active() != screen.Screen(set) {
		t.Errorf("Active = %s, want set", r.Active().Title())
	}
	if set.inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", set.inits)
	}
}

func TestRouter_PopReturnsToPrevious(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	r.Push(&fakeScreen{name: "set"})

	r.Pop()

	if got := r.Depth(); got != 1 {
		t.Errorf("Depth = %d, want 1", got)
	}
	if r.Active().Title() != "home" {
		t.Errorf("Active = %s, want home", r.Active().Title())
	}
}

func TestRouter_PopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Pop()

	if got := r.Depth(); got != 1 {
		t.Errorf("Depth = %d after pop at bottom, want 1", got)
	}
}

// Replace backs the learn flow's restart: the finished session screen
// swaps for a fresh one without growing the stack, so Esc still returns
// to the set menu underneath.
func TestRouter_ReplaceSwapsInPlace(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "learn"})

	fresh := &fakeScreen{name: "learn"}
	r.Replace(fresh)

	if got := r.Depth(); got != 2 {
		t.Errorf("Depth = %d after replace, want 2", got)
	}
	if r.Active() != screen.Screen(fresh) {
		t.Error("Active should be the replacement screen")
	}
	if fresh.inits != 1 {
		t.Errorf("replacement Init ran %d times, want 1", fresh.inits)
	}
}

func TestRouter_NavigationMessages(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	set := &fakeScreen{name: "set"}
	r.Update(PushScreenMsg{Screen: set})
	if r.Active().Title() != "set" || set.inits != 1 {
		t.Fatalf("PushScreenMsg: active=%s inits=%d", r.Active().Title(), set.inits)
	}

	learn := &fakeScreen{name: "learn"}
	r.Update(ReplaceScreenMsg{Screen: learn})
	if r.Active().Title() != "learn" || r.Depth() != 2 {
		t.Fatalf("ReplaceScreenMsg: active=%s depth=%d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("PopScreenMsg: active = %s, want home", r.Active().Title())
	}
}

func TestRouter_ForwardsToActiveScreenOnly(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	learn := &fakeScreen{name: "learn"}
	r.Push(learn)

	msg := tea.KeyPressMsg{Code: 'x', Text: "x"}
	r.Update(msg)

	if learn.updates != 1 {
		t.Errorf("active screen updates = %d, want 1", learn.updates)
	}
	if home.updates != 0 {
		t.Errorf("covered screen updates = %d, want 0", home.updates)
	}
	if learn.lastMsg != tea.Msg(msg) {
		t.Error("active screen should receive the forwarded message")
	}
}

func TestRouter_ViewRendersActiveAtSize(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	learn := &fakeScreen{name: "learn"}
	r.Push(learn)

	if got := r.View(80, 24); got != "learn" {
		t.Errorf("View = %q, want the active screen's body", got)
	}
	if learn.viewedAt != [2]int{80, 24} {
		t.Errorf("View sized %v, want [80 24]", learn.viewedAt)
	}
}
