// Package settings edits the per-set learn preferences. The screen works
// against a copy and applies on every toggle through a caller-supplied
// function, so a running session can veto changes that would leave it
// without a usable question type.
package settings

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/learn"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// ApplyFunc receives the candidate settings. Returning an error rejects
// the change; the screen keeps the previous values and shows a notice.
type ApplyFunc func(learn.Settings) error

type toggle struct {
	label string
	get   func(*learn.Settings) *bool
}

// SettingsScreen is the learn settings editor.
type SettingsScreen struct {
	current learn.Settings
	apply   ApplyFunc
	toggles []toggle
	cursor  int
	notice  string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings editor over the given starting values.
func New(current learn.Settings, apply ApplyFunc) *SettingsScreen {
	return &SettingsScreen{
		current: current,
		apply:   apply,
		toggles: []toggle{
			{"Multiple choice questions", func(s *learn.Settings) *bool { return &s.QuestionTypes.MultipleChoice }},
			{"Multi-select questions", func(s *learn.Settings) *bool { return &s.QuestionTypes.MultiSelect }},
			{"Written questions", func(s *learn.Settings) *bool { return &s.QuestionTypes.Written }},
			{"Shuffle questions", func(s *learn.Settings) *bool { return &s.Options.ShuffleQuestions }},
			{"Sound effects", func(s *learn.Settings) *bool { return &s.Options.SoundEffects }},
		},
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.notice = ""
	case "down", "j":
		if s.cursor < len(s.toggles)-1 {
			s.cursor++
		}
		s.notice = ""
	case "space", " ", "enter":
		s.flip()
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

// flip toggles the highlighted setting and offers the result to the apply
// function, rolling back on rejection.
func (s *SettingsScreen) flip() {
	candidate := s.current
	field := s.toggles[s.cursor].get(&candidate)
	*field = !*field

	if err := s.apply(candidate); err != nil {
		s.notice = "At least one question type must stay enabled."
		return
	}
	s.current = candidate
	s.notice = ""
}

func (s *SettingsScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Learn Settings"), "")

	var rows []string
	for i, t := range s.toggles {
		mark := "[ ]"
		if *t.get(&s.current) {
			mark = "[x]"
		}
		line := mark + " " + t.label
		if i == s.cursor {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}
	list := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
	sections = append(sections, list)

	if s.notice != "" {
		sections = append(sections, "",
			theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (s *SettingsScreen) Title() string {
	return "Learn Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}
