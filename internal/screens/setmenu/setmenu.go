// Package setmenu is the per-set hub: it launches the study modes and
// holds the set-scoped maintenance actions.
package setmenu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/learn"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/flashcards"
	"github.com/abhisek/flashdeck/internal/screens/learnmode"
	"github.com/abhisek/flashdeck/internal/screens/settings"
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// SetMenuScreen shows the study mode menu for one set.
type SetMenuScreen struct {
	set    *deck.Set
	repo   *deck.Repository
	kv     storage.KV
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*SetMenuScreen)(nil)
var _ screen.KeyHintProvider = (*SetMenuScreen)(nil)

// New creates the menu screen for a set.
func New(set *deck.Set, repo *deck.Repository, kv storage.KV) *SetMenuScreen {
	s := &SetMenuScreen{set: set, repo: repo, kv: kv}

	empty := len(set.Cards) == 0

	items := []components.MenuItem{
		{Label: "LEARN", Disabled: empty, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: learnmode.New(set, kv)}
			}
		}},
		{Label: "FLASHCARDS", Disabled: empty, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: flashcards.New(set, kv)}
			}
		}},
		{Label: "LEARN SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				cur := learn.LoadSettings(kv, set.ID)
				apply := func(ns learn.Settings) error {
					if len(ns.EnabledTypes()) == 0 {
						return learn.ErrNoEffectiveTypes
					}
					learn.SaveSettings(kv, set.ID, ns, nil)
					return nil
				}
				return router.PushScreenMsg{Screen: settings.New(cur, apply)}
			}
		}},
		{Label: "RESET LEARN SESSION", Action: func() tea.Cmd {
			store := learn.NewSessionStore(kv, nil)
			store.Clear(set.ID)
			s.notice = "Learn session cleared."
			return nil
		}},
		{Label: "BACK", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	}

	s.menu = components.NewMenu(items)
	return s
}

func (s *SetMenuScreen) Init() tea.Cmd {
	return nil
}

func (s *SetMenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetMenuScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render(s.set.Title)
	sections = append(sections, title)

	if s.set.Description != "" {
		sections = append(sections, theme.Subtitle.Width(width).Render(s.set.Description))
	}
	sections = append(sections,
		theme.Subtitle.Width(width).Render(fmt.Sprintf("%d cards", len(s.set.Cards))), "")

	if len(s.set.Cards) == 0 {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(
			"This set has no cards to study yet."))
	}

	menu := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.menu.View())
	sections = append(sections, menu)

	if s.notice != "" {
		sections = append(sections, "",
			theme.Hint.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (s *SetMenuScreen) Title() string {
	return s.set.Title
}

func (s *SetMenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
