package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/setmenu"
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// HomeScreen lists the stored card sets.
type HomeScreen struct {
	repo *deck.Repository
	kv   storage.KV
	menu components.Menu
	sets []*deck.Set
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen over the stored sets.
func New(repo *deck.Repository, kv storage.KV) *HomeScreen {
	h := &HomeScreen{repo: repo, kv: kv}
	h.reload()
	return h
}

// reload rebuilds the menu from the repository.
func (h *HomeScreen) reload() {
	h.sets = h.repo.List()

	items := make([]components.MenuItem, 0, len(h.sets)+1)
	for _, set := range h.sets {
		set := set
		label := fmt.Sprintf("%s  (%d cards)", set.Title, len(set.Cards))
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setmenu.New(set, h.repo, h.kv)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "QUIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("Flashdeck")
	subtitle := theme.Subtitle.Width(width).Render("Pick a set to study")
	sections = append(sections, title, subtitle, "")

	if len(h.sets) == 0 {
		empty := theme.Hint.Width(width).Align(lipgloss.Center).Render(
			"No sets yet. Import one with:  flashdeck import <file>")
		sections = append(sections, empty)
	} else {
		menu := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View())
		sections = append(sections, menu)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
	}
}
