package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Choice is one selectable entry in an OptionList.
type Choice struct {
	ID    string
	Label string
}

// OptionList is an answer selector. With Multi set it behaves as a
// checkbox list (space toggles, enter submits); otherwise enter both
// chooses and submits the highlighted entry.
type OptionList struct {
	Prompt    string
	Choices   []Choice
	Multi     bool
	Cursor    int
	Submitted bool

	checked    map[string]bool
	correctIDs map[string]bool
}

// NewOptionList creates an answer selector over the given choices.
func NewOptionList(prompt string, choices []Choice, multi bool) OptionList {
	return OptionList{
		Prompt:  prompt,
		Choices: choices,
		Multi:   multi,
		checked: make(map[string]bool),
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. It reports whether
// the user submitted an answer on this message.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if o.Submitted {
		return o, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, false
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Choices)-1 {
			o.Cursor++
		}
	case "space", " ":
		if o.Multi && o.Cursor < len(o.Choices) {
			id := o.Choices[o.Cursor].ID
			o.checked[id] = !o.checked[id]
		}
	case "enter":
		if !o.Multi && o.Cursor < len(o.Choices) {
			o.checked = map[string]bool{o.Choices[o.Cursor].ID: true}
		}
		return o, true
	}

	return o, false
}

// SelectedIDs returns the IDs the user has checked, in choice order.
func (o OptionList) SelectedIDs() []string {
	var ids []string
	for _, c := range o.Choices {
		if o.checked[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// MarkSubmitted locks the list and records which choices were correct,
// so the view can color the result.
func (o *OptionList) MarkSubmitted(correctIDs []string) {
	o.Submitted = true
	o.correctIDs = make(map[string]bool, len(correctIDs))
	for _, id := range correctIDs {
		o.correctIDs[id] = true
	}
}

// View renders the option list.
func (o OptionList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(o.Prompt) + "\n\n"

	for i, c := range o.Choices {
		prefix := "  "
		if i == o.Cursor && !o.Submitted {
			prefix = "▸ "
		}

		marker := ""
		if o.Multi {
			if o.checked[c.ID] {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%s", prefix, marker, c.Label)

		switch {
		case o.Submitted && o.correctIDs[c.ID]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.Submitted && o.checked[c.ID]:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
