package learnmode

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/learn"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

func (l *LearnScreen) View(width, height int) string {
	if l.errMsg != "" {
		return centered(width, height,
			theme.Incorrect.Render(l.errMsg)+"\n\n"+
				theme.Hint.Render("Press any key to go back"))
	}

	if c := l.controller.Completion(); c != nil {
		return l.renderCompletion(c, width, height)
	}

	if l.controller.AwaitingContinue() {
		return l.renderFeedback(width, height)
	}

	return l.renderQuestion(width, height)
}

// renderQuestion paints the progress header and the active question widget.
func (l *LearnScreen) renderQuestion(width, height int) string {
	state := l.controller.State()

	bar := components.NewProgressBar(
		"Progress",
		float64(l.controller.DisplayPercent())/100,
		true,
		min(width-8, 60),
	)
	position := theme.Subtitle.Render(fmt.Sprintf(
		"Question %d of %d  ·  Round %d",
		state.CurrentIndex+1, len(state.PoolItemIDs), state.AttemptNumber))

	var body string
	switch l.controller.CurrentType() {
	case learn.TypeWritten:
		item := l.controller.CurrentItem()
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Prompt)
		body = prompt + "\n\n" + l.input.View()
	default:
		body = l.opts.View()
	}

	sections := []string{bar.View(), position, "", body}
	if l.notice != "" {
		sections = append(sections, "", theme.Incorrect.Render(l.notice))
	}

	content := strings.Join(sections, "\n")
	return framed(content, width, height)
}

// renderFeedback shows the graded answer with the correct one on a miss.
func (l *LearnScreen) renderFeedback(width, height int) string {
	item := l.controller.CurrentItem()

	var verdict string
	switch {
	case l.controller.LastAnswerCorrect():
		verdict = theme.Correct.Render("Correct!")
	case l.skipped:
		verdict = theme.Subtitle.Render("Skipped")
	default:
		verdict = theme.Incorrect.Render("Not quite")
	}

	sections := []string{verdict, ""}

	// For choice questions the locked option list already shows the
	// answer in color; written and skipped items spell it out.
	switch {
	case l.skipped, l.controller.CurrentType() == learn.TypeWritten:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Prompt)
		sections = append(sections, prompt)
		if l.controller.CurrentType() == learn.TypeWritten && !l.skipped {
			sections = append(sections, "", l.input.View())
		}
		if !l.controller.LastAnswerCorrect() {
			sections = append(sections, "",
				theme.Body.Render("Answer: ")+theme.Correct.Render(item.CorrectAnswer))
		}
	default:
		sections = append(sections, l.opts.View())
	}

	sections = append(sections, "", theme.Hint.Render("Press Enter to continue"))

	content := strings.Join(sections, "\n")
	return framed(content, width, height)
}

// renderCompletion paints the end-of-round summary.
func (l *LearnScreen) renderCompletion(c *learn.Completion, width, height int) string {
	p := l.controller.Progress()
	total := len(l.controller.State().Items)

	var sections []string
	if c.Mastered {
		sections = append(sections,
			theme.Correct.Render("Set mastered!"),
			"",
			theme.Body.Render(fmt.Sprintf("All %d cards answered correctly.", total)),
			"",
			theme.Hint.Render("R starts over from scratch"),
		)
	} else {
		sections = append(sections,
			theme.Title.Render("Round complete"),
			"",
			theme.Body.Render(fmt.Sprintf("%d of %d correct so far.", p.Correct, total)),
			theme.Body.Render(fmt.Sprintf("%d to retry.", c.MistakeCount)),
			"",
			theme.Hint.Render("Enter retries your mistakes, R starts over"),
		)
	}

	bar := components.NewProgressBar(
		"Progress",
		float64(l.controller.DisplayPercent())/100,
		true,
		min(width-8, 60),
	)
	sections = append([]string{bar.View(), ""}, sections...)

	content := strings.Join(sections, "\n")
	return centered(width, height, content)
}

func framed(content string, width, height int) string {
	card := theme.Card.Width(min(width-4, 76)).Render(content)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
