package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jaemin/econquiz/internal/quiz"
	"github.com/jaemin/econquiz/internal/ui/theme"
)

// ChoiceList is a multiple-choice answer selector. Unlike a graded
// widget it never knows the correct answer; it only tracks which
// option letter the user has picked.
type ChoiceList struct {
	Options  []string
	Selected int
	Picked   int // index of the confirmed choice, -1 when none
}

// NewChoiceList creates a selector over the given options. picked
// restores a previously recorded answer label ("" for none).
func NewChoiceList(options []string, picked string) ChoiceList {
	return ChoiceList{
		Options:  options,
		Selected: 0,
		Picked:   quiz.OptionIndex(picked),
	}
}

// Update handles keyboard navigation. Pressing enter or an option
// letter confirms a choice; the confirmed label is returned through
// PickedLabel.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Picked = c.Selected
		return c, true
	default:
		if idx := quiz.OptionIndex(strings.ToUpper(key)); idx >= 0 && idx < len(c.Options) {
			c.Selected = idx
			c.Picked = idx
			return c, true
		}
	}

	return c, false
}

// PickedLabel returns the confirmed option letter, or "" when nothing
// has been picked yet.
func (c ChoiceList) PickedLabel() string {
	if c.Picked < 0 || c.Picked >= len(c.Options) {
		return ""
	}
	return quiz.OptionLabel(c.Picked)
}

// View renders the selector.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		marker := " "
		if i == c.Picked {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, quiz.OptionLabel(i), opt)

		switch {
		case i == c.Picked:
			s += theme.Selected.Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// RenderReviewChoices renders graded options with the three-way
// highlighting used on the review screen: the user's wrong pick in
// red, the correct answer in green, everything else dimmed.
func RenderReviewChoices(choices []quiz.ReviewChoice) string {
	var s string
	for _, ch := range choices {
		line := fmt.Sprintf("  %s)  %s", ch.Label, ch.Text)
		switch ch.State {
		case quiz.ChoiceSelectedCorrect:
			s += theme.Correct.Render("✓"+line) + "\n"
		case quiz.ChoiceSelectedWrong:
			s += theme.Incorrect.Render("✗"+line) + "\n"
		case quiz.ChoiceCorrectUnselected:
			s += theme.Missed.Render(" "+line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+line) + "\n"
		}
	}
	return s
}
