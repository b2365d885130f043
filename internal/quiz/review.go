package quiz

import "fmt"

// ChoiceState is the display state of one option during review.
type ChoiceState int

const (
	// ChoiceNeutral: neither chosen by the learner nor the correct answer.
	ChoiceNeutral ChoiceState = iota

	// ChoiceSelectedCorrect: the learner picked it and it is the answer.
	ChoiceSelectedCorrect

	// ChoiceSelectedWrong: the learner picked it and it is not the answer.
	ChoiceSelectedWrong

	// ChoiceCorrectUnselected: the answer the learner did not pick.
	ChoiceCorrectUnselected
)

// OptionLabel maps a choice index to its display label: 0→"A", 1→"B",
// and so on. This mapping is the sole correlation between a stored
// answer string and a displayed option, so it must stay stable.
func OptionLabel(index int) string {
	if index < 0 || index >= 26 {
		return ""
	}
	return string(rune('A' + index))
}

// OptionIndex is the inverse of OptionLabel. Returns -1 for anything
// that is not a single letter A-Z.
func OptionIndex(label string) int {
	if len(label) != 1 || label[0] < 'A' || label[0] > 'Z' {
		return -1
	}
	return int(label[0] - 'A')
}

// ReviewChoice is one option of a reviewed multiple-choice item.
type ReviewChoice struct {
	Label string
	Text  string
	State ChoiceState
}

// ReviewItem joins a graded line with its originating problem for
// display. Problem is nil when the originating set is no longer staged
// (historical attempts reviewed after the set was replaced).
type ReviewItem struct {
	Number  int // 1-based display position
	Graded  QuizAttemptItem
	Problem *ProblemItem
	Choices []ReviewChoice // populated only for multiple choice
}

// FreeText reports whether the item has no options to highlight; the
// raw user answer is echoed with only the server's is_correct flag.
func (r ReviewItem) FreeText() bool {
	return len(r.Choices) == 0
}

// BuildReview projects a graded attempt plus the original problem set
// into per-item display states. It is purely a projection: correctness
// always comes from the server response, never recomputed here.
func BuildReview(attempt *QuizAttemptOut, set *ProblemSet) []ReviewItem {
	items := make([]ReviewItem, 0, len(attempt.Items))
	for i, graded := range attempt.Items {
		ri := ReviewItem{Number: i + 1, Graded: graded}

		var problem *ProblemItem
		if set != nil {
			problem = set.ItemByID(graded.QuestionID)
		}
		ri.Problem = problem

		if problem != nil && problem.IsMultipleChoice() {
			ri.Choices = make([]ReviewChoice, len(problem.Options))
			for j, text := range problem.Options {
				label := OptionLabel(j)
				ri.Choices[j] = ReviewChoice{
					Label: label,
					Text:  text,
					State: choiceState(label, graded),
				}
			}
		}

		items = append(items, ri)
	}
	return items
}

func choiceState(label string, graded QuizAttemptItem) ChoiceState {
	selected := graded.UserAnswer == label
	correct := graded.CorrectAnswer == label
	switch {
	case selected && correct:
		return ChoiceSelectedCorrect
	case selected:
		return ChoiceSelectedWrong
	case correct:
		return ChoiceCorrectUnselected
	default:
		return ChoiceNeutral
	}
}

// ScoreLine formats the attempt header shown above the review.
func ScoreLine(attempt *QuizAttemptOut) string {
	return fmt.Sprintf("%d%%  (%d/%d correct)", attempt.Score, attempt.Correct, attempt.Total)
}
