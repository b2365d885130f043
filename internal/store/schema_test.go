package store

import (
	"errors"
	"testing"
)

func validSetJSON() []byte {
	return []byte(`{
		"id": "ps-1",
		"title": "Macro basics",
		"items": [
			{"id": "q1", "question": "Demand slopes?", "options": ["Down", "Up"], "answer": "A", "topic": "macro", "level": "basic"}
		],
		"source": "generated"
	}`)
}

func TestValidateProblemSetAccepts(t *testing.T) {
	if err := ValidateProblemSet(validSetJSON()); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateProblemSetRejects(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", `{{{`},
		{"missing items", `{"id": "ps-1", "source": "generated"}`},
		{"empty items", `{"id": "ps-1", "items": [], "source": "generated"}`},
		{"item without question", `{"id": "ps-1", "items": [{"id": "q1", "answer": "A"}], "source": "generated"}`},
		{"item without answer", `{"id": "ps-1", "items": [{"id": "q1", "question": "x"}], "source": "generated"}`},
		{"bad topic", `{"id": "ps-1", "items": [{"id": "q1", "question": "x", "answer": "A", "topic": "sports"}], "source": "generated"}`},
		{"bad source", `{"id": "ps-1", "items": [{"id": "q1", "question": "x", "answer": "A"}], "source": "imported"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateProblemSet([]byte(c.payload))
			if err == nil {
				t.Fatal("expected rejection")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("expected ParseError, got %T: %v", err, err)
			}
		})
	}
}
