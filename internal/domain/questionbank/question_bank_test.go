package questionbank_test

import (
	"sort"
	"testing"

	"github.com/lernapp/backend/internal/domain/questionbank"
)

func TestAddQuestion(t *testing.T) {
	bank := questionbank.New()

	err := bank.AddQuestion("mathe", questionbank.Question{
		Text:    "2+2?",
		Answers: []string{"3", "4"},
		Correct: "4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qs := bank.Questions("mathe")
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].Text != "2+2?" {
		t.Errorf("expected text %q, got %q", "2+2?", qs[0].Text)
	}
}

func TestAddQuestion_Invalid(t *testing.T) {
	bank := questionbank.New()

	cases := []struct {
		name    string
		subject string
		q       questionbank.Question
	}{
		{"empty subject", "", questionbank.Question{Text: "x", Answers: []string{"a", "b"}, Correct: "a"}},
		{"empty text", "mathe", questionbank.Question{Answers: []string{"a", "b"}, Correct: "a"}},
		{"one answer", "mathe", questionbank.Question{Text: "x", Answers: []string{"a"}, Correct: "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := bank.AddQuestion(tc.subject, tc.q); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if bank.HasQuestions("mathe") {
		t.Error("expected no questions after failed adds")
	}
}

func TestQuestions_MissingSubject(t *testing.T) {
	bank := questionbank.New()

	if qs := bank.Questions("englisch"); len(qs) != 0 {
		t.Errorf("expected no questions for missing subject, got %d", len(qs))
	}
	if bank.HasQuestions("englisch") {
		t.Error("expected HasQuestions to be false for missing subject")
	}
}

func TestSubjects(t *testing.T) {
	bank := questionbank.Bank{
		"mathe":   {{Text: "2+2?", Answers: []string{"3", "4"}, Correct: "4"}},
		"deutsch": {{Text: "Artikel von Haus?", Answers: []string{"der", "das"}, Correct: "das"}},
		"leer":    {},
	}

	subjects := bank.Subjects()
	sort.Strings(subjects)

	want := []string{"deutsch", "mathe"}
	if len(subjects) != len(want) {
		t.Fatalf("expected %d subjects, got %d", len(want), len(subjects))
	}
	for i := range want {
		if subjects[i] != want[i] {
			t.Errorf("expected subject %q, got %q", want[i], subjects[i])
		}
	}
}

func TestCorrectListed(t *testing.T) {
	ok := questionbank.Question{Text: "2+2?", Answers: []string{"3", "4"}, Correct: "4"}
	if !ok.CorrectListed() {
		t.Error("expected CorrectListed to be true")
	}

	broken := questionbank.Question{Text: "2+2?", Answers: []string{"3", "5"}, Correct: "4"}
	if broken.CorrectListed() {
		t.Error("expected CorrectListed to be false")
	}
}
