package questionbank

import "errors"

// Question is a single multiple-choice question.
// Correct is expected to equal one of Answers; a question where it does not
// can still be shown and evaluated, it just never grades as correct.
type Question struct {
	Text    string   `json:"question" yaml:"question"`
	Answers []string `json:"answers" yaml:"answers"`
	Correct string   `json:"correct" yaml:"correct"`
}

// CorrectListed reports whether Correct appears among Answers.
func (q Question) CorrectListed() bool {
	for _, a := range q.Answers {
		if a == q.Correct {
			return true
		}
	}
	return false
}

// Bank maps a subject name to its questions. Question order carries no
// meaning; selection is a uniform random draw.
type Bank map[string][]Question

// New creates an empty Bank.
func New() Bank {
	return make(Bank)
}

// AddQuestion appends a question to a subject, creating the subject if needed.
func (b Bank) AddQuestion(subject string, q Question) error {
	if subject == "" {
		return errors.New("subject cannot be empty")
	}
	if q.Text == "" {
		return errors.New("question text cannot be empty")
	}
	if len(q.Answers) < 2 {
		return errors.New("question needs at least two answer choices")
	}
	b[subject] = append(b[subject], q)
	return nil
}

// Questions returns the questions for a subject. A missing subject yields an
// empty slice, which callers treat as "no questions available".
func (b Bank) Questions(subject string) []Question {
	return b[subject]
}

// HasQuestions reports whether the subject has at least one question.
func (b Bank) HasQuestions(subject string) bool {
	return len(b[subject]) > 0
}

// Subjects returns all subject names that have at least one question.
func (b Bank) Subjects() []string {
	subjects := make([]string, 0, len(b))
	for s, qs := range b {
		if len(qs) > 0 {
			subjects = append(subjects, s)
		}
	}
	return subjects
}
