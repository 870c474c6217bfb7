// Package quiz holds the question-selection and answer-evaluation state
// machine for the active session.
package quiz

import (
	"math/rand"

	"github.com/lernapp/backend/internal/domain/questionbank"
)

// State of the engine.
type State int

const (
	// StateIdle: no subject chosen yet.
	StateIdle State = iota
	// StateNoQuestions: a subject was chosen but has no questions. This is a
	// presentable state, not an error.
	StateNoQuestions
	// StateAwaitingAnswer: a question is shown, no answer submitted yet.
	StateAwaitingAnswer
	// StateAnswered: feedback is shown, waiting for the next draw.
	StateAnswered
)

// Outcome is the result of evaluating a submitted answer.
type Outcome struct {
	Correct       bool
	CorrectAnswer string
}

// Engine draws questions and evaluates answers. It is stateless across
// questions except for the one currently active, and it knows nothing about
// delays — advancing on a timer is the caller's job.
type Engine struct {
	bank     questionbank.Bank
	state    State
	subject  string
	question questionbank.Question
}

func NewEngine(bank questionbank.Bank) *Engine {
	return &Engine{bank: bank, state: StateIdle}
}

// SelectSubject draws one question uniformly at random from the subject.
// Each call is an independent draw; repeats are allowed. A subject without
// questions moves the engine to StateNoQuestions and reports ok=false.
func (e *Engine) SelectSubject(subject string) (questionbank.Question, bool) {
	e.subject = subject

	qs := e.bank.Questions(subject)
	if len(qs) == 0 {
		e.state = StateNoQuestions
		e.question = questionbank.Question{}
		return questionbank.Question{}, false
	}

	e.question = qs[rand.Intn(len(qs))]
	e.state = StateAwaitingAnswer
	return e.question, true
}

// SubmitAnswer evaluates choice against the active question by exact string
// equality. It only acts in StateAwaitingAnswer; in any other state it is a
// no-op and reports ok=false, which absorbs double submissions. A question
// whose correct answer is not among its choices simply never evaluates as
// correct.
func (e *Engine) SubmitAnswer(choice string) (Outcome, bool) {
	if e.state != StateAwaitingAnswer {
		return Outcome{}, false
	}

	e.state = StateAnswered
	return Outcome{
		Correct:       choice == e.question.Correct,
		CorrectAnswer: e.question.Correct,
	}, true
}

// Advance discards the answered question and draws the next one for the
// current subject. Valid only from StateAnswered; otherwise a no-op.
func (e *Engine) Advance() (questionbank.Question, bool) {
	if e.state != StateAnswered {
		return questionbank.Question{}, false
	}
	return e.SelectSubject(e.subject)
}

// Reset returns the engine to StateIdle with no subject.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.subject = ""
	e.question = questionbank.Question{}
}

func (e *Engine) State() State { return e.state }

// Subject returns the currently selected subject, empty in StateIdle.
func (e *Engine) Subject() string { return e.subject }

// Current returns the active question, ok=false when there is none.
func (e *Engine) Current() (questionbank.Question, bool) {
	if e.state != StateAwaitingAnswer && e.state != StateAnswered {
		return questionbank.Question{}, false
	}
	return e.question, true
}

// Subjects lists the subjects that can actually be practiced.
func (e *Engine) Subjects() []string {
	return e.bank.Subjects()
}
