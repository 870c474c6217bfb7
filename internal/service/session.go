// internal/service/session.go
package service

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lernapp/backend/internal/domain/progress"
	"github.com/lernapp/backend/internal/domain/questionbank"
	"github.com/lernapp/backend/internal/id"
	"github.com/lernapp/backend/internal/quiz"
	"github.com/lernapp/backend/internal/repository"
	"github.com/lernapp/backend/internal/scheduler"
)

var (
	ErrNoActiveSession   = errors.New("no active session")
	ErrNoPendingQuestion = errors.New("no question awaiting an answer")
)

// Config holds the controller's policy knobs.
type Config struct {
	// DefaultSubject is selected once right after login. Empty disables the
	// auto-select.
	DefaultSubject string
	// AdvanceDelay is how long feedback stays on screen before the next
	// question is drawn.
	AdvanceDelay time.Duration
}

// LoginResult is everything the caller needs to render after a login.
type LoginResult struct {
	SessionID   string
	Name        string
	Points      int
	Subject     string
	Question    questionbank.Question
	HasQuestion bool
}

// AnswerResult is the feedback for one submitted answer.
type AnswerResult struct {
	Outcome quiz.Outcome
	Points  int
}

// SessionController composes the progress repository and the quiz engine
// into the user-facing operations. It is the only component that talks to
// both, and the only owner of the auto-advance timer: at most one advance is
// scheduled at any time, and a submission cancels the previous one before
// scheduling its own.
type SessionController struct {
	repo   *repository.ProgressRepository
	logger *slog.Logger
	cfg    Config
	sched  scheduler.Scheduler

	mu            sync.Mutex
	engine        *quiz.Engine
	sessionID     string
	userName      string
	cancelAdvance scheduler.CancelFunc
}

func NewSessionController(repo *repository.ProgressRepository, engine *quiz.Engine, sched scheduler.Scheduler, cfg Config, logger *slog.Logger) *SessionController {
	return &SessionController{
		repo:   repo,
		engine: engine,
		sched:  sched,
		cfg:    cfg,
		logger: logger,
	}
}

// Login starts a session for the trimmed name, creating the user when it is
// unknown. Any prior session state is discarded. When a default subject is
// configured the first question is drawn immediately.
func (c *SessionController) Login(rawName string) (LoginResult, error) {
	name := strings.TrimSpace(rawName)
	record, err := c.repo.EnsureUser(name)
	if err != nil {
		return LoginResult{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessionID = id.GenerateID()
	c.userName = name
	c.engine.Reset()

	result := LoginResult{
		SessionID: c.sessionID,
		Name:      name,
		Points:    record.Points,
	}

	if c.cfg.DefaultSubject != "" {
		q, ok := c.engine.SelectSubject(c.cfg.DefaultSubject)
		result.Subject = c.cfg.DefaultSubject
		result.Question = q
		result.HasQuestion = ok
	}

	c.logger.Info("session started", "session_id", c.sessionID, "user", name)
	return result, nil
}

// SelectSubject switches the active session to a subject and draws a
// question. ok=false means the subject has no questions, which the caller
// renders as a message, not an error.
func (c *SessionController) SelectSubject(subject string) (questionbank.Question, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return questionbank.Question{}, false, ErrNoActiveSession
	}

	q, ok := c.engine.SelectSubject(subject)
	return q, ok, nil
}

// SubmitAnswer evaluates the choice, awards a point on a correct answer, and
// schedules the auto-advance. A submission while no question is awaiting an
// answer (double click, stale client) is rejected without touching any state.
func (c *SessionController) SubmitAnswer(choice string) (AnswerResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return AnswerResult{}, ErrNoActiveSession
	}

	outcome, ok := c.engine.SubmitAnswer(choice)
	if !ok {
		return AnswerResult{}, ErrNoPendingQuestion
	}

	record, err := c.repo.Get(c.userName)
	if outcome.Correct {
		record, err = c.repo.Award(c.userName, 1)
	}
	if err != nil {
		// The controller ensured the user at login; this is a misuse signal,
		// not a reason to lose the evaluation.
		c.logger.Error("award failed", "user", c.userName, "error", err)
		return AnswerResult{Outcome: outcome}, err
	}

	if c.cancelAdvance != nil {
		c.cancelAdvance()
	}
	sid := c.sessionID
	c.cancelAdvance = c.sched.Schedule(c.cfg.AdvanceDelay, func() { c.advance(sid) })

	return AnswerResult{Outcome: outcome, Points: record.Points}, nil
}

// advance is the deferred transition behind the post-answer delay. It
// re-checks the session under the lock: a timer that outlives its session
// (logout, re-login) must do nothing.
func (c *SessionController) advance(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID != sessionID {
		return
	}

	if _, ok := c.engine.Advance(); !ok {
		return
	}
	c.logger.Debug("advanced to next question", "session_id", sessionID, "subject", c.engine.Subject())
}

// Rename moves the active user's record to the trimmed new name.
func (c *SessionController) Rename(rawName string) (progress.UserProgress, error) {
	name := strings.TrimSpace(rawName)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return progress.UserProgress{}, ErrNoActiveSession
	}

	record, err := c.repo.Rename(c.userName, name)
	if err != nil {
		return progress.UserProgress{}, err
	}

	c.userName = name
	return record, nil
}

// Logout clears the session. Persisted progress is untouched, and a pending
// advance timer is left to fire into the void — advance's session check turns
// it into a no-op.
func (c *SessionController) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return
	}

	c.logger.Info("session ended", "session_id", c.sessionID, "user", c.userName)
	c.sessionID = ""
	c.userName = ""
	c.engine.Reset()
}

// Profile returns the active user's name and current record.
func (c *SessionController) Profile() (string, progress.UserProgress, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return "", progress.UserProgress{}, ErrNoActiveSession
	}

	record, err := c.repo.Get(c.userName)
	if err != nil {
		return "", progress.UserProgress{}, err
	}
	return c.userName, record, nil
}

// Subjects lists the subjects that have questions.
func (c *SessionController) Subjects() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Subjects()
}

// CurrentQuestion returns the question the session is showing right now.
func (c *SessionController) CurrentQuestion() (questionbank.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return questionbank.Question{}, false
	}
	return c.engine.Current()
}
