package api

import (
	"net/http"

	"github.com/lernapp/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type LoginRequest struct {
	Name string `json:"name"`
}

// QuestionView is a question as shown to the learner. The correct answer is
// deliberately absent; it only comes back with the answer feedback.
type QuestionView struct {
	Text    string   `json:"question"`
	Answers []string `json:"answers"`
}

type LoginResponse struct {
	SessionID string        `json:"session_id"`
	Name      string        `json:"name"`
	Points    int           `json:"points"`
	Subject   string        `json:"subject,omitempty"`
	Question  *QuestionView `json:"question,omitempty"`
}

type SelectSubjectResponse struct {
	Subject  string        `json:"subject"`
	Question *QuestionView `json:"question,omitempty"`
	Message  string        `json:"message,omitempty"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type SubmitAnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Points        int    `json:"points"`
}

type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
}

const noQuestionsMessage = "Für dieses Fach sind noch keine Fragen vorhanden."

func questionView(q questionbank.Question) *QuestionView {
	return &QuestionView{Text: q.Text, Answers: q.Answers}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.controller.Login(req.Name)
	if h.handleServiceError(w, err) {
		return
	}

	resp := LoginResponse{
		SessionID: result.SessionID,
		Name:      result.Name,
		Points:    result.Points,
		Subject:   result.Subject,
	}
	if result.HasQuestion {
		resp.Question = questionView(result.Question)
	}

	respondJSON(w, http.StatusOK, resp)
}

// POST /logout
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// GET /subjects
func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SubjectsResponse{Subjects: h.controller.Subjects()})
}

// POST /subjects/{subject}/select
func (h *Handler) selectSubject(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	q, ok, err := h.controller.SelectSubject(subject)
	if h.handleServiceError(w, err) {
		return
	}

	resp := SelectSubjectResponse{Subject: subject}
	if ok {
		resp.Question = questionView(q)
	} else {
		resp.Message = noQuestionsMessage
	}

	respondJSON(w, http.StatusOK, resp)
}

// POST /answers
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.controller.SubmitAnswer(req.Answer)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Correct:       result.Outcome.Correct,
		CorrectAnswer: result.Outcome.CorrectAnswer,
		Points:        result.Points,
	})
}
