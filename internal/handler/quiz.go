package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/quiz"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/visibility"
)

// Session key holding the quiz engine id.
const sessionKeyQuizID = "quiz_id"

// quizSessions maps session-scoped ids to their quiz engines. Engines for
// expired sessions are evicted once idle.
type quizSessions struct {
	mu       sync.Mutex
	engines  map[string]*quizEntry
	idleTTL  time.Duration
	lastSwep time.Time
}

type quizEntry struct {
	engine   *quiz.Engine
	lastSeen time.Time
}

func newQuizSessions() *quizSessions {
	return &quizSessions{
		engines: make(map[string]*quizEntry),
		idleTTL: time.Hour,
	}
}

// get returns the engine for id, creating one on first use.
func (qs *quizSessions) get(id string) *quiz.Engine {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	now := time.Now()
	if now.Sub(qs.lastSwep) > qs.idleTTL {
		for k, e := range qs.engines {
			if now.Sub(e.lastSeen) > qs.idleTTL {
				delete(qs.engines, k)
			}
		}
		qs.lastSwep = now
	}

	entry, ok := qs.engines[id]
	if !ok {
		entry = &quizEntry{engine: quiz.NewEngine()}
		qs.engines[id] = entry
	}
	entry.lastSeen = now
	return entry.engine
}

// quizEngine resolves the caller's engine, minting a session id on first
// contact.
func (h *Handler) quizEngine(r *http.Request) *quiz.Engine {
	ctx := r.Context()
	id := h.sm.GetString(ctx, sessionKeyQuizID)
	if id == "" {
		id = uuid.NewString()
		h.sm.Put(ctx, sessionKeyQuizID, id)
	}
	return h.quizzes.get(id)
}

// QuizCategories handles GET /api/quiz/categories. Gated by the quiz
// section flag.
func (h *Handler) QuizCategories(w http.ResponseWriter, r *http.Request) {
	if !h.vis.Get(r.Context()).Visible(visibility.ExploreQuiz) {
		writeJSONSuccess(w, map[string]any{"visible": false})
		return
	}
	writeJSONSuccess(w, map[string]any{
		"visible":    true,
		"categories": quiz.Categories(),
	})
}

// QuizStart handles POST /api/quiz/start.
func (h *Handler) QuizStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"player_name"`
		Category   string `json:"category"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.vis.Get(r.Context()).Visible(visibility.ExploreQuiz) {
		writeJSONError(w, http.StatusForbidden, "The quiz is currently disabled")
		return
	}

	eng := h.quizEngine(r)
	if err := eng.Start(req.PlayerName, req.Category); err != nil {
		writeQuizError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{"state": eng.State()})
}

// QuizAnswer handles POST /api/quiz/answer. The first choice locks; repeat
// submissions are rejected without touching the score.
func (h *Handler) QuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Option int `json:"option"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	eng := h.quizEngine(r)
	correct, err := eng.Answer(req.Option)
	if err != nil {
		writeQuizError(w, err)
		return
	}
	writeJSONSuccess(w, map[string]any{
		"correct": correct,
		"state":   eng.State(),
	})
}

// QuizNext handles POST /api/quiz/next. Completing the last question
// persists the result.
func (h *Handler) QuizNext(w http.ResponseWriter, r *http.Request) {
	eng := h.quizEngine(r)
	if err := eng.Next(); err != nil {
		writeQuizError(w, err)
		return
	}

	if result, ok := eng.Result(); ok {
		h.persistQuizScore(r, result)
	}
	writeJSONSuccess(w, map[string]any{"state": eng.State()})
}

// QuizReset handles POST /api/quiz/reset.
func (h *Handler) QuizReset(w http.ResponseWriter, r *http.Request) {
	eng := h.quizEngine(r)
	eng.Reset()
	writeJSONSuccess(w, map[string]any{"state": eng.State()})
}

// QuizState handles GET /api/quiz/state.
func (h *Handler) QuizState(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, map[string]any{"state": h.quizEngine(r).State()})
}

// QuizScores handles GET /api/quiz/scores: recent results, newest first.
func (h *Handler) QuizScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.queries.ListQuizScores(r.Context(), 20)
	if err != nil {
		slog.Error("failed to list quiz scores", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load scores")
		return
	}
	if scores == nil {
		scores = []model.QuizScore{}
	}
	writeJSONSuccess(w, map[string]any{"scores": scores})
}

func (h *Handler) persistQuizScore(r *http.Request, result model.QuizScore) {
	ctx := r.Context()
	if _, err := h.queries.CreateQuizScore(ctx, store.CreateQuizScoreParams{
		PlayerName: result.PlayerName,
		Category:   result.Category,
		Score:      result.Score,
		Total:      result.Total,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		slog.Error("failed to persist quiz score", "error", err)
		return
	}
	if h.admin != nil {
		h.admin.RecordQuizScore(ctx, result)
	}
	if h.events != nil {
		_ = h.events.LogQuizEvent(ctx, model.EventLevelInfo, "Quiz completed", map[string]any{
			"player":   result.PlayerName,
			"category": result.Category,
			"score":    result.Score,
			"total":    result.Total,
		})
	}
}

// writeQuizError maps engine errors to HTTP statuses.
func writeQuizError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, quiz.ErrNotStarted):
		status = http.StatusConflict
	case errors.Is(err, quiz.ErrAlreadyStarted), errors.Is(err, quiz.ErrAnswerLocked):
		status = http.StatusConflict
	case errors.Is(err, quiz.ErrUnknownCategory):
		status = http.StatusNotFound
	}
	writeJSONError(w, status, err.Error())
}
