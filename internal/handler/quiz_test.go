package handler

import (
	"net/http"
	"testing"
)

func startQuiz(t *testing.T, client *http.Client, baseURL string) map[string]any {
	t.Helper()
	status, resp := postJSON(t, client, baseURL+"/api/quiz/start", map[string]any{
		"player_name": "Keerthana",
		"category":    "festivals",
	})
	if status != http.StatusOK {
		t.Fatalf("start quiz: status %d, resp %v", status, resp)
	}
	return resp["state"].(map[string]any)
}

func TestQuizFlow_StartToCompletion(t *testing.T) {
	srv, client := newTestServer(t)

	state := startQuiz(t, client, srv.URL)
	if state["phase"] != "inProgress" {
		t.Fatalf("expected inProgress, got %v", state["phase"])
	}
	if state["total"] != float64(3) {
		t.Fatalf("expected 3 questions, got %v", state["total"])
	}
	q := state["question"].(map[string]any)
	if q["correct_answer"] != float64(-1) {
		t.Errorf("correct answer must be hidden before the lock, got %v", q["correct_answer"])
	}
	if q["explanation"] != "" {
		t.Errorf("explanation must be hidden before the lock, got %v", q["explanation"])
	}

	// Answer all three questions, always picking option 0.
	for i := 0; i < 3; i++ {
		status, resp := postJSON(t, client, srv.URL+"/api/quiz/answer", map[string]any{"option": 0})
		if status != http.StatusOK {
			t.Fatalf("answer %d: status %d, resp %v", i, status, resp)
		}
		st := resp["state"].(map[string]any)
		qq := st["question"].(map[string]any)
		if qq["correct_answer"] == float64(-1) {
			t.Error("correct answer must be revealed after the lock")
		}

		status, resp = postJSON(t, client, srv.URL+"/api/quiz/next", nil)
		if status != http.StatusOK {
			t.Fatalf("next %d: status %d, resp %v", i, status, resp)
		}
		state = resp["state"].(map[string]any)
	}

	if state["phase"] != "completed" {
		t.Fatalf("expected completed, got %v", state["phase"])
	}

	// The completed run is on the scoreboard.
	_, resp := getJSON(t, client, srv.URL+"/api/quiz/scores")
	scores := resp["scores"].([]any)
	if len(scores) != 1 {
		t.Fatalf("expected 1 persisted score, got %d", len(scores))
	}
	s := scores[0].(map[string]any)
	if s["player_name"] != "Keerthana" || s["total"] != float64(3) {
		t.Errorf("unexpected persisted score: %v", s)
	}
}

func TestQuizAnswer_FirstClickLocks(t *testing.T) {
	srv, client := newTestServer(t)
	startQuiz(t, client, srv.URL)

	status, resp := postJSON(t, client, srv.URL+"/api/quiz/answer", map[string]any{"option": 0})
	if status != http.StatusOK {
		t.Fatalf("first answer: status %d", status)
	}
	first := resp["state"].(map[string]any)["score"]

	status, _ = postJSON(t, client, srv.URL+"/api/quiz/answer", map[string]any{"option": 1})
	if status != http.StatusConflict {
		t.Errorf("repeat answer: expected 409, got %d", status)
	}

	_, resp = getJSON(t, client, srv.URL+"/api/quiz/state")
	if got := resp["state"].(map[string]any)["score"]; got != first {
		t.Errorf("score changed after locked answer: %v -> %v", first, got)
	}
}

func TestQuizStart_Validation(t *testing.T) {
	srv, client := newTestServer(t)

	status, _ := postJSON(t, client, srv.URL+"/api/quiz/start", map[string]any{
		"player_name": "", "category": "festivals",
	})
	if status != http.StatusBadRequest {
		t.Errorf("empty name: expected 400, got %d", status)
	}

	status, _ = postJSON(t, client, srv.URL+"/api/quiz/start", map[string]any{
		"player_name": "Keerthana", "category": "cooking",
	})
	if status != http.StatusNotFound {
		t.Errorf("unknown category: expected 404, got %d", status)
	}
}

func TestQuizNext_RequiresAnswer(t *testing.T) {
	srv, client := newTestServer(t)
	startQuiz(t, client, srv.URL)

	status, _ := postJSON(t, client, srv.URL+"/api/quiz/next", nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 before answering, got %d", status)
	}
}

func TestQuizReset_ReturnsToIdle(t *testing.T) {
	srv, client := newTestServer(t)
	startQuiz(t, client, srv.URL)

	status, resp := postJSON(t, client, srv.URL+"/api/quiz/reset", nil)
	if status != http.StatusOK {
		t.Fatalf("reset: status %d", status)
	}
	if phase := resp["state"].(map[string]any)["phase"]; phase != "idle" {
		t.Errorf("expected idle after reset, got %v", phase)
	}
}

func TestQuizHiddenByVisibilityFlag(t *testing.T) {
	srv, client := newTestServer(t)
	adminLogin(t, client, srv.URL)

	status, _ := doJSON(t, client, http.MethodPut, srv.URL+"/api/admin/visibility", map[string]any{
		"sections": map[string]bool{"explore.quiz": false},
	})
	if status != http.StatusOK {
		t.Fatalf("set visibility: status %d", status)
	}

	_, resp := getJSON(t, client, srv.URL+"/api/quiz/categories")
	if resp["visible"] != false {
		t.Errorf("expected hidden categories, got %v", resp)
	}

	status, _ = postJSON(t, client, srv.URL+"/api/quiz/start", map[string]any{
		"player_name": "Keerthana", "category": "festivals",
	})
	if status != http.StatusForbidden {
		t.Errorf("expected 403 when quiz hidden, got %d", status)
	}
}
