package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/auth"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/middleware"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

// Signup handles POST /api/account/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
		Consent  bool   `json:"consent"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	input := auth.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	}
	if err := input.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.Consent {
		writeJSONError(w, http.StatusBadRequest, "consent is required")
		return
	}

	ctx := r.Context()
	email := strings.ToLower(input.Email)
	if _, err := h.queries.GetUserByEmail(ctx, email); err == nil {
		writeJSONError(w, http.StatusConflict, "An account with this email already exists")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("signup lookup failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		slog.Error("password hash failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	now := time.Now().UTC()
	user, err := h.queries.CreateUser(ctx, store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Mobile:       input.Mobile,
		Consent:      req.Consent,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		slog.Error("failed to create user", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	h.sm.Put(ctx, middleware.SessionKeyUserID, user.ID)
	h.logAuth(r, "Devotee account created", &user.ID)
	writeJSONSuccess(w, map[string]any{"user": user})
}

// Login handles POST /api/account/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := auth.ValidateLogin(req.Email, req.Password); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	user, err := h.queries.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		h.logAuth(r, "Login failed: unknown email", nil)
		writeJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.logAuth(r, "Login failed: wrong password", &user.ID)
		writeJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Upgrade hashes stored under older parameters now that the
	// plaintext is available. Login proceeds either way.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(req.Password); err == nil {
			if err := h.queries.UpdatePasswordHash(ctx, user.ID, newHash, time.Now().UTC()); err != nil {
				slog.Warn("failed to upgrade password hash", "user_id", user.ID, "error", err)
			}
		}
	}

	if err := h.sm.RenewToken(ctx); err != nil {
		slog.Error("session renew failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	h.sm.Put(ctx, middleware.SessionKeyUserID, user.ID)

	if err := h.queries.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		slog.Warn("failed to record last login", "error", err)
	}

	h.logAuth(r, "Devotee logged in", &user.ID)
	writeJSONSuccess(w, map[string]any{"user": user})
}

// Logout handles POST /api/account/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.sm.Remove(ctx, middleware.SessionKeyUserID)
	if err := h.sm.RenewToken(ctx); err != nil {
		slog.Error("session renew failed", "error", err)
	}
	writeJSONSuccess(w, nil)
}

// Me handles GET /api/account/me. Requires a logged-in devotee.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		writeJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	writeJSONSuccess(w, map[string]any{"user": user})
}

func (h *Handler) logAuth(r *http.Request, message string, userID *int64) {
	if h.events == nil {
		return
	}
	err := h.events.LogAuthEvent(r.Context(), model.EventLevelInfo, message, userID, clientIP(r), nil)
	if err != nil {
		slog.Error("failed to record auth event", "error", err)
	}
}
