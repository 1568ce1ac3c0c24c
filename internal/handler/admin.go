package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/middleware"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/visibility"
)

// AdminLogin handles POST /api/admin/login. With an unconfigured backend
// any credentials open a demo session.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx := r.Context()
	sess, err := h.admin.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}
	if err := middleware.PutAdminSession(ctx, h.sm, sess); err != nil {
		slog.Error("failed to store admin session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	writeJSONSuccess(w, map[string]any{"session": sess})
}

// AdminLogout handles POST /api/admin/logout.
func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	middleware.ClearAdminSession(ctx, h.sm)
	if err := h.sm.RenewToken(ctx); err != nil {
		slog.Error("session renew failed", "error", err)
	}
	writeJSONSuccess(w, nil)
}

// AdminSession handles GET /api/admin/session.
func (h *Handler) AdminSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.AdminSessionFrom(r.Context(), h.sm)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Admin authentication required")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"session": sess,
		"demo":    h.admin.DemoMode(),
	})
}

// SetVisibility handles PUT /api/admin/visibility. The local store is
// updated first and is authoritative; the remote mirror is best effort.
func (h *Handler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sections map[string]bool `json:"sections"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Sections) == 0 {
		writeJSONError(w, http.StatusBadRequest, "No sections given")
		return
	}

	ctx := r.Context()
	snap, err := h.vis.Set(ctx, visibility.Snapshot(req.Sections))
	if err != nil {
		slog.Error("failed to save visibility flags", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to save visibility")
		return
	}

	if sess := middleware.GetAdmin(r); sess != nil {
		h.admin.SaveVisibilityRemote(ctx, *sess, snap)
	}
	writeJSONSuccess(w, map[string]any{"sections": snap})
}

// PublishAnnouncement handles POST /api/admin/announcements.
func (h *Handler) PublishAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "Title and message are required")
		return
	}

	a := h.admin.PublishAnnouncement(r.Context(), adminSessionOrEmpty(r), req.Title, req.Message)
	writeJSONSuccess(w, map[string]any{"announcement": a})
}

// AdminAnnouncements handles GET /api/admin/announcements.
func (h *Handler) AdminAnnouncements(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, map[string]any{"announcements": h.admin.Announcements()})
}

// AddMediaItem handles POST /api/admin/media.
func (h *Handler) AddMediaItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.URL == "" {
		writeJSONError(w, http.StatusBadRequest, "Title and URL are required")
		return
	}

	m := h.admin.AddMediaItem(r.Context(), adminSessionOrEmpty(r), req.Title, req.URL)
	writeJSONSuccess(w, map[string]any{"media_item": m})
}

// SaveTimings handles POST /api/admin/timings.
func (h *Handler) SaveTimings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location string `json:"location"`
		Darshan  string `json:"darshan"`
		Prasada  string `json:"prasada"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Location == "" {
		writeJSONError(w, http.StatusBadRequest, "Location is required")
		return
	}

	t := h.admin.SaveTimings(r.Context(), adminSessionOrEmpty(r), req.Location, req.Darshan, req.Prasada)
	writeJSONSuccess(w, map[string]any{"timings": t})
}

// BulkNotify handles POST /api/admin/notifications.
func (h *Handler) BulkNotify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Message == "" {
		writeJSONError(w, http.StatusBadRequest, "Message is required")
		return
	}

	n, err := h.admin.BulkNotify(r.Context(), adminSessionOrEmpty(r), req.Message)
	if err != nil {
		slog.Error("failed to queue bulk notification", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to queue notification")
		return
	}
	writeJSONSuccess(w, map[string]any{"notification": n})
}

// AdminVolunteers handles GET /api/admin/volunteers.
func (h *Handler) AdminVolunteers(w http.ResponseWriter, r *http.Request) {
	vols := h.admin.Volunteers(r.Context(), adminSessionOrEmpty(r))
	writeJSONSuccess(w, map[string]any{"volunteers": vols})
}

// ApproveVolunteer handles POST /api/admin/volunteers/{id}/approve.
func (h *Handler) ApproveVolunteer(w http.ResponseWriter, r *http.Request) {
	h.setVolunteerStatus(w, r, model.VolunteerStatusApproved)
}

// RejectVolunteer handles POST /api/admin/volunteers/{id}/reject.
func (h *Handler) RejectVolunteer(w http.ResponseWriter, r *http.Request) {
	h.setVolunteerStatus(w, r, model.VolunteerStatusRejected)
}

func (h *Handler) setVolunteerStatus(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")
	v, ok := h.admin.SetVolunteerStatus(r.Context(), adminSessionOrEmpty(r), id, status)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Volunteer request not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"volunteer": v})
}

// AdminAnalytics handles GET /api/admin/analytics?tier=daily.
func (h *Handler) AdminAnalytics(w http.ResponseWriter, r *http.Request) {
	tier := r.URL.Query().Get("tier")
	if tier == "" {
		tier = model.AnalyticsTierDaily
	}
	rows, err := h.stats.Rows(tier)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Unknown analytics tier")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"tier": tier,
		"rows": rows,
	})
}

// RefreshAnalytics handles POST /api/admin/analytics/refresh. Only the
// daily tier is rebuilt from live bookings.
func (h *Handler) RefreshAnalytics(w http.ResponseWriter, r *http.Request) {
	if err := h.stats.RefreshDaily(r.Context()); err != nil {
		slog.Error("analytics refresh failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Analytics refresh failed")
		return
	}
	rows, err := h.stats.Rows(model.AnalyticsTierDaily)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Analytics refresh failed")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"tier": model.AnalyticsTierDaily,
		"rows": rows,
	})
}

// ExportUsers handles GET /api/admin/export/users as a JSON download.
func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	rows, filename := h.admin.ExportUsers(r.Context(), adminSessionOrEmpty(r))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_ = json.NewEncoder(w).Encode(rows)
}

// AdminEvents handles GET /api/admin/events: the recent audit log.
func (h *Handler) AdminEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListRecent(r.Context(), 100)
	if err != nil {
		slog.Error("failed to list events", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to load events")
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSONSuccess(w, map[string]any{"events": events})
}

// adminSessionOrEmpty returns the context session injected by the role
// gate, or a zero session for ungated paths.
func adminSessionOrEmpty(r *http.Request) model.AdminSession {
	if s := middleware.GetAdmin(r); s != nil {
		return *s
	}
	return model.AdminSession{}
}
