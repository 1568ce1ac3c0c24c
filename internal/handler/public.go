package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/content"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/visibility"
)

// section wraps a gated payload. Hidden sections carry no items.
func section(visible bool, items any) map[string]any {
	if !visible {
		return map[string]any{"visible": false}
	}
	return map[string]any{"visible": true, "items": items}
}

// Home handles GET /api/home: the news carousel, announcement ticker and
// timings table, each gated by its visibility flag.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	snap := h.vis.Get(r.Context())

	writeJSONSuccess(w, map[string]any{
		"news":          section(snap.Visible(visibility.HomeNews), content.HomeNews()),
		"announcements": section(snap.Visible(visibility.HomeAnnouncements), content.HomeAnnouncements()),
		"timings":       section(snap.Visible(visibility.HomeTimings), content.HomeTimings()),
	})
}

// Visibility handles GET /api/visibility.
func (h *Handler) Visibility(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, map[string]any{
		"sections": h.vis.Get(r.Context()),
	})
}

// Branches handles GET /api/branches?q=&state=.
func (h *Handler) Branches(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Branches.Load(r.Context())
	branches := content.SearchBranches(res.Items, r.URL.Query().Get("q"), r.URL.Query().Get("state"))

	writeJSONSuccess(w, map[string]any{
		"branches":    branches,
		"from_remote": res.FromRemote,
	})
}

// Gallery handles GET /api/gallery?category=.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Gallery.Load(r.Context())
	items := content.FilterGallery(res.Items, r.URL.Query().Get("category"))

	writeJSONSuccess(w, map[string]any{
		"items":       items,
		"from_remote": res.FromRemote,
	})
}

// notificationView is a notification with its relative timestamp.
type notificationView struct {
	model.Notification
	TimeAgo string `json:"time_ago"`
}

// Notifications handles GET /api/notifications.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Notifications.Load(r.Context())

	now := time.Now()
	views := make([]notificationView, 0, len(res.Items))
	for _, n := range res.Items {
		v := notificationView{Notification: n}
		if t, err := time.Parse(time.RFC3339, n.CreatedAt); err == nil {
			v.TimeAgo = relativeTime(t, now)
		}
		views = append(views, v)
	}

	writeJSONSuccess(w, map[string]any{
		"notifications": views,
		"from_remote":   res.FromRemote,
	})
}

// Publications handles GET /api/publications?q=&type=&language=.
func (h *Handler) Publications(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Publications.Load(r.Context())
	q := r.URL.Query()
	pubs := content.SearchPublications(res.Items, q.Get("q"), q.Get("type"), q.Get("language"))

	writeJSONSuccess(w, map[string]any{
		"publications": pubs,
		"from_remote":  res.FromRemote,
	})
}

// Panchanga handles GET /api/panchanga?date=2026-03-08. Without a date it
// serves today. Gated by the explore.panchanga flag.
func (h *Handler) Panchanga(w http.ResponseWriter, r *http.Request) {
	snap := h.vis.Get(r.Context())
	if !snap.Visible(visibility.ExplorePanchanga) {
		writeJSONSuccess(w, map[string]any{"visible": false})
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD")
			return
		}
		date = parsed
	}

	writeJSONSuccess(w, map[string]any{
		"visible":   true,
		"date":      date.Format("2006-01-02"),
		"panchanga": content.PanchangaFor(date),
	})
}

// Events handles GET /api/events: the festival calendar plus today's
// panchanga snapshot.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Events.Load(r.Context())

	data := map[string]any{
		"events":      res.Items,
		"from_remote": res.FromRemote,
	}
	if h.vis.Get(r.Context()).Visible(visibility.ExplorePanchanga) {
		data["panchanga"] = content.PanchangaFor(time.Now())
	}
	writeJSONSuccess(w, data)
}

// guruView carries the rendered biography alongside the lineage entry.
type guruView struct {
	model.Guru
	BiographyHTML string `json:"biography_html"`
}

func toGuruView(g model.Guru) guruView {
	return guruView{Guru: g, BiographyHTML: renderMarkdown(g.Biography)}
}

// Gurus handles GET /api/gurus.
func (h *Handler) Gurus(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Gurus.Load(r.Context())

	views := make([]guruView, 0, len(res.Items))
	for _, g := range res.Items {
		views = append(views, toGuruView(g))
	}
	writeJSONSuccess(w, map[string]any{"gurus": views})
}

// Guru handles GET /api/gurus/{id}.
func (h *Handler) Guru(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Gurus.Load(r.Context())

	g, ok := content.GuruByID(res.Items, chi.URLParam(r, "id"))
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Guru not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"guru": toGuruView(g)})
}
