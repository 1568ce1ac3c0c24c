package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/firestore"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/notify"
)

// Demo identities served when the admin backend is unconfigured.
const demoAdminUID = "demo-admin"

// AdminService runs the admin control plane. Every mutation applies a
// local echo first; the remote write happens only with a configured
// backend, a token, and an admin role, and its failure never rolls the
// echo back.
type AdminService struct {
	fb         *firestore.Client
	events     *EventService
	dispatcher *notify.Dispatcher
	now        func() time.Time

	mu            sync.Mutex
	volunteers    []model.VolunteerRequest
	announcements []model.Announcement
	media         []model.MediaItem
	timings       []model.TimingUpdate
	bulk          []model.BulkNotification
}

// NewAdminService creates the admin service. fb may be unconfigured for
// demo mode.
func NewAdminService(fb *firestore.Client, events *EventService, dispatcher *notify.Dispatcher) *AdminService {
	return &AdminService{
		fb:         fb,
		events:     events,
		dispatcher: dispatcher,
		now:        time.Now,
		volunteers: demoVolunteers(),
	}
}

func demoVolunteers() []model.VolunteerRequest {
	return []model.VolunteerRequest{
		{ID: "v1", Name: "Rohan Bhat", Status: model.VolunteerStatusPending},
		{ID: "v2", Name: "Ananya Rao", Status: model.VolunteerStatusPending},
	}
}

// DemoMode reports whether the backend is unconfigured.
func (s *AdminService) DemoMode() bool {
	return !s.fb.Configured()
}

// Login signs an admin in. Without a configured backend any credentials
// yield a demo session with the admin role and no tokens.
func (s *AdminService) Login(ctx context.Context, email, password string) (model.AdminSession, error) {
	if s.DemoMode() {
		return model.AdminSession{
			UID:   demoAdminUID,
			Email: email,
			Role:  model.AdminRoleAdmin,
			Demo:  true,
		}, nil
	}

	fbSess, err := s.fb.SignIn(ctx, email, password)
	if err != nil {
		return model.AdminSession{}, fmt.Errorf("admin sign-in failed: %w", err)
	}

	sess := model.AdminSession{
		UID:     fbSess.UID,
		Email:   fbSess.Email,
		IDToken: fbSess.IDToken,
		Role:    model.AdminRoleViewer,
	}
	// Missing role document or read error leaves the viewer default.
	doc, err := s.fb.GetDoc(ctx, sess.IDToken, "admin_roles/"+sess.UID)
	if err == nil {
		if role := doc.Fields["role"].Text(); model.AdminRoleLevel(role) > 0 {
			sess.Role = role
		}
	}
	return sess, nil
}

// remoteAllowed gates every privileged write.
func (s *AdminService) remoteAllowed(sess model.AdminSession) bool {
	return s.fb.Configured() && sess.IDToken != "" && sess.IsAdmin()
}

func (s *AdminService) remoteCreate(ctx context.Context, sess model.AdminSession, collection string, fields map[string]any) {
	if !s.remoteAllowed(sess) {
		return
	}
	if _, err := s.fb.CreateDoc(ctx, sess.IDToken, collection, fields); err != nil {
		slog.Warn("remote write failed, local echo kept",
			"category", "admin",
			"collection", collection,
			"error", err,
		)
	}
}

// RecordQuizScore mirrors a completed quiz result to the backend
// quiz_scores collection. Best effort: skipped silently when the
// backend is unconfigured, and a failed write is logged and ignored
// because the local row is authoritative.
func (s *AdminService) RecordQuizScore(ctx context.Context, score model.QuizScore) {
	if !s.fb.Configured() {
		return
	}
	_, err := s.fb.CreateDoc(ctx, "", "quiz_scores", map[string]any{
		"playerName": score.PlayerName,
		"category":   score.Category,
		"score":      score.Score,
		"total":      score.Total,
		"createdAt":  s.now().UTC(),
	})
	if err != nil {
		slog.Warn("quiz score remote write failed",
			"category", "quiz",
			"player", score.PlayerName,
			"error", err,
		)
	}
}

// SaveVisibilityRemote mirrors the visibility flags to the backend.
// Failures are ignored; the local store is authoritative.
func (s *AdminService) SaveVisibilityRemote(ctx context.Context, sess model.AdminSession, flags map[string]bool) {
	if !s.remoteAllowed(sess) {
		return
	}
	fields := make(map[string]any, len(flags))
	mask := make([]string, 0, len(flags))
	for k, v := range flags {
		fields[k] = v
		mask = append(mask, k)
	}
	if _, err := s.fb.PatchDoc(ctx, sess.IDToken, "settings/section_visibility", fields, mask); err != nil {
		slog.Warn("visibility remote save failed",
			"category", "admin",
			"error", err,
		)
	}
}

// PublishAnnouncement stores an announcement: local echo prepended,
// remote document created when allowed.
func (s *AdminService) PublishAnnouncement(ctx context.Context, sess model.AdminSession, title, message string) model.Announcement {
	now := s.now()
	a := model.Announcement{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		IsActive:  true,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.announcements = append([]model.Announcement{a}, s.announcements...)
	s.mu.Unlock()

	s.remoteCreate(ctx, sess, "announcements", map[string]any{
		"title":     title,
		"message":   message,
		"createdAt": now,
		"isActive":  true,
	})
	s.audit(ctx, "Announcement published", map[string]any{"title": title})
	return a
}

// Announcements returns the locally echoed announcements, newest first.
func (s *AdminService) Announcements() []model.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}

// AddMediaItem publishes a gallery entry.
func (s *AdminService) AddMediaItem(ctx context.Context, sess model.AdminSession, title, url string) model.MediaItem {
	now := s.now()
	m := model.MediaItem{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		Type:      model.GalleryTypeImage,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.media = append([]model.MediaItem{m}, s.media...)
	s.mu.Unlock()

	s.remoteCreate(ctx, sess, "media_items", map[string]any{
		"title":     title,
		"url":       url,
		"type":      model.GalleryTypeImage,
		"createdAt": now,
	})
	s.audit(ctx, "Media item added", map[string]any{"title": title})
	return m
}

// SaveTimings publishes a temple timings row.
func (s *AdminService) SaveTimings(ctx context.Context, sess model.AdminSession, location, darshan, prasada string) model.TimingUpdate {
	now := s.now()
	t := model.TimingUpdate{
		ID:        uuid.NewString(),
		Location:  location,
		Darshan:   darshan,
		Prasada:   prasada,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.timings = append([]model.TimingUpdate{t}, s.timings...)
	s.mu.Unlock()

	s.remoteCreate(ctx, sess, "temple_timings", map[string]any{
		"location":  location,
		"darshan":   darshan,
		"prasada":   prasada,
		"createdAt": now,
	})
	s.audit(ctx, "Temple timings saved", map[string]any{"location": location})
	return t
}

// BulkNotify queues a broadcast: local queue row for asynchronous
// dispatch plus the remote document when allowed.
func (s *AdminService) BulkNotify(ctx context.Context, sess model.AdminSession, message string) (model.BulkNotification, error) {
	now := s.now()

	id, err := s.dispatcher.Enqueue(ctx, message)
	if err != nil {
		return model.BulkNotification{}, err
	}
	n := model.BulkNotification{
		ID:        id,
		Message:   message,
		Status:    "queued",
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.bulk = append([]model.BulkNotification{n}, s.bulk...)
	s.mu.Unlock()

	s.remoteCreate(ctx, sess, "bulk_notifications", map[string]any{
		"message":   message,
		"createdAt": now,
		"status":    "queued",
	})
	s.audit(ctx, "Bulk notification queued", map[string]any{"id": id})
	return n, nil
}

// Volunteers lists volunteer requests: remote rows when allowed,
// otherwise the local list (demo rows initially).
func (s *AdminService) Volunteers(ctx context.Context, sess model.AdminSession) []model.VolunteerRequest {
	if s.remoteAllowed(sess) {
		if docs, err := s.fb.ListDocs(ctx, sess.IDToken, "volunteer_requests"); err == nil {
			out := make([]model.VolunteerRequest, 0, len(docs))
			for _, d := range docs {
				out = append(out, model.VolunteerRequest{
					ID:     d.ID(),
					Name:   d.Fields["name"].Text(),
					Status: d.Fields["status"].Text(),
				})
			}
			s.mu.Lock()
			s.volunteers = out
			s.mu.Unlock()
			return out
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.VolunteerRequest, len(s.volunteers))
	copy(out, s.volunteers)
	return out
}

// SetVolunteerStatus approves or rejects a request. The local list is
// updated regardless of the remote patch outcome.
func (s *AdminService) SetVolunteerStatus(ctx context.Context, sess model.AdminSession, id, status string) (model.VolunteerRequest, bool) {
	s.mu.Lock()
	var updated model.VolunteerRequest
	found := false
	for i := range s.volunteers {
		if s.volunteers[i].ID == id {
			s.volunteers[i].Status = status
			updated = s.volunteers[i]
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return model.VolunteerRequest{}, false
	}

	if s.remoteAllowed(sess) {
		if _, err := s.fb.PatchDoc(ctx, sess.IDToken, "volunteer_requests/"+id,
			map[string]any{"status": status}, []string{"status"}); err != nil {
			slog.Warn("volunteer status remote patch failed",
				"category", "admin",
				"id", id,
				"error", err,
			)
		}
	}
	s.audit(ctx, "Volunteer request "+status, map[string]any{"id": id})
	return updated, true
}

// ExportUsers returns the privacy export rows and the download filename.
func (s *AdminService) ExportUsers(ctx context.Context, sess model.AdminSession) ([]model.ExportUser, string) {
	filename := fmt.Sprintf("users-export-%s.json", s.now().Format("2006-01-02"))

	if s.remoteAllowed(sess) {
		if docs, err := s.fb.ListDocs(ctx, sess.IDToken, "users"); err == nil {
			out := make([]model.ExportUser, 0, len(docs))
			for _, d := range docs {
				consent := false
				if b, ok := d.Fields["consent"].Decode().(bool); ok {
					consent = b
				}
				out = append(out, model.ExportUser{
					ID:      d.ID(),
					Name:    d.Fields["name"].Text(),
					Email:   d.Fields["email"].Text(),
					Consent: consent,
				})
			}
			s.audit(ctx, "Privacy export downloaded", map[string]any{"rows": len(out)})
			return out, filename
		}
	}

	s.audit(ctx, "Privacy export downloaded", map[string]any{"rows": 2, "demo": true})
	return []model.ExportUser{
		{ID: "u1", Name: "Demo User", Email: "demo@example.com", Consent: true},
		{ID: "u2", Name: "Sample Devotee", Email: "devotee@example.com", Consent: false},
	}, filename
}

// audit records an admin mutation in the local event log.
func (s *AdminService) audit(ctx context.Context, message string, metadata map[string]any) {
	if s.events == nil {
		return
	}
	if err := s.events.LogAdminEvent(ctx, model.EventLevelInfo, message, "", metadata); err != nil {
		slog.Error("failed to record admin audit event", "error", err)
	}
}
