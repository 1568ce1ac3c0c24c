package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/middleware"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
)

// Routes builds the full router: health probes, the public content API,
// devotee accounts, bookings, the quiz, and the role-gated admin plane.
func (h *Handler) Routes(dev bool) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(dev)))
	r.Use(middleware.RequestPath)

	// Probes load the session so admin callers get check details; scs
	// only writes a cookie when the session data changes.
	r.Group(func(r chi.Router) {
		r.Use(h.sm.LoadAndSave)
		r.Get("/health", h.Health)
		r.Get("/health/live", h.Liveness)
		r.Get("/health/ready", h.Readiness)
	})

	// Booking and quiz mutations are throttled per IP.
	bookingLimiter := middleware.NewRateLimiter(1, 5)
	quizLimiter := middleware.NewRateLimiter(5, 10)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.sm.LoadAndSave)
		r.Use(middleware.LoadUser(h.sm, h.queries))

		// Public content.
		r.Get("/home", h.Home)
		r.Get("/visibility", h.Visibility)
		r.Get("/branches", h.Branches)
		r.Get("/gallery", h.Gallery)
		r.Get("/notifications", h.Notifications)
		r.Get("/publications", h.Publications)
		r.Get("/panchanga", h.Panchanga)
		r.Get("/events", h.Events)
		r.Get("/gurus", h.Gurus)
		r.Get("/gurus/{id}", h.Guru)

		// Devotee accounts.
		r.Route("/account", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.With(middleware.RequireUser(h.sm)).Get("/me", h.Me)
		})

		// Bookings.
		r.Get("/sevas", h.Sevas)
		r.Get("/rooms", h.RoomTypes)
		r.Route("/bookings", func(r chi.Router) {
			r.With(bookingLimiter.Middleware).Post("/seva", h.BookSeva)
			r.With(bookingLimiter.Middleware).Post("/room", h.BookRoom)
			r.Get("/{ref}", h.BookingByReference)
		})

		// Youth quiz.
		r.Route("/quiz", func(r chi.Router) {
			r.Get("/categories", h.QuizCategories)
			r.Get("/state", h.QuizState)
			r.Get("/scores", h.QuizScores)
			r.Group(func(r chi.Router) {
				r.Use(quizLimiter.Middleware)
				r.Post("/start", h.QuizStart)
				r.Post("/answer", h.QuizAnswer)
				r.Post("/next", h.QuizNext)
				r.Post("/reset", h.QuizReset)
			})
		})

		// Admin control plane. Reads need the viewer role, writes the
		// admin role.
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.AdminLogin)
			r.Post("/logout", h.AdminLogout)
			r.Get("/session", h.AdminSession)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdminRole(h.sm, model.AdminRoleViewer, h.events))
				r.Get("/announcements", h.AdminAnnouncements)
				r.Get("/volunteers", h.AdminVolunteers)
				r.Get("/analytics", h.AdminAnalytics)
				r.Get("/events", h.AdminEvents)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdminRole(h.sm, model.AdminRoleAdmin, h.events))
				r.Put("/visibility", h.SetVisibility)
				r.Post("/announcements", h.PublishAnnouncement)
				r.Post("/media", h.AddMediaItem)
				r.Post("/timings", h.SaveTimings)
				r.Post("/notifications", h.BulkNotify)
				r.Post("/volunteers/{id}/approve", h.ApproveVolunteer)
				r.Post("/volunteers/{id}/reject", h.RejectVolunteer)
				r.Post("/analytics/refresh", h.RefreshAnalytics)
				r.Get("/export/users", h.ExportUsers)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
