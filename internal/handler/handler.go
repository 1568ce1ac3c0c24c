// Package handler implements the JSON API: the devotee-facing content,
// quiz and booking endpoints plus the admin control plane.
package handler

import (
	"database/sql"

	"github.com/alexedwards/scs/v2"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/analytics"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/booking"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/content"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/service"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/visibility"
)

// Handler bundles the services behind the JSON API.
type Handler struct {
	sm       *scs.SessionManager
	db       *sql.DB
	queries  *store.Queries
	catalog  *content.Catalog
	vis      *visibility.Store
	bookings *booking.Service
	stats    *analytics.Service
	admin    *service.AdminService
	events   *service.EventService
	quizzes  *quizSessions
}

// New creates the API handler.
func New(
	sm *scs.SessionManager,
	db *sql.DB,
	queries *store.Queries,
	catalog *content.Catalog,
	vis *visibility.Store,
	bookings *booking.Service,
	stats *analytics.Service,
	admin *service.AdminService,
	events *service.EventService,
) *Handler {
	return &Handler{
		sm:       sm,
		db:       db,
		queries:  queries,
		catalog:  catalog,
		vis:      vis,
		bookings: bookings,
		stats:    stats,
		admin:    admin,
		events:   events,
		quizzes:  newQuizSessions(),
	}
}
