package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alexedwards/scs/v2"
	_ "modernc.org/sqlite"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/service"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

// serveWithSession runs a request through the session middleware so
// session writes inside setup are visible to the handler chain.
func serveWithSession(t *testing.T, sm *scs.SessionManager, h http.Handler, setup func(r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/volunteers", nil)

	sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if setup != nil {
			setup(r)
		}
		h.ServeHTTP(w, r)
	})).ServeHTTP(rr, req)
	return rr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdminRole_NoSession(t *testing.T) {
	sm := scs.New()
	gate := RequireAdminRole(sm, model.AdminRoleAdmin, nil)

	rr := serveWithSession(t, sm, gate(okHandler()), nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestRequireAdminRole_ViewerBlocked(t *testing.T) {
	sm := scs.New()
	gate := RequireAdminRole(sm, model.AdminRoleAdmin, nil)

	rr := serveWithSession(t, sm, gate(okHandler()), func(r *http.Request) {
		_ = PutAdminSession(r.Context(), sm, model.AdminSession{
			UID: "uid-1", Email: "viewer@sodematha.in", Role: model.AdminRoleViewer,
		})
	})
	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}

func TestRequireAdminRole_DenialIsAudited(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	events := service.NewEventService(db)

	sm := scs.New()
	gate := RequireAdminRole(sm, model.AdminRoleAdmin, events)

	rr := serveWithSession(t, sm, gate(okHandler()), func(r *http.Request) {
		_ = PutAdminSession(r.Context(), sm, model.AdminSession{
			UID: "uid-1", Role: model.AdminRoleViewer,
		})
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}

	logged, err := events.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(logged) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(logged))
	}
	if logged[0].Level != model.EventLevelWarning {
		t.Errorf("event level = %q, want %q", logged[0].Level, model.EventLevelWarning)
	}
	if logged[0].Category != model.EventCategoryAuth {
		t.Errorf("event category = %q, want %q", logged[0].Category, model.EventCategoryAuth)
	}
}

func TestRequireAdminRole_HierarchyAllowsSuperadmin(t *testing.T) {
	sm := scs.New()
	gate := RequireAdminRole(sm, model.AdminRoleAdmin, nil)

	rr := serveWithSession(t, sm, gate(okHandler()), func(r *http.Request) {
		_ = PutAdminSession(r.Context(), sm, model.AdminSession{
			UID: "uid-2", Role: model.AdminRoleSuperadmin,
		})
	})
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestAdminSession_PutAndClear(t *testing.T) {
	sm := scs.New()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := model.AdminSession{
			UID: "uid-3", Email: "admin@sodematha.in",
			Role: model.AdminRoleAdmin, IDToken: "tok", Demo: true,
		}
		if err := PutAdminSession(r.Context(), sm, sess); err != nil {
			t.Fatalf("PutAdminSession: %v", err)
		}

		got, ok := AdminSessionFrom(r.Context(), sm)
		if !ok {
			t.Fatal("expected a stored admin session")
		}
		if got != sess {
			t.Errorf("got %+v, want %+v", got, sess)
		}

		ClearAdminSession(r.Context(), sm)
		if _, ok := AdminSessionFrom(r.Context(), sm); ok {
			t.Error("expected the session cleared")
		}
	})

	serveWithSession(t, sm, handler, nil)
}

func TestRequireUser_Unauthenticated(t *testing.T) {
	sm := scs.New()
	rr := serveWithSession(t, sm, RequireUser(sm)(okHandler()), nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}
