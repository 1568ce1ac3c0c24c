// Package middleware provides HTTP middleware for session handling,
// admin role checks, rate limiting and security headers.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/service"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request-scoped data.
const (
	ContextKeyUser        ContextKey = "user"
	ContextKeyAdmin       ContextKey = "admin"
	ContextKeyRequestPath ContextKey = "request_path"
)

// Session keys for devotee accounts and the admin control plane.
const (
	SessionKeyUserID = "user_id"

	SessionKeyAdminUID   = "admin_uid"
	SessionKeyAdminEmail = "admin_email"
	SessionKeyAdminRole  = "admin_role"
	SessionKeyAdminToken = "admin_token"
	SessionKeyAdminDemo  = "admin_demo"
)

// RequireUser rejects requests without a devotee session.
func RequireUser(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sm.GetInt64(r.Context(), SessionKeyUserID) == 0 {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoadUser loads the devotee user for the session into the request
// context. Requests without a session pass through untouched; a stale
// session is destroyed.
func LoadUser(sm *scs.SessionManager, queries *store.Queries) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt64(r.Context(), SessionKeyUserID)
			if userID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, err := queries.GetUserByID(r.Context(), userID)
			if err != nil {
				_ = sm.Destroy(r.Context())
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the current devotee from the request context.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	if !ok {
		return nil
	}
	return &user
}

// GetUserIDPtr returns a pointer to the current user's id, or nil.
// Useful for optional user id parameters in event logging.
func GetUserIDPtr(r *http.Request) *int64 {
	if user := GetUser(r); user != nil {
		id := user.ID
		return &id
	}
	return nil
}

// AdminSessionFrom rebuilds the admin session from the session store.
// Returns false when no admin is signed in.
func AdminSessionFrom(ctx context.Context, sm *scs.SessionManager) (model.AdminSession, bool) {
	uid := sm.GetString(ctx, SessionKeyAdminUID)
	if uid == "" {
		return model.AdminSession{}, false
	}
	return model.AdminSession{
		UID:     uid,
		Email:   sm.GetString(ctx, SessionKeyAdminEmail),
		Role:    sm.GetString(ctx, SessionKeyAdminRole),
		IDToken: sm.GetString(ctx, SessionKeyAdminToken),
		Demo:    sm.GetBool(ctx, SessionKeyAdminDemo),
	}, true
}

// PutAdminSession stores an admin session, renewing the session token.
func PutAdminSession(ctx context.Context, sm *scs.SessionManager, s model.AdminSession) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, SessionKeyAdminUID, s.UID)
	sm.Put(ctx, SessionKeyAdminEmail, s.Email)
	sm.Put(ctx, SessionKeyAdminRole, s.Role)
	sm.Put(ctx, SessionKeyAdminToken, s.IDToken)
	sm.Put(ctx, SessionKeyAdminDemo, s.Demo)
	return nil
}

// ClearAdminSession removes the admin keys from the session.
func ClearAdminSession(ctx context.Context, sm *scs.SessionManager) {
	for _, k := range []string{
		SessionKeyAdminUID, SessionKeyAdminEmail, SessionKeyAdminRole,
		SessionKeyAdminToken, SessionKeyAdminDemo,
	} {
		sm.Remove(ctx, k)
	}
}

// GetAdmin retrieves the admin session placed in context by
// RequireAdminRole.
func GetAdmin(r *http.Request) *model.AdminSession {
	s, ok := r.Context().Value(ContextKeyAdmin).(model.AdminSession)
	if !ok {
		return nil
	}
	return &s
}

// RequireAdminRole gates a route behind a minimum admin role. Roles are
// hierarchical: superadmin > admin > viewer. Denials are logged to the
// event log when an event service is provided.
func RequireAdminRole(sm *scs.SessionManager, minRole string, events *service.EventService) func(http.Handler) http.Handler {
	minLevel := model.AdminRoleLevel(minRole)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := AdminSessionFrom(r.Context(), sm)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Admin sign-in required")
				return
			}

			if model.AdminRoleLevel(sess.Role) < minLevel {
				slog.Warn("admin access denied",
					"category", "auth",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"uid", sess.UID,
					"role", sess.Role,
					"required_role", minRole,
					"remote_addr", r.RemoteAddr,
				)
				if events != nil {
					_ = events.LogAuthEvent(r.Context(), model.EventLevelWarning,
						"Admin access denied: insufficient role", nil, r.RemoteAddr,
						map[string]any{
							"uid":           sess.UID,
							"role":          sess.Role,
							"required_role": minRole,
							"path":          r.URL.Path,
							"status":        http.StatusForbidden,
						})
				}
				writeError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestPath stores the request path in the context for the logging
// handler to include in error records.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestPath retrieves the request path from the context.
func GetRequestPath(ctx context.Context) string {
	path, ok := ctx.Value(ContextKeyRequestPath).(string)
	if !ok {
		return ""
	}
	return path
}

// writeError sends a minimal JSON error envelope without importing the
// handler package.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"success":false,"error":` + jsonString(message) + `}`))
}

func jsonString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return string(append(out, '"'))
}
