// Package model defines domain models and types used throughout the application
// including User, Event, content kinds, and booking structures.
package model

import (
	"database/sql"
	"time"
)

// Devotee account roles. Admin panel roles are separate (see AdminRole*).
const RoleDevotee = "devotee"

// Admin panel roles, hierarchical: viewer < admin < superadmin.
const (
	AdminRoleViewer     = "viewer"
	AdminRoleAdmin      = "admin"
	AdminRoleSuperadmin = "superadmin"
)

// User represents a registered devotee account.
type User struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never expose in JSON
	FullName     string       `json:"full_name"`
	Mobile       string       `json:"mobile"`
	Consent      bool         `json:"consent"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	LastLoginAt  sql.NullTime `json:"last_login_at,omitempty"`
}

// AdminSession is the authenticated admin panel state kept in the session.
type AdminSession struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IDToken string `json:"-"`
	Demo    bool   `json:"demo"`
}

// IsAdmin reports whether the session role grants write access to the
// admin control plane.
func (s *AdminSession) IsAdmin() bool {
	return s.Role == AdminRoleAdmin || s.Role == AdminRoleSuperadmin
}

// AdminRoleLevel returns a numeric level for the admin role hierarchy.
// Higher level = more permissions. Unknown roles have no access.
func AdminRoleLevel(role string) int {
	switch role {
	case AdminRoleSuperadmin:
		return 3
	case AdminRoleAdmin:
		return 2
	case AdminRoleViewer:
		return 1
	default:
		return 0
	}
}
