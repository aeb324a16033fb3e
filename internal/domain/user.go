package domain

import "time"

// Role is the access level of a staff account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSeller  Role = "seller"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSeller:
		return true
	}
	return false
}

// IsAdmin reports whether r bypasses the daily limiters.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// DailyEditLimit is how many product mutations the role may perform per
// calendar date. Admins are effectively unlimited; 999 is what the UI shows.
func (r Role) DailyEditLimit() int {
	switch r {
	case RoleSeller:
		return 5
	case RoleManager:
		return 20
	default:
		return 999
	}
}

// DailyReopenLimit caps order reopens per user per calendar date for
// non-admin roles.
const DailyReopenLimit = 5

// DateKey formats t as the UTC YYYY-MM-DD string keying the daily counters.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// User is a staff account (admin, manager or seller).
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is a server-side login session referenced by the cookie token.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
