package models

import "time"

// Role is the portal's fixed role set. Authorization is a claim check
// against these values; there is no dynamic permission registry.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleHOD     Role = "hod"
	RoleDean    Role = "dean"
)

// PrivilegedRoles are the roles allowed to create portal content and
// persisted notifications.
var PrivilegedRoles = []Role{RoleFaculty, RoleHOD, RoleDean}

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleStudent, RoleFaculty, RoleHOD, RoleDean:
		return true
	}
	return false
}

// ContentStatus applies to statused content (announcements, projects).
// Only approved content is published or fanned out as notifications.
type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
)

// Log is a row in the logs collection written by the async zap core.
type Log struct {
	Message      string    `bson:"message"`
	IpAddress    string    `bson:"ip_address,omitempty"`
	UserId       string    `bson:"user_id,omitempty"`
	Caller       string    `bson:"caller,omitempty"`
	LogLevelId   int       `bson:"log_level_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc"`
}
