package domain

import "errors"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Access is the role a view requires before it may be rendered.
type Access string

const (
	AccessAnonymous Access = "anonymous"
	AccessUser      Access = "user"
	AccessAdmin     Access = "admin"
)

var ErrLoginRequired = errors.New("login required")
var ErrAccessDenied = errors.New("access denied")
var ErrRoleUndecodable = errors.New("role claim could not be decoded")
var ErrSessionIncomplete = errors.New("session is missing fields")

// Session is the visitor's authentication state. The token is an opaque
// credential issued by the ordering API; the role is decoded out of the
// token's payload and is advisory only; the API re-checks it on every call.
//
// Invariant: all three fields are set together or not at all. A session with
// a token but no role must never be observed.
type Session struct {
	Token    string
	Username string
	Role     string
}

// Anonymous is the session of a visitor who has not logged in.
var Anonymous = Session{}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsKnownRole reports whether the role is one of the recognised tiers.
// Anything else is treated as unauthorized for every protected view.
func (s Session) IsKnownRole() bool {
	return s.Role == RoleUser || s.Role == RoleAdmin
}

// IsComplete reports whether all three fields are populated.
func (s Session) IsComplete() bool {
	return s.Token != "" && s.Username != "" && s.Role != ""
}

// IsPartial reports whether some but not all fields are populated, which
// indicates a corrupted persisted session.
func (s Session) IsPartial() bool {
	return s != Anonymous && !s.IsComplete()
}
