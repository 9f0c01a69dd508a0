// Package session models the browser-local login record. A Session has no
// server-side counterpart and is never authoritative for access control; the
// login endpoint hands its fields to the client, which holds and eventually
// clears them.
package session

import "time"

// Session is one client-local record of a successful admin login.
type Session struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// New creates a session for the given identity, stamped with the current time.
func New(username, role string) *Session {
	return &Session{
		Username:  username,
		Role:      role,
		LoginTime: time.Now().UTC(),
	}
}

// Active reports whether the session still holds an identity.
func (s *Session) Active() bool {
	return s.Username != ""
}

// Clear wipes the session, the logout counterpart of New.
func (s *Session) Clear() {
	s.Username = ""
	s.Role = ""
	s.LoginTime = time.Time{}
}
