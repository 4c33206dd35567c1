package session

import "insight-srv/pkg/backend"

type GetInput struct {
	Token string
	Lang  string
}

// Snapshot is what the backend knows about a user at one point in time.
// Profile is nil when the profile endpoint had nothing.
type Snapshot struct {
	Session backend.User  `json:"session"`
	Profile *backend.User `json:"profile,omitempty"`
}

type SessionOutput struct {
	User          *backend.User
	Authenticated bool
	DisplayName   string
	DisplayEmail  string
}
