package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsZero reports whether no caller is attached.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}
