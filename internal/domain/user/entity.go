// internal/domain/user/entity.go
package user

// User represents a directory account. Credentials are stored and
// compared as plain values; this is a demo directory, not a real
// account system.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Profile is the display-ready projection of the current session
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
