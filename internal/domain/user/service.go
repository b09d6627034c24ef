// internal/domain/user/service.go
package user

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials is returned on any failed login. The message
// deliberately does not distinguish an unknown email from a wrong
// password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrDuplicateEmail is returned when a signup reuses an existing email
var ErrDuplicateEmail = errors.New("user with this email already exists")

// ErrNotAuthenticated is returned when an operation requires a session
var ErrNotAuthenticated = errors.New("not authenticated")

// Registry is the in-memory user directory plus the single
// process-wide session pointer. The session is either empty or
// references exactly one registry user.
type Registry struct {
	mu      sync.Mutex
	logger  *logrus.Logger
	users   []User
	current *User
}

// NewRegistry creates a registry seeded with the demo account
func NewRegistry(logger *logrus.Logger) *Registry {
	return &Registry{
		logger: logger,
		users: []User{
			{Username: "demo_user", Email: "user@example.com", Password: "password123"},
		},
	}
}

// Login authenticates against the directory with an exact email and
// password match and makes the matching user the active session.
func (r *Registry) Login(email, password string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email && r.users[i].Password == password {
			u := r.users[i]
			r.current = &u
			r.logger.WithField("username", u.Username).Info("User logged in")
			return u, nil
		}
	}

	r.logger.WithField("email", email).Warn("Login failed")
	return User{}, ErrInvalidCredentials
}

// Signup appends a new account and immediately makes it the active
// session (signup implies login). The email must not already be
// registered; the comparison is case-sensitive exact match.
func (r *Registry) Signup(username, email, password string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email {
			return User{}, ErrDuplicateEmail
		}
	}

	u := User{Username: username, Email: email, Password: password}
	r.users = append(r.users, u)
	r.current = &u

	r.logger.WithField("username", username).Info("User signed up")
	return u, nil
}

// Logout clears the session unconditionally
func (r *Registry) Logout() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.logger.WithField("username", r.current.Username).Info("User logged out")
	}
	r.current = nil
}

// Current returns the active session's user, if any
func (r *Registry) Current() (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return User{}, false
	}
	return *r.current, true
}

// Authenticated reports whether a session is active
func (r *Registry) Authenticated() bool {
	_, ok := r.Current()
	return ok
}

// Profile returns the display-ready projection of the session
func (r *Registry) Profile() (Profile, error) {
	u, ok := r.Current()
	if !ok {
		return Profile{}, ErrNotAuthenticated
	}
	return Profile{Username: u.Username, Email: u.Email}, nil
}

// Count returns the number of registered users
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
