package models

// SessionUser is the pair persisted at successful login and read back to
// prefill the login form. It never expires on its own; the next successful
// login overwrites it.
type SessionUser struct {
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}
