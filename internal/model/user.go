package model

// Role represents a user's role
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account on the server
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user may reach admin views and admin
// task operations. Every role check in the client goes through here.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
