package domain

const RoleAdmin = "admin"

// User is the identity record keyed by email. Profile documents carry
// arbitrary caller-supplied fields on top of these; only email and role
// participate in authorization decisions.
type User struct {
	Email string `json:"email" bson:"email"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the identity holds the elevated role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
