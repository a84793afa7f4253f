package entity

// User is the authenticated account derived from a verified login code.
//
// There is no user directory: admin access is bound to the configured admin
// email, everyone else gets the member role.
type User struct {
	ID       int64
	Username string
	Email    string
	Name     string
	Role     Role
}
