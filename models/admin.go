package models

// AdminCredential is one entry of the static credential list. PasswordHash is
// a bcrypt hash; it is stripped before a credential ever leaves the admin
// service.
type AdminCredential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Role         string `json:"role"`
}

const (
	RoleAdmin = "admin"
)
