package domain

import "time"

// Role represents the account type of a user.
type Role string

// User roles.
const (
	RoleSeller   Role = "seller"
	RoleCustomer Role = "customer"
)

// IsValid checks if the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleSeller, RoleCustomer:
		return true
	}
	return false
}

// User represents a registered account. Password holds the bcrypt digest,
// never the plaintext.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the API-facing projection of a user. The password digest
// is deliberately absent.
type PublicUser struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the projection safe to serialize in responses.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
