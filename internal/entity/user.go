package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleSupervisor, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID             uuid.UUID    `json:"id"`
	EmployeeNumber string       `json:"employeeNumber"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	PasswordHash   string       `json:"-"`
	Role           Role         `json:"role"`
	Permissions    []Permission `json:"permissions"`
	CreatedAt      time.Time    `json:"createdAt"`
}

func (u User) HasPermission(name string) bool {
	for _, p := range u.Permissions {
		if p.Name == name {
			return true
		}
	}

	return false
}

// UserSummary is the shape embedded into item responses when the caller
// asks for reference expansion.
type UserSummary struct {
	ID             uuid.UUID `json:"id"`
	EmployeeNumber string    `json:"employeeNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           Role      `json:"role"`
}

// UnknownUser is the placeholder identity substituted when a referenced
// user no longer exists. Reads must never fail on a dangling reference.
func UnknownUser() UserSummary {
	return UserSummary{
		ID:        uuid.Nil,
		FirstName: "Unknown",
		LastName:  "User",
	}
}

// UserRef is a user reference stored as a bare identifier. Resolution into
// an embedded UserSummary happens at the repository boundary and only when
// the caller requested it; an unresolvable reference resolves to the
// UnknownUser placeholder.
type UserRef struct {
	ID   uuid.UUID    `json:"id"`
	User *UserSummary `json:"user,omitempty"`
}

func NewUserRef(id uuid.UUID) UserRef {
	return UserRef{ID: id}
}

func (r UserRef) Resolved() bool {
	return r.User != nil
}

// Display returns the embedded record, the placeholder if resolution was
// attempted and failed, or a summary carrying just the id when the caller
// never asked for expansion.
func (r UserRef) Display() UserSummary {
	if r.User != nil {
		return *r.User
	}

	return UserSummary{ID: r.ID}
}
