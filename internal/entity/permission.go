package entity

import "github.com/gofrs/uuid/v5"

type Permission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Seeded catalog. The names are referenced by the authorization policy;
// custom entries beyond these are admin-managed data.
const (
	PermViewItems    = "view_items"
	PermAddItems     = "add_items"
	PermEditItems    = "edit_items"
	PermDeleteItems  = "delete_items"
	PermDeliverItems = "deliver_items"
	PermViewUsers    = "view_users"
)

// DefaultEmployeePermissions is the set granted to a user at registration.
func DefaultEmployeePermissions() []string {
	return []string{PermViewItems, PermAddItems, PermEditItems}
}
