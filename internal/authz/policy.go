// Package authz is the single authorization decision point. Every mutating
// or sensitive operation in the service layer asks this package instead of
// comparing role strings inline, and always against the currently stored
// resource rather than client-supplied claims.
package authz

import (
	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/entity"
)

type Action string

const (
	ActionViewItems    Action = "items.view"
	ActionReportItem   Action = "items.report"
	ActionEditItem     Action = "items.edit"
	ActionDeleteItem   Action = "items.delete"
	ActionDeliverItem  Action = "items.deliver"
	ActionArchiveItem  Action = "items.archive"
	ActionRevertItem   Action = "items.revert"
	ActionViewUsers    Action = "users.view"
	ActionManageUsers  Action = "users.manage"
	ActionManagePerms  Action = "permissions.manage"
)

// permissionFor maps an action to the catalog permission an employee must
// hold for it. Actions outside the map are never available to employees.
var permissionFor = map[Action]string{
	ActionViewItems:   entity.PermViewItems,
	ActionReportItem:  entity.PermAddItems,
	ActionEditItem:    entity.PermEditItems,
	ActionDeleteItem:  entity.PermDeleteItems,
	ActionDeliverItem: entity.PermDeliverItems,
	ActionArchiveItem: entity.PermDeliverItems,
	ActionViewUsers:   entity.PermViewUsers,
}

// ownershipBound lists the actions an employee may only perform on items
// they reported themselves.
var ownershipBound = map[Action]bool{
	ActionEditItem:    true,
	ActionDeleteItem:  true,
	ActionDeliverItem: true,
	ActionArchiveItem: true,
}

type Decision struct {
	Allowed bool
	Reason  string
}

const (
	ReasonSuperuser         = "superuser"
	ReasonRole              = "role"
	ReasonOwner             = "owner"
	ReasonNotOwner          = "not_owner"
	ReasonMissingPermission = "missing_permission"
	ReasonAdminOnly         = "admin_only"
	ReasonDefaultDeny       = "default_deny"
)

func allow(reason string) Decision { return Decision{Allowed: true, Reason: reason} }
func deny(reason string) Decision  { return Decision{Allowed: false, Reason: reason} }

// Decide evaluates the policy for a user attempting an action. For
// ownership-bound actions ownerID is the foundBy reference of the stored
// resource; for collection-level actions it is uuid.Nil.
//
// Rules, in priority order: admins may do anything; supervisors may do any
// item action but no user or permission management; employees need the
// action's catalog permission and, for item writes, ownership. Anything
// else is denied.
func Decide(user entity.User, action Action, ownerID uuid.UUID) Decision {
	if user.Role == entity.RoleAdmin {
		return allow(ReasonSuperuser)
	}

	if action == ActionRevertItem || action == ActionManageUsers || action == ActionManagePerms {
		return deny(ReasonAdminOnly)
	}

	if user.Role == entity.RoleSupervisor {
		return allow(ReasonRole)
	}

	if user.Role == entity.RoleEmployee {
		perm, ok := permissionFor[action]
		if !ok {
			return deny(ReasonDefaultDeny)
		}

		if !user.HasPermission(perm) {
			return deny(ReasonMissingPermission)
		}

		if ownershipBound[action] && ownerID != user.ID {
			return deny(ReasonNotOwner)
		}

		if ownershipBound[action] {
			return allow(ReasonOwner)
		}

		return allow(ReasonRole)
	}

	return deny(ReasonDefaultDeny)
}
