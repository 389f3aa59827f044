package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/authz"
	"github.com/aeroops/lostfound/internal/entity"
)

func (s *Service) Users(ctx context.Context) ([]entity.User, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	decision := authz.Decide(caller, authz.ActionViewUsers, uuid.Nil)
	if !decision.Allowed {
		return nil, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	return s.repo.ListUsers(ctx)
}

// UserByID returns a single account. A user may always read their own
// record; reading others requires the view permission.
func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, err
	}

	if caller.ID != id {
		decision := authz.Decide(caller, authz.ActionViewUsers, uuid.Nil)
		if !decision.Allowed {
			return entity.User{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
		}
	}

	return s.repo.UserByID(ctx, id)
}

func (s *Service) SetUserRole(ctx context.Context, id uuid.UUID, role entity.Role) (entity.User, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, err
	}

	decision := authz.Decide(caller, authz.ActionManageUsers, uuid.Nil)
	if !decision.Allowed {
		return entity.User{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	if !role.IsValid() {
		return entity.User{}, fmt.Errorf("%w: unknown role %q", entity.ErrIncorrectRequestBody, role)
	}

	if caller.ID == id {
		return entity.User{}, fmt.Errorf("%w: cannot change own role", entity.ErrForbidden)
	}

	err = s.repo.UpdateUserRole(ctx, id, role)
	if err != nil {
		return entity.User{}, fmt.Errorf("update role: %w", err)
	}

	slog.InfoContext(ctx, "user role changed", "user_id", id, "role", role, "by", caller.ID)

	return s.repo.UserByID(ctx, id)
}

// DeleteUser removes the account. Items the user reported keep their bare
// reference and resolve to the placeholder identity on expanded reads.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	decision := authz.Decide(caller, authz.ActionManageUsers, uuid.Nil)
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	if caller.ID == id {
		return fmt.Errorf("%w: cannot delete own account", entity.ErrForbidden)
	}

	err = s.repo.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", id, "by", caller.ID)

	return nil
}

// SetUserPermissions replaces the whole grant set. Every name must exist
// in the catalog; an unknown one fails the call naming it, and applying
// the same set twice is a no-op.
func (s *Service) SetUserPermissions(ctx context.Context, userID uuid.UUID, names []string) (entity.User, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, err
	}

	decision := authz.Decide(caller, authz.ActionManagePerms, uuid.Nil)
	if !decision.Allowed {
		return entity.User{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	permissions, err := s.repo.PermissionsByNames(ctx, names)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, fmt.Errorf("%w: %s", entity.ErrIncorrectRequestBody, err)
		}

		return entity.User{}, fmt.Errorf("resolve permissions: %w", err)
	}

	if _, err = s.repo.UserByID(ctx, userID); err != nil {
		return entity.User{}, fmt.Errorf("find user: %w", err)
	}

	err = s.repo.ReplaceUserPermissions(ctx, userID, permissions)
	if err != nil {
		return entity.User{}, fmt.Errorf("replace permissions: %w", err)
	}

	slog.InfoContext(ctx, "user permissions replaced", "user_id", userID, "permissions", names, "by", caller.ID)

	return s.repo.UserByID(ctx, userID)
}
