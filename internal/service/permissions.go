package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/authz"
	"github.com/aeroops/lostfound/internal/entity"
)

var permissionNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]{2,49}$`)

func validatePermissionName(name string) error {
	if !permissionNameRegexp.MatchString(name) {
		return fmt.Errorf("%w: permission name must be a lowercase snake_case identifier", entity.ErrIncorrectRequestBody)
	}

	return nil
}

// Permissions lists the catalog. Any authenticated user may read it; the
// names already appear on every user payload.
func (s *Service) Permissions(ctx context.Context) ([]entity.Permission, error) {
	if _, err := entity.UserFromContext(ctx); err != nil {
		return nil, err
	}

	return s.repo.ListPermissions(ctx)
}

func (s *Service) PermissionByID(ctx context.Context, id uuid.UUID) (entity.Permission, error) {
	if _, err := entity.UserFromContext(ctx); err != nil {
		return entity.Permission{}, err
	}

	return s.repo.PermissionByID(ctx, id)
}

func (s *Service) CreatePermission(ctx context.Context, name, description string) (entity.Permission, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Permission{}, err
	}

	decision := authz.Decide(caller, authz.ActionManagePerms, uuid.Nil)
	if !decision.Allowed {
		return entity.Permission{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	name = strings.TrimSpace(name)
	if err = validatePermissionName(name); err != nil {
		return entity.Permission{}, err
	}

	permission := entity.Permission{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        name,
		Description: strings.TrimSpace(description),
	}

	err = s.repo.CreatePermission(ctx, permission)
	if err != nil {
		return entity.Permission{}, fmt.Errorf("create permission: %w", err)
	}

	slog.InfoContext(ctx, "permission created", "permission", permission.Name, "by", caller.ID)

	return permission, nil
}

func (s *Service) UpdatePermission(ctx context.Context, id uuid.UUID, name, description string) (entity.Permission, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Permission{}, err
	}

	decision := authz.Decide(caller, authz.ActionManagePerms, uuid.Nil)
	if !decision.Allowed {
		return entity.Permission{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	name = strings.TrimSpace(name)
	if err = validatePermissionName(name); err != nil {
		return entity.Permission{}, err
	}

	permission := entity.Permission{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
	}

	err = s.repo.UpdatePermission(ctx, permission)
	if err != nil {
		return entity.Permission{}, fmt.Errorf("update permission: %w", err)
	}

	return permission, nil
}

// DeletePermission refuses to remove a permission any user still holds
// and reports every holder so the caller can revoke the grants first.
func (s *Service) DeletePermission(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	decision := authz.Decide(caller, authz.ActionManagePerms, uuid.Nil)
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	permission, err := s.repo.PermissionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find permission: %w", err)
	}

	holders, err := s.repo.PermissionHolders(ctx, id)
	if err != nil {
		return fmt.Errorf("list permission holders: %w", err)
	}

	if len(holders) > 0 {
		return &entity.PermissionInUseError{Permission: permission.Name, Holders: holders}
	}

	err = s.repo.DeletePermission(ctx, id)
	if err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}

	slog.InfoContext(ctx, "permission deleted", "permission", permission.Name, "by", caller.ID)

	return nil
}
