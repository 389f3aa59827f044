package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aeroops/lostfound/internal/authz"
	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/token"
)

type RegisterInput struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Password       string
}

// Register creates an employee-role account with the default permission
// set. Role escalation happens separately through SetUserRole.
func (s *Service) Register(ctx context.Context, input RegisterInput) (entity.User, error) {
	if err := ValidateEmployeeNumber(input.EmployeeNumber); err != nil {
		return entity.User{}, err
	}

	if err := ValidateName(input.FirstName); err != nil {
		return entity.User{}, fmt.Errorf("first name: %w", err)
	}

	if err := ValidateName(input.LastName); err != nil {
		return entity.User{}, fmt.Errorf("last name: %w", err)
	}

	if err := ValidatePassword(input.Password); err != nil {
		return entity.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	permissions, err := s.repo.PermissionsByNames(ctx, entity.DefaultEmployeePermissions())
	if err != nil {
		return entity.User{}, fmt.Errorf("load default permissions: %w", err)
	}

	user := entity.User{
		ID:             uuid.Must(uuid.NewV4()),
		EmployeeNumber: input.EmployeeNumber,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PasswordHash:   string(hash),
		Role:           entity.RoleEmployee,
		Permissions:    permissions,
		CreatedAt:      time.Now(),
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "employee_number", user.EmployeeNumber)

	return user, nil
}

// Login checks the credentials and mints an access token. Unknown
// employee number and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, employeeNumber, password string) (string, entity.User, error) {
	user, err := s.repo.UserByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", entity.User{}, fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
		}

		return "", entity.User{}, fmt.Errorf("find user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		slog.WarnContext(ctx, "failed login attempt", "employee_number", employeeNumber, "ip", entity.IPFromCtx(ctx))

		return "", entity.User{}, fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized)
	}

	accessToken, err := token.Mint(user, []byte(s.cfg.JWT.Secret), s.cfg.JWT.AccessTokenExpiry)
	if err != nil {
		return "", entity.User{}, fmt.Errorf("mint token: %w", err)
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "employee_number", user.EmployeeNumber)

	return accessToken, user, nil
}

// ValidateToken verifies the signature and expiry, then loads the CURRENT
// user record so that a deleted account or a changed role invalidates the
// token's embedded claims immediately.
func (s *Service) ValidateToken(ctx context.Context, raw string) (entity.User, error) {
	claims, err := token.Verify(raw, []byte(s.cfg.JWT.Secret))
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.repo.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, fmt.Errorf("%w: user no longer exists", entity.ErrUnauthorized)
		}

		return entity.User{}, fmt.Errorf("load token user: %w", err)
	}

	return user, nil
}

// ChangePassword lets a user rotate their own password after proving the
// current one, and lets an admin reset anyone's without it.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	if err = ValidatePassword(newPassword); err != nil {
		return err
	}

	target, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if caller.ID == target.ID {
		err = bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(currentPassword))
		if err != nil {
			return fmt.Errorf("%w: current password mismatch", entity.ErrForbidden)
		}
	} else {
		decision := authz.Decide(caller, authz.ActionManageUsers, uuid.Nil)
		if !decision.Allowed {
			return fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.repo.UpdateUserPassword(ctx, target.ID, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	slog.InfoContext(ctx, "password changed", "user_id", target.ID, "by", caller.ID)

	return nil
}
