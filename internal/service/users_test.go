package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/aeroops/lostfound/internal/entity"
)

func TestService_Users_Authorization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  entity.User
		allowed bool
	}{
		{"admin", testUser(entity.RoleAdmin), true},
		{"supervisor", testUser(entity.RoleSupervisor), true},
		{"employee with view_users", testUser(entity.RoleEmployee, entity.PermViewUsers), true},
		{"plain employee", testUser(entity.RoleEmployee), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			ts := NewTestService(t)
			ctx := ctxWithUser(tt.caller)

			if tt.allowed {
				ts.repo.EXPECT().ListUsers(ctx).Return([]entity.User{tt.caller}, nil)
			}

			users, err := ts.s.Users(ctx)
			if !tt.allowed {
				r.ErrorIs(err, entity.ErrForbidden)

				return
			}

			r.NoError(err)
			r.Len(users, 1)
		})
	}
}

func TestService_UserByID_SelfAlwaysAllowed(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	employee := testUser(entity.RoleEmployee)
	ctx := ctxWithUser(employee)

	ts.repo.EXPECT().UserByID(ctx, employee.ID).Return(employee, nil)

	got, err := ts.s.UserByID(ctx, employee.ID)
	r.NoError(err)
	r.Equal(employee.ID, got.ID)

	_, err = ts.s.UserByID(ctx, uuid.Must(uuid.NewV4()))
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_SetUserRole(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	admin := testUser(entity.RoleAdmin)
	ctx := ctxWithUser(admin)
	target := testUser(entity.RoleEmployee)

	ts.repo.EXPECT().UpdateUserRole(ctx, target.ID, entity.RoleSupervisor).Return(nil)
	ts.repo.EXPECT().UserByID(ctx, target.ID).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (entity.User, error) {
			target.Role = entity.RoleSupervisor

			return target, nil
		})

	got, err := ts.s.SetUserRole(ctx, target.ID, entity.RoleSupervisor)
	r.NoError(err)
	r.Equal(entity.RoleSupervisor, got.Role)
}

func TestService_SetUserRole_Denied(t *testing.T) {
	t.Parallel()

	admin := testUser(entity.RoleAdmin)
	supervisor := testUser(entity.RoleSupervisor)

	tests := []struct {
		name   string
		caller entity.User
		target uuid.UUID
		role   entity.Role
	}{
		{"supervisor cannot manage users", supervisor, uuid.Must(uuid.NewV4()), entity.RoleSupervisor},
		{"admin cannot change own role", admin, admin.ID, entity.RoleEmployee},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			ts := NewTestService(t)

			_, err := ts.s.SetUserRole(ctxWithUser(tt.caller), tt.target, tt.role)
			r.ErrorIs(err, entity.ErrForbidden)
		})
	}
}

func TestService_SetUserPermissions(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	admin := testUser(entity.RoleAdmin)
	ctx := ctxWithUser(admin)
	target := testUser(entity.RoleEmployee)

	names := []string{entity.PermViewItems, entity.PermDeliverItems}
	resolved := []entity.Permission{
		{ID: uuid.Must(uuid.NewV4()), Name: entity.PermViewItems},
		{ID: uuid.Must(uuid.NewV4()), Name: entity.PermDeliverItems},
	}

	ts.repo.EXPECT().PermissionsByNames(ctx, names).Return(resolved, nil)
	ts.repo.EXPECT().UserByID(ctx, target.ID).Return(target, nil)
	ts.repo.EXPECT().ReplaceUserPermissions(ctx, target.ID, resolved).Return(nil)
	ts.repo.EXPECT().UserByID(ctx, target.ID).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (entity.User, error) {
			target.Permissions = resolved

			return target, nil
		})

	got, err := ts.s.SetUserPermissions(ctx, target.ID, names)
	r.NoError(err)
	r.Len(got.Permissions, 2)
}

func TestService_SetUserPermissions_UnknownName(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	admin := testUser(entity.RoleAdmin)
	ctx := ctxWithUser(admin)

	names := []string{"no_such_permission"}

	ts.repo.EXPECT().PermissionsByNames(ctx, names).
		Return(nil, fmt.Errorf("%w: permission %q", entity.ErrNotFound, "no_such_permission"))

	_, err := ts.s.SetUserPermissions(ctx, uuid.Must(uuid.NewV4()), names)
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
	r.Contains(err.Error(), "no_such_permission")
}
