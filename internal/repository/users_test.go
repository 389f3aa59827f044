package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/repository"
)

type UsersRepositoryTestSuite struct {
	suite.Suite
	repo *repository.Repository
}

func (ts *UsersRepositoryTestSuite) SetupTest() {
	ts.repo = repository.New(repository.SetupTestDatabase(ts.T()))
}

func TestUsersRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(UsersRepositoryTestSuite))
}

func (ts *UsersRepositoryTestSuite) newUser(employeeNumber string, permissions ...string) entity.User {
	ctx := context.Background()

	user := entity.User{
		ID:             uuid.Must(uuid.NewV4()),
		EmployeeNumber: employeeNumber,
		FirstName:      "Lena",
		LastName:       "Moreau",
		PasswordHash:   "$2a$10$fakefakefakefakefakefak",
		Role:           entity.RoleEmployee,
		CreatedAt:      time.Now(),
	}

	if len(permissions) > 0 {
		resolved, err := ts.repo.PermissionsByNames(ctx, permissions)
		ts.Require().NoError(err)

		user.Permissions = resolved
	}

	return user
}

func (ts *UsersRepositoryTestSuite) TestCreateAndFindUser() {
	ctx := context.Background()

	user := ts.newUser("AC10001", entity.PermViewItems, entity.PermAddItems)

	err := ts.repo.CreateUser(ctx, user)
	ts.Require().NoError(err)

	got, err := ts.repo.UserByEmployeeNumber(ctx, "AC10001")
	ts.Require().NoError(err)
	ts.Equal(user.ID, got.ID)
	ts.Equal(user.Role, got.Role)
	ts.Equal(user.PasswordHash, got.PasswordHash)
	ts.Len(got.Permissions, 2)

	byID, err := ts.repo.UserByID(ctx, user.ID)
	ts.Require().NoError(err)
	ts.Equal(got.EmployeeNumber, byID.EmployeeNumber)
}

func (ts *UsersRepositoryTestSuite) TestCreateUser_DuplicateEmployeeNumber() {
	ctx := context.Background()

	first := ts.newUser("AC10002")
	ts.Require().NoError(ts.repo.CreateUser(ctx, first))

	second := ts.newUser("AC10002")
	err := ts.repo.CreateUser(ctx, second)
	ts.Require().ErrorIs(err, entity.ErrAlreadyExists)
}

func (ts *UsersRepositoryTestSuite) TestUserByEmployeeNumber_NotFound() {
	_, err := ts.repo.UserByEmployeeNumber(context.Background(), "AC99999")
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *UsersRepositoryTestSuite) TestUpdateUserRole() {
	ctx := context.Background()

	user := ts.newUser("AC10003")
	ts.Require().NoError(ts.repo.CreateUser(ctx, user))

	err := ts.repo.UpdateUserRole(ctx, user.ID, entity.RoleSupervisor)
	ts.Require().NoError(err)

	got, err := ts.repo.UserByID(ctx, user.ID)
	ts.Require().NoError(err)
	ts.Equal(entity.RoleSupervisor, got.Role)

	err = ts.repo.UpdateUserRole(ctx, uuid.Must(uuid.NewV4()), entity.RoleAdmin)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *UsersRepositoryTestSuite) TestReplaceUserPermissions() {
	ctx := context.Background()

	user := ts.newUser("AC10004", entity.PermViewItems)
	ts.Require().NoError(ts.repo.CreateUser(ctx, user))

	replacement, err := ts.repo.PermissionsByNames(ctx, []string{entity.PermDeliverItems, entity.PermViewUsers})
	ts.Require().NoError(err)

	// Applying the same replacement twice must land on the same state.
	for i := 0; i < 2; i++ {
		err = ts.repo.ReplaceUserPermissions(ctx, user.ID, replacement)
		ts.Require().NoError(err)
	}

	got, err := ts.repo.UserByID(ctx, user.ID)
	ts.Require().NoError(err)
	ts.Len(got.Permissions, 2)

	names := []string{got.Permissions[0].Name, got.Permissions[1].Name}
	ts.Contains(names, entity.PermDeliverItems)
	ts.Contains(names, entity.PermViewUsers)
}

func (ts *UsersRepositoryTestSuite) TestDeleteUser() {
	ctx := context.Background()

	user := ts.newUser("AC10005", entity.PermViewItems)
	ts.Require().NoError(ts.repo.CreateUser(ctx, user))

	err := ts.repo.DeleteUser(ctx, user.ID)
	ts.Require().NoError(err)

	_, err = ts.repo.UserByID(ctx, user.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	err = ts.repo.DeleteUser(ctx, user.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *UsersRepositoryTestSuite) TestUserSummariesByIDs() {
	ctx := context.Background()

	user := ts.newUser("AC10006")
	ts.Require().NoError(ts.repo.CreateUser(ctx, user))

	missing := uuid.Must(uuid.NewV4())

	summaries, err := ts.repo.UserSummariesByIDs(ctx, []uuid.UUID{user.ID, missing})
	ts.Require().NoError(err)
	ts.Len(summaries, 1)
	ts.Equal(user.EmployeeNumber, summaries[user.ID].EmployeeNumber)

	_, ok := summaries[missing]
	ts.False(ok, "missing ids are simply absent")
}

func (ts *UsersRepositoryTestSuite) TestPermissionsCatalog() {
	ctx := context.Background()

	all, err := ts.repo.ListPermissions(ctx)
	ts.Require().NoError(err)
	ts.GreaterOrEqual(len(all), 6, "seeded catalog is present")

	resolved, err := ts.repo.PermissionsByNames(ctx, []string{entity.PermEditItems, entity.PermViewItems})
	ts.Require().NoError(err)
	ts.Require().Len(resolved, 2)
	ts.Equal(entity.PermEditItems, resolved[0].Name, "input order is preserved")
	ts.Equal(entity.PermViewItems, resolved[1].Name)

	_, err = ts.repo.PermissionsByNames(ctx, []string{"no_such_permission"})
	ts.Require().ErrorIs(err, entity.ErrNotFound)
	ts.Contains(err.Error(), "no_such_permission")
}

func (ts *UsersRepositoryTestSuite) TestPermissionHolders() {
	ctx := context.Background()

	user := ts.newUser("AC10007", entity.PermDeliverItems)
	ts.Require().NoError(ts.repo.CreateUser(ctx, user))

	resolved, err := ts.repo.PermissionsByNames(ctx, []string{entity.PermDeliverItems})
	ts.Require().NoError(err)

	holders, err := ts.repo.PermissionHolders(ctx, resolved[0].ID)
	ts.Require().NoError(err)
	ts.Require().Len(holders, 1)
	ts.Equal(user.EmployeeNumber, holders[0].EmployeeNumber)
}
