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

type ItemsRepositoryTestSuite struct {
	suite.Suite
	repo *repository.Repository
}

func (ts *ItemsRepositoryTestSuite) SetupTest() {
	ts.repo = repository.New(repository.SetupTestDatabase(ts.T()))
}

func TestItemsRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(ItemsRepositoryTestSuite))
}

func (ts *ItemsRepositoryTestSuite) createUser(employeeNumber string) entity.User {
	user := entity.User{
		ID:             uuid.Must(uuid.NewV4()),
		EmployeeNumber: employeeNumber,
		FirstName:      "Omar",
		LastName:       "Haddad",
		PasswordHash:   "$2a$10$fakefakefakefakefakefak",
		Role:           entity.RoleEmployee,
		CreatedAt:      time.Now(),
	}

	ts.Require().NoError(ts.repo.CreateUser(context.Background(), user))

	return user
}

func (ts *ItemsRepositoryTestSuite) newLostItem(foundBy uuid.UUID, mutate ...func(*entity.LostItem)) entity.LostItem {
	item := entity.LostItem{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Noise-cancelling headphones",
		Description:  "Silver, in a black case",
		Location:     "Seat 14A",
		Category:     "electronics",
		FlightNumber: "AC880",
		DateFound:    time.Date(2026, 5, 2, 16, 45, 0, 0, time.UTC),
		Images: []entity.Image{
			{PublicID: "lf/h1", URL: "https://img.example/h1", ThumbnailURL: "https://img.example/h1_t"},
		},
		Status:    entity.StatusOnHand,
		FoundBy:   entity.NewUserRef(foundBy),
		CreatedAt: time.Now(),
	}

	for _, m := range mutate {
		m(&item)
	}

	ts.Require().NoError(ts.repo.CreateLostItem(context.Background(), item))

	return item
}

func (ts *ItemsRepositoryTestSuite) TestCreateAndFindLostItem() {
	ctx := context.Background()

	reporter := ts.createUser("AC20001")
	item := ts.newLostItem(reporter.ID)

	got, err := ts.repo.LostItemByID(ctx, item.ID)
	ts.Require().NoError(err)
	ts.Equal(item.Name, got.Name)
	ts.Equal(item.FlightNumber, got.FlightNumber)
	ts.Equal(entity.StatusOnHand, got.Status)
	ts.Equal(reporter.ID, got.FoundBy.ID)
	ts.Require().Len(got.Images, 1)
	ts.Equal("lf/h1", got.Images[0].PublicID)
	ts.True(got.Supervisor.ID.IsNil(), "absent supervisor reads back as nil")
	ts.WithinDuration(item.DateFound, got.DateFound, time.Second)
}

func (ts *ItemsRepositoryTestSuite) TestLostItemByID_NotFound() {
	_, err := ts.repo.LostItemByID(context.Background(), uuid.Must(uuid.NewV4()))
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *ItemsRepositoryTestSuite) TestListLostItems_FiltersAndPaging() {
	ctx := context.Background()

	reporter := ts.createUser("AC20002")
	other := ts.createUser("AC20003")

	ts.newLostItem(reporter.ID, func(i *entity.LostItem) {
		i.FlightNumber = "AC100"
		i.DateFound = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	ts.newLostItem(reporter.ID, func(i *entity.LostItem) {
		i.FlightNumber = "AC100"
		i.Status = entity.StatusInProcess
		i.DateFound = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	})
	ts.newLostItem(other.ID, func(i *entity.LostItem) {
		i.FlightNumber = "AC200"
		i.DateFound = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	})

	base := entity.ItemsFilter{
		Page:    1,
		Limit:   10,
		SortBy:  entity.SortByDateFound,
		OrderBy: entity.DESC,
	}

	items, total, err := ts.repo.ListLostItems(ctx, base)
	ts.Require().NoError(err)
	ts.Equal(3, total)
	ts.Require().Len(items, 3)
	ts.True(items[0].DateFound.After(items[1].DateFound), "newest first")

	byFlight := base
	byFlight.FlightNumber = "AC100"

	items, total, err = ts.repo.ListLostItems(ctx, byFlight)
	ts.Require().NoError(err)
	ts.Equal(2, total)
	ts.Len(items, 2)

	byStatus := base
	byStatus.Status = entity.StatusInProcess

	_, total, err = ts.repo.ListLostItems(ctx, byStatus)
	ts.Require().NoError(err)
	ts.Equal(1, total)

	byReporter := base
	byReporter.FoundBy = other.ID

	_, total, err = ts.repo.ListLostItems(ctx, byReporter)
	ts.Require().NoError(err)
	ts.Equal(1, total)

	paged := base
	paged.Limit = 2
	paged.Page = 2

	items, total, err = ts.repo.ListLostItems(ctx, paged)
	ts.Require().NoError(err)
	ts.Equal(3, total)
	ts.Len(items, 1, "second page holds the remainder")

	empty := base
	empty.FlightNumber = "XX000"

	items, total, err = ts.repo.ListLostItems(ctx, empty)
	ts.Require().NoError(err)
	ts.Zero(total)
	ts.NotNil(items)
	ts.Empty(items)
}

func (ts *ItemsRepositoryTestSuite) TestUpdateLostItem() {
	ctx := context.Background()

	reporter := ts.createUser("AC20004")
	supervisor := ts.createUser("AC20005")
	item := ts.newLostItem(reporter.ID)

	item.Status = entity.StatusInProcess
	item.Location = "Storage room 3"
	item.Supervisor = entity.NewUserRef(supervisor.ID)

	ts.Require().NoError(ts.repo.UpdateLostItem(ctx, item))

	got, err := ts.repo.LostItemByID(ctx, item.ID)
	ts.Require().NoError(err)
	ts.Equal(entity.StatusInProcess, got.Status)
	ts.Equal("Storage room 3", got.Location)
	ts.Equal(supervisor.ID, got.Supervisor.ID)

	missing := item
	missing.ID = uuid.Must(uuid.NewV4())
	ts.Require().ErrorIs(ts.repo.UpdateLostItem(ctx, missing), entity.ErrNotFound)
}

func deliveredFromLost(item entity.LostItem, deliveredBy uuid.UUID) entity.DeliveredItem {
	return entity.DeliveredItem{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         item.Name,
		Description:  item.Description,
		Location:     item.Location,
		Category:     item.Category,
		FlightNumber: item.FlightNumber,
		DateFound:    item.DateFound,
		Images:       item.Images,
		Customer: entity.Customer{
			Name:           "Paulo Mendes",
			Email:          "paulo@example.com",
			Phone:          "+1 514 555 0199",
			Identification: "passport Z900100",
		},
		Signature:   "data:image/png;base64,iVBOR",
		Notes:       "picked up at arrivals",
		FoundBy:     entity.NewUserRef(item.FoundBy.ID),
		DeliveredBy: entity.NewUserRef(deliveredBy),
		DeliveredAt: time.Now(),
	}
}

// The phase move must be atomic: after it, the item exists in exactly one
// collection.
func (ts *ItemsRepositoryTestSuite) TestMoveToDeliveredAndRevert() {
	ctx := context.Background()

	reporter := ts.createUser("AC20006")
	agent := ts.createUser("AC20007")
	item := ts.newLostItem(reporter.ID)

	delivered := deliveredFromLost(item, agent.ID)

	ts.Require().NoError(ts.repo.MoveToDelivered(ctx, delivered, item.ID))

	_, err := ts.repo.LostItemByID(ctx, item.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound, "lost record is gone")

	got, err := ts.repo.DeliveredItemByID(ctx, delivered.ID)
	ts.Require().NoError(err)
	ts.Equal(delivered.Customer, got.Customer)
	ts.Equal(delivered.Signature, got.Signature)
	ts.Equal(reporter.ID, got.FoundBy.ID)
	ts.Equal(agent.ID, got.DeliveredBy.ID)
	ts.False(got.Archived)
	ts.WithinDuration(item.DateFound, got.DateFound, time.Second)

	// Moving a second time must fail: the lost record no longer exists.
	err = ts.repo.MoveToDelivered(ctx, deliveredFromLost(item, agent.ID), item.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	reverted := entity.LostItem{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         got.Name,
		Description:  got.Description,
		Location:     got.Location,
		Category:     got.Category,
		FlightNumber: got.FlightNumber,
		DateFound:    got.DateFound,
		Images:       got.Images,
		Status:       entity.StatusOnHand,
		FoundBy:      entity.NewUserRef(got.FoundBy.ID),
		CreatedAt:    time.Now(),
	}

	ts.Require().NoError(ts.repo.RevertToLost(ctx, reverted, delivered.ID))

	_, err = ts.repo.DeliveredItemByID(ctx, delivered.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound, "delivery record is gone")

	back, err := ts.repo.LostItemByID(ctx, reverted.ID)
	ts.Require().NoError(err)
	ts.Equal(entity.StatusOnHand, back.Status)
	ts.WithinDuration(item.DateFound, back.DateFound, time.Second, "found date survives the round trip")
}

func (ts *ItemsRepositoryTestSuite) TestListDeliveredItems_ArchivedExcludedByDefault() {
	ctx := context.Background()

	reporter := ts.createUser("AC20008")
	item := ts.newLostItem(reporter.ID)
	delivered := deliveredFromLost(item, reporter.ID)

	ts.Require().NoError(ts.repo.MoveToDelivered(ctx, delivered, item.ID))
	ts.Require().NoError(ts.repo.SetDeliveredItemArchived(ctx, delivered.ID, true))

	filter := entity.ItemsFilter{
		Page:    1,
		Limit:   10,
		SortBy:  entity.SortByDeliveredA,
		OrderBy: entity.DESC,
	}

	_, total, err := ts.repo.ListDeliveredItems(ctx, filter)
	ts.Require().NoError(err)
	ts.Zero(total)

	filter.IncludeArchived = true

	items, total, err := ts.repo.ListDeliveredItems(ctx, filter)
	ts.Require().NoError(err)
	ts.Equal(1, total)
	ts.Require().Len(items, 1)
	ts.True(items[0].Archived)

	ts.Require().NoError(ts.repo.SetDeliveredItemArchived(ctx, delivered.ID, false))

	filter.IncludeArchived = false

	_, total, err = ts.repo.ListDeliveredItems(ctx, filter)
	ts.Require().NoError(err)
	ts.Equal(1, total)
}

func (ts *ItemsRepositoryTestSuite) TestExpandRefs_DanglingReference() {
	ctx := context.Background()

	reporter := ts.createUser("AC20009")
	item := ts.newLostItem(reporter.ID)

	ts.Require().NoError(ts.repo.DeleteUser(ctx, reporter.ID))

	got, err := ts.repo.LostItemByID(ctx, item.ID)
	ts.Require().NoError(err)

	items := []entity.LostItem{got}
	err = ts.repo.ExpandLostItemRefs(ctx, items, entity.Expand{entity.ExpandFoundBy})
	ts.Require().NoError(err, "reads never fail on a dangling reference")

	ts.Require().NotNil(items[0].FoundBy.User)
	ts.Equal(entity.UnknownUser(), *items[0].FoundBy.User)
}

func (ts *ItemsRepositoryTestSuite) TestExpandRefs_Resolved() {
	ctx := context.Background()

	reporter := ts.createUser("AC20010")
	supervisor := ts.createUser("AC20011")

	item := ts.newLostItem(reporter.ID, func(i *entity.LostItem) {
		i.Supervisor = entity.NewUserRef(supervisor.ID)
	})

	got, err := ts.repo.LostItemByID(ctx, item.ID)
	ts.Require().NoError(err)
	ts.Nil(got.FoundBy.User, "expansion is strictly opt-in")

	items := []entity.LostItem{got}
	err = ts.repo.ExpandLostItemRefs(ctx, items, entity.Expand{entity.ExpandFoundBy, entity.ExpandSupervisor})
	ts.Require().NoError(err)

	ts.Require().NotNil(items[0].FoundBy.User)
	ts.Equal(reporter.EmployeeNumber, items[0].FoundBy.User.EmployeeNumber)
	ts.Require().NotNil(items[0].Supervisor.User)
	ts.Equal(supervisor.EmployeeNumber, items[0].Supervisor.User.EmployeeNumber)
}
