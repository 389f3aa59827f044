package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/service"
)

func lostItemFixture(foundBy uuid.UUID) entity.LostItem {
	return entity.LostItem{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Black leather wallet",
		Description:  "Found under seat 23C",
		Location:     "Gate B12",
		Category:     "wallets",
		FlightNumber: "AC123",
		DateFound:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Status:       entity.StatusOnHand,
		FoundBy:      entity.NewUserRef(foundBy),
		CreatedAt:    time.Now(),
	}
}

func deliverInput() service.DeliverItemInput {
	return service.DeliverItemInput{
		Customer: entity.Customer{
			Name:           "Ana Costa",
			Email:          "ana.costa@example.com",
			Phone:          "+1 514 555 0101",
			Identification: "passport X123456",
		},
		Signature: "data:image/png;base64,iVBOR",
		Notes:     "claimed at the counter",
	}
}

func TestService_ReportItem(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	employee := testUser(entity.RoleEmployee, entity.PermViewItems, entity.PermAddItems)
	ctx := ctxWithUser(employee)

	hosted := entity.Image{PublicID: "lf/abc", URL: "https://img.example/abc", ThumbnailURL: "https://img.example/abc_t"}

	ts.images.EXPECT().
		Upload(ctx, []byte("jpeg-bytes"), "image/jpeg", "wallet.jpg", "wallets", "AC123").
		Return(hosted, nil)
	ts.repo.EXPECT().CreateLostItem(ctx, gomock.Any()).Return(nil)
	ts.producer.EXPECT().SendItemReported(ctx, gomock.Any())

	item, err := ts.s.ReportItem(ctx, service.ReportItemInput{
		Name:         "Black leather wallet",
		Description:  "Found under seat 23C",
		Location:     "Gate B12",
		Category:     "wallets",
		FlightNumber: "ac-123",
		Images:       []service.ImageUpload{{Data: []byte("jpeg-bytes"), MimeType: "image/jpeg", OriginalName: "wallet.jpg"}},
	})
	r.NoError(err)
	r.Equal(entity.StatusOnHand, item.Status)
	r.Equal("AC123", item.FlightNumber, "flight number is normalized before storage")
	r.Equal(employee.ID, item.FoundBy.ID)
	r.Equal([]entity.Image{hosted}, item.Images)
	r.False(item.DateFound.IsZero())
}

func TestService_ReportItem_WithoutPermission(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	employee := testUser(entity.RoleEmployee, entity.PermViewItems)

	_, err := ts.s.ReportItem(ctxWithUser(employee), service.ReportItemInput{
		Name:         "Black leather wallet",
		FlightNumber: "AC123",
	})
	r.ErrorIs(err, entity.ErrForbidden)
}

func TestService_ReportItem_UploadFailurePurgesHosted(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	supervisor := testUser(entity.RoleSupervisor)
	ctx := ctxWithUser(supervisor)

	first := entity.Image{PublicID: "lf/first"}

	ts.images.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "one.jpg", gomock.Any(), gomock.Any()).Return(first, nil)
	ts.images.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "two.jpg", gomock.Any(), gomock.Any()).
		Return(entity.Image{}, errors.New("host down"))
	ts.images.EXPECT().Delete(ctx, "lf/first").Return(nil)

	_, err := ts.s.ReportItem(ctx, service.ReportItemInput{
		Name:         "Black leather wallet",
		FlightNumber: "AC123",
		Images: []service.ImageUpload{
			{OriginalName: "one.jpg"},
			{OriginalName: "two.jpg"},
		},
	})
	r.Error(err)
}

func TestService_EditItem(t *testing.T) {
	t.Parallel()

	owner := testUser(entity.RoleEmployee, entity.PermViewItems, entity.PermEditItems)
	stranger := testUser(entity.RoleEmployee, entity.PermViewItems, entity.PermEditItems)
	supervisor := testUser(entity.RoleSupervisor)

	inProcess := "in-process"
	delivered := "delivered"
	bogus := "misplaced"

	tests := []struct {
		name       string
		caller     entity.User
		input      service.EditItemInput
		wantStatus entity.ItemStatus
		wantErr    error
	}{
		{
			name:       "owner moves item to in-process",
			caller:     owner,
			input:      service.EditItemInput{Status: &inProcess},
			wantStatus: entity.StatusInProcess,
		},
		{
			name:       "supervisor edits someone else's item",
			caller:     supervisor,
			input:      service.EditItemInput{Status: &inProcess},
			wantStatus: entity.StatusInProcess,
		},
		{
			name:    "employee cannot edit a foreign item",
			caller:  stranger,
			input:   service.EditItemInput{Status: &inProcess},
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "delivered status requires the delivery operation",
			caller:  owner,
			input:   service.EditItemInput{Status: &delivered},
			wantErr: entity.ErrIncorrectRequestBody,
		},
		{
			name:    "unknown status vocabulary",
			caller:  owner,
			input:   service.EditItemInput{Status: &bogus},
			wantErr: entity.ErrIncorrectRequestBody,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			ts := NewTestService(t)
			ctx := ctxWithUser(tt.caller)
			stored := lostItemFixture(owner.ID)

			ts.repo.EXPECT().LostItemByID(ctx, stored.ID).Return(stored, nil)
			if tt.wantErr == nil {
				ts.repo.EXPECT().UpdateLostItem(ctx, gomock.Any()).Return(nil)
			}

			item, err := ts.s.EditItem(ctx, stored.ID, tt.input)
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)

				return
			}

			r.NoError(err)
			r.Equal(tt.wantStatus, item.Status)
		})
	}
}

// Walks an item through its whole life: reported on hand, moved to
// in-process, delivered, and finally reverted by an admin. The revert must
// bring it back on hand under a fresh id with the original found date.
func TestService_DeliverAndRevert(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)

	owner := testUser(entity.RoleEmployee,
		entity.PermViewItems, entity.PermAddItems, entity.PermEditItems, entity.PermDeliverItems)
	admin := testUser(entity.RoleAdmin)

	ownerCtx := ctxWithUser(owner)
	adminCtx := ctxWithUser(admin)

	stored := lostItemFixture(owner.ID)
	stored.Status = entity.StatusInProcess

	var moved entity.DeliveredItem

	ts.repo.EXPECT().LostItemByID(ownerCtx, stored.ID).Return(stored, nil)
	ts.repo.EXPECT().MoveToDelivered(ownerCtx, gomock.Any(), stored.ID).
		DoAndReturn(func(_ context.Context, d entity.DeliveredItem, _ uuid.UUID) error {
			moved = d

			return nil
		})
	ts.producer.EXPECT().SendItemDelivered(ownerCtx, gomock.Any())

	delivered, err := ts.s.DeliverItem(ownerCtx, stored.ID, deliverInput())
	r.NoError(err)
	r.Equal(moved.ID, delivered.ID)
	r.NotEqual(stored.ID, delivered.ID)
	r.Equal(stored.DateFound, delivered.DateFound)
	r.Equal(owner.ID, delivered.DeliveredBy.ID)
	r.Equal(owner.ID, delivered.FoundBy.ID)
	r.False(delivered.Archived)

	// Employees, even the owner, cannot undo a delivery.
	ts.repo.EXPECT().DeliveredItemByID(adminCtx, delivered.ID).Return(delivered, nil)
	ts.repo.EXPECT().RevertToLost(adminCtx, gomock.Any(), delivered.ID).Return(nil)

	_, err = ts.s.RevertItem(ownerCtx, delivered.ID)
	r.ErrorIs(err, entity.ErrForbidden)

	reverted, err := ts.s.RevertItem(adminCtx, delivered.ID)
	r.NoError(err)
	r.Equal(entity.StatusOnHand, reverted.Status)
	r.NotEqual(stored.ID, reverted.ID, "revert mints a fresh identifier")
	r.Equal(stored.DateFound, reverted.DateFound, "found date survives the round trip")
	r.Equal(owner.ID, reverted.FoundBy.ID)
}

func TestService_DeliverItem_MissingCustomerFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*service.DeliverItemInput)
	}{
		{"no name", func(in *service.DeliverItemInput) { in.Customer.Name = "" }},
		{"bad email", func(in *service.DeliverItemInput) { in.Customer.Email = "not-an-email" }},
		{"bad phone", func(in *service.DeliverItemInput) { in.Customer.Phone = "abc" }},
		{"no identification", func(in *service.DeliverItemInput) { in.Customer.Identification = " " }},
		{"no signature", func(in *service.DeliverItemInput) { in.Signature = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			ts := NewTestService(t)
			supervisor := testUser(entity.RoleSupervisor)
			ctx := ctxWithUser(supervisor)
			stored := lostItemFixture(uuid.Must(uuid.NewV4()))

			ts.repo.EXPECT().LostItemByID(ctx, stored.ID).Return(stored, nil)

			input := deliverInput()
			tt.mutate(&input)

			_, err := ts.s.DeliverItem(ctx, stored.ID, input)
			r.ErrorIs(err, entity.ErrIncorrectRequestBody)
		})
	}
}

func TestService_DeleteLostItem_PurgesImagesBestEffort(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	admin := testUser(entity.RoleAdmin)
	ctx := ctxWithUser(admin)

	stored := lostItemFixture(uuid.Must(uuid.NewV4()))
	stored.Images = []entity.Image{{PublicID: "lf/a"}, {PublicID: "lf/b"}}

	ts.repo.EXPECT().LostItemByID(ctx, stored.ID).Return(stored, nil)
	ts.repo.EXPECT().DeleteLostItem(ctx, stored.ID).Return(nil)
	ts.images.EXPECT().Delete(ctx, "lf/a").Return(errors.New("host down"))
	ts.images.EXPECT().Delete(ctx, "lf/b").Return(nil)

	err := ts.s.DeleteLostItem(ctx, stored.ID)
	r.NoError(err, "image host failures never fail the delete")
}

func TestService_LostItems_FilterDefaults(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	supervisor := testUser(entity.RoleSupervisor)
	ctx := ctxWithUser(supervisor)

	ts.repo.EXPECT().ListLostItems(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.ItemsFilter) ([]entity.LostItem, int, error) {
			r.Equal(uint64(1), filter.Page)
			r.Equal(uint64(service.DefaultPageLimit), filter.Limit)
			r.Equal(entity.SortByDateFound, filter.SortBy)
			r.Equal(entity.DESC, filter.OrderBy)

			return []entity.LostItem{}, 0, nil
		})

	items, total, err := ts.s.LostItems(ctx, entity.ItemsFilter{})
	r.NoError(err)
	r.Zero(total)
	r.NotNil(items)
}

// Sort fields belong to one collection each: a delivered-only column must
// not reach SQL against the lost table, and vice versa.
func TestService_Items_SortFieldPerCollection(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	supervisor := testUser(entity.RoleSupervisor)
	ctx := ctxWithUser(supervisor)

	_, _, err := ts.s.LostItems(ctx, entity.ItemsFilter{SortBy: entity.SortByDeliveredA})
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)

	_, _, err = ts.s.DeliveredItems(ctx, entity.ItemsFilter{SortBy: entity.SortByStatus})
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)

	ts.repo.EXPECT().ListDeliveredItems(ctx, gomock.Any()).Return([]entity.DeliveredItem{}, 0, nil)

	_, _, err = ts.s.DeliveredItems(ctx, entity.ItemsFilter{SortBy: entity.SortByDateFound})
	r.NoError(err, "the found date exists in both collections")
}

func TestService_LostItems_UnknownExpand(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	supervisor := testUser(entity.RoleSupervisor)

	_, _, err := ts.s.LostItems(ctxWithUser(supervisor), entity.ItemsFilter{Expand: entity.Expand{"owner"}})
	r.ErrorIs(err, entity.ErrIncorrectRequestBody)
}

func TestService_SetItemArchived(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ts := NewTestService(t)
	supervisor := testUser(entity.RoleSupervisor)
	ctx := ctxWithUser(supervisor)

	delivered := entity.DeliveredItem{
		ID:      uuid.Must(uuid.NewV4()),
		FoundBy: entity.NewUserRef(uuid.Must(uuid.NewV4())),
	}

	ts.repo.EXPECT().DeliveredItemByID(ctx, delivered.ID).Return(delivered, nil)
	ts.repo.EXPECT().SetDeliveredItemArchived(ctx, delivered.ID, true).Return(nil)

	r.NoError(ts.s.SetItemArchived(ctx, delivered.ID, true))
}
