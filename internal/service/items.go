package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/authz"
	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/pkg/broker"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ImageUpload is a photograph received from the client, not yet pushed to
// the image host.
type ImageUpload struct {
	Data         []byte
	MimeType     string
	OriginalName string
}

type ReportItemInput struct {
	Name         string
	Description  string
	Location     string
	Category     string
	FlightNumber string
	DateFound    time.Time
	Supervisor   uuid.UUID
	Images       []ImageUpload
}

// ReportItem registers a newly found item on hand. The caller becomes its
// foundBy owner and a notification event is published best-effort.
func (s *Service) ReportItem(ctx context.Context, input ReportItemInput) (entity.LostItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.LostItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionReportItem, uuid.Nil)
	if !decision.Allowed {
		return entity.LostItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	if err = ValidateItemName(input.Name); err != nil {
		return entity.LostItem{}, err
	}

	if err = ValidateDescription(input.Description); err != nil {
		return entity.LostItem{}, err
	}

	flightNumber := NormalizeFlightNumber(input.FlightNumber)
	if err = ValidateFlightNumber(flightNumber); err != nil {
		return entity.LostItem{}, err
	}

	dateFound := input.DateFound
	if dateFound.IsZero() {
		dateFound = time.Now()
	}

	images, err := s.uploadImages(ctx, input.Images, input.Category, flightNumber)
	if err != nil {
		return entity.LostItem{}, err
	}

	item := entity.LostItem{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         input.Name,
		Description:  input.Description,
		Location:     input.Location,
		Category:     input.Category,
		FlightNumber: flightNumber,
		DateFound:    dateFound,
		Images:       images,
		Status:       entity.StatusOnHand,
		FoundBy:      entity.NewUserRef(caller.ID),
		Supervisor:   entity.NewUserRef(input.Supervisor),
		CreatedAt:    time.Now(),
	}

	err = s.repo.CreateLostItem(ctx, item)
	if err != nil {
		s.purgeImages(ctx, images)

		return entity.LostItem{}, fmt.Errorf("create item: %w", err)
	}

	slog.InfoContext(ctx, "item reported", "item_id", item.ID, "flight", item.FlightNumber, "found_by", caller.ID)

	s.producer.SendItemReported(ctx, broker.ItemReportedEvent{
		ItemID:       item.ID,
		Name:         item.Name,
		FlightNumber: item.FlightNumber,
		FoundByID:    caller.ID,
		ReportedAt:   item.CreatedAt,
	})

	return item, nil
}

func (s *Service) LostItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.LostItem, int, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	decision := authz.Decide(caller, authz.ActionViewItems, uuid.Nil)
	if !decision.Allowed {
		return nil, 0, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	filter, err = normalizeFilter(filter, entity.SortByDateFound, lostSortFields)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.ListLostItems(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}

	if len(filter.Expand) > 0 {
		if err = s.repo.ExpandLostItemRefs(ctx, items, filter.Expand); err != nil {
			return nil, 0, fmt.Errorf("expand refs: %w", err)
		}
	}

	return items, total, nil
}

func (s *Service) LostItemByID(ctx context.Context, id uuid.UUID, expand entity.Expand) (entity.LostItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.LostItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionViewItems, uuid.Nil)
	if !decision.Allowed {
		return entity.LostItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	item, err := s.repo.LostItemByID(ctx, id)
	if err != nil {
		return entity.LostItem{}, err
	}

	if len(expand) > 0 {
		items := []entity.LostItem{item}
		if err = s.repo.ExpandLostItemRefs(ctx, items, expand); err != nil {
			return entity.LostItem{}, fmt.Errorf("expand refs: %w", err)
		}

		item = items[0]
	}

	return item, nil
}

// EditItemInput carries partial updates; nil fields keep the stored value.
type EditItemInput struct {
	Name         *string
	Description  *string
	Location     *string
	Category     *string
	FlightNumber *string
	Status       *string
	DateFound    *time.Time
	Supervisor   *uuid.UUID
}

// EditItem updates an on-hand item. The status vocabulary accepted here is
// limited to the pre-delivery states; moving an item to delivered goes
// through DeliverItem so the phase move stays transactional.
func (s *Service) EditItem(ctx context.Context, id uuid.UUID, input EditItemInput) (entity.LostItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.LostItem{}, err
	}

	item, err := s.repo.LostItemByID(ctx, id)
	if err != nil {
		return entity.LostItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionEditItem, item.FoundBy.ID)
	if !decision.Allowed {
		return entity.LostItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	if input.Name != nil {
		if err = ValidateItemName(*input.Name); err != nil {
			return entity.LostItem{}, err
		}

		item.Name = *input.Name
	}

	if input.Description != nil {
		if err = ValidateDescription(*input.Description); err != nil {
			return entity.LostItem{}, err
		}

		item.Description = *input.Description
	}

	if input.Location != nil {
		item.Location = *input.Location
	}

	if input.Category != nil {
		item.Category = *input.Category
	}

	if input.FlightNumber != nil {
		flightNumber := NormalizeFlightNumber(*input.FlightNumber)
		if err = ValidateFlightNumber(flightNumber); err != nil {
			return entity.LostItem{}, err
		}

		item.FlightNumber = flightNumber
	}

	if input.Status != nil {
		status, parseErr := entity.ParseItemStatus(*input.Status)
		if parseErr != nil {
			return entity.LostItem{}, parseErr
		}

		if status != entity.StatusOnHand && status != entity.StatusInProcess {
			return entity.LostItem{}, fmt.Errorf("%w: status %q requires the delivery operation", entity.ErrIncorrectRequestBody, status)
		}

		item.Status = status
	}

	if input.DateFound != nil {
		item.DateFound = *input.DateFound
	}

	if input.Supervisor != nil {
		item.Supervisor = entity.NewUserRef(*input.Supervisor)
	}

	err = s.repo.UpdateLostItem(ctx, item)
	if err != nil {
		return entity.LostItem{}, fmt.Errorf("update item: %w", err)
	}

	return item, nil
}

// AddItemImages uploads photographs to the image host and attaches them to
// an on-hand item.
func (s *Service) AddItemImages(ctx context.Context, id uuid.UUID, uploads []ImageUpload) (entity.LostItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.LostItem{}, err
	}

	item, err := s.repo.LostItemByID(ctx, id)
	if err != nil {
		return entity.LostItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionEditItem, item.FoundBy.ID)
	if !decision.Allowed {
		return entity.LostItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	images, err := s.uploadImages(ctx, uploads, item.Category, item.FlightNumber)
	if err != nil {
		return entity.LostItem{}, err
	}

	item.Images = append(item.Images, images...)

	err = s.repo.UpdateLostItem(ctx, item)
	if err != nil {
		s.purgeImages(ctx, images)

		return entity.LostItem{}, fmt.Errorf("update item: %w", err)
	}

	return item, nil
}

func (s *Service) RemoveItemImage(ctx context.Context, id uuid.UUID, publicID string) (entity.LostItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.LostItem{}, err
	}

	item, err := s.repo.LostItemByID(ctx, id)
	if err != nil {
		return entity.LostItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionEditItem, item.FoundBy.ID)
	if !decision.Allowed {
		return entity.LostItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	kept := make([]entity.Image, 0, len(item.Images))

	var removed *entity.Image

	for i := range item.Images {
		if item.Images[i].PublicID == publicID {
			removed = &item.Images[i]

			continue
		}

		kept = append(kept, item.Images[i])
	}

	if removed == nil {
		return entity.LostItem{}, fmt.Errorf("%w: image %q", entity.ErrNotFound, publicID)
	}

	item.Images = kept

	err = s.repo.UpdateLostItem(ctx, item)
	if err != nil {
		return entity.LostItem{}, fmt.Errorf("update item: %w", err)
	}

	s.purgeImages(ctx, []entity.Image{*removed})

	return item, nil
}

type DeliverItemInput struct {
	Customer       entity.Customer
	Signature      string
	Notes          string
	DeliveryImages []ImageUpload
}

// DeliverItem hands an on-hand item over to its owner. The delivery record
// is inserted and the lost record removed in a single database
// transaction, so a crash mid-move can never duplicate or lose the item.
func (s *Service) DeliverItem(ctx context.Context, id uuid.UUID, input DeliverItemInput) (entity.DeliveredItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.DeliveredItem{}, err
	}

	item, err := s.repo.LostItemByID(ctx, id)
	if err != nil {
		return entity.DeliveredItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionDeliverItem, item.FoundBy.ID)
	if !decision.Allowed {
		return entity.DeliveredItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	if err = ValidateCustomer(input.Customer); err != nil {
		return entity.DeliveredItem{}, err
	}

	if input.Signature == "" {
		return entity.DeliveredItem{}, fmt.Errorf("%w: customer signature is required", entity.ErrIncorrectRequestBody)
	}

	deliveryImages, err := s.uploadImages(ctx, input.DeliveryImages, item.Category, item.FlightNumber)
	if err != nil {
		return entity.DeliveredItem{}, err
	}

	delivered := entity.DeliveredItem{
		ID:             uuid.Must(uuid.NewV4()),
		Name:           item.Name,
		Description:    item.Description,
		Location:       item.Location,
		Category:       item.Category,
		FlightNumber:   item.FlightNumber,
		DateFound:      item.DateFound,
		Images:         item.Images,
		Customer:       input.Customer,
		Signature:      input.Signature,
		Notes:          input.Notes,
		DeliveryImages: deliveryImages,
		FoundBy:        entity.NewUserRef(item.FoundBy.ID),
		DeliveredBy:    entity.NewUserRef(caller.ID),
		DeliveredAt:    time.Now(),
	}

	err = s.repo.MoveToDelivered(ctx, delivered, item.ID)
	if err != nil {
		s.purgeImages(ctx, deliveryImages)

		return entity.DeliveredItem{}, fmt.Errorf("move to delivered: %w", err)
	}

	slog.InfoContext(ctx, "item delivered",
		"item_id", item.ID,
		"delivered_id", delivered.ID,
		"customer", input.Customer.Name,
		"delivered_by", caller.ID,
	)

	s.producer.SendItemDelivered(ctx, broker.ItemDeliveredEvent{
		ItemID:        delivered.ID,
		Name:          delivered.Name,
		FlightNumber:  delivered.FlightNumber,
		CustomerName:  delivered.Customer.Name,
		CustomerEmail: delivered.Customer.Email,
		DeliveredByID: caller.ID,
		DeliveredAt:   delivered.DeliveredAt,
	})

	return delivered, nil
}

// RevertItem undoes a delivery. The item returns to the on-hand phase
// under a fresh identifier but keeps its original found date; the delivery
// record disappears in the same transaction.
func (s *Service) RevertItem(ctx context.Context, deliveredID uuid.UUID) (entity.LostItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.LostItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionRevertItem, uuid.Nil)
	if !decision.Allowed {
		return entity.LostItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	delivered, err := s.repo.DeliveredItemByID(ctx, deliveredID)
	if err != nil {
		return entity.LostItem{}, err
	}

	item := entity.LostItem{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         delivered.Name,
		Description:  delivered.Description,
		Location:     delivered.Location,
		Category:     delivered.Category,
		FlightNumber: delivered.FlightNumber,
		DateFound:    delivered.DateFound,
		Images:       delivered.Images,
		Status:       entity.StatusOnHand,
		FoundBy:      entity.NewUserRef(delivered.FoundBy.ID),
		CreatedAt:    time.Now(),
	}

	err = s.repo.RevertToLost(ctx, item, delivered.ID)
	if err != nil {
		return entity.LostItem{}, fmt.Errorf("revert delivery: %w", err)
	}

	slog.InfoContext(ctx, "delivery reverted",
		"delivered_id", delivered.ID,
		"item_id", item.ID,
		"by", caller.ID,
	)

	s.purgeImages(ctx, delivered.DeliveryImages)

	return item, nil
}

func (s *Service) DeliveredItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.DeliveredItem, int, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	decision := authz.Decide(caller, authz.ActionViewItems, uuid.Nil)
	if !decision.Allowed {
		return nil, 0, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	filter, err = normalizeFilter(filter, entity.SortByDeliveredA, deliveredSortFields)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.ListDeliveredItems(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list delivered items: %w", err)
	}

	if len(filter.Expand) > 0 {
		if err = s.repo.ExpandDeliveredItemRefs(ctx, items, filter.Expand); err != nil {
			return nil, 0, fmt.Errorf("expand refs: %w", err)
		}
	}

	return items, total, nil
}

func (s *Service) DeliveredItemByID(ctx context.Context, id uuid.UUID, expand entity.Expand) (entity.DeliveredItem, error) {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.DeliveredItem{}, err
	}

	decision := authz.Decide(caller, authz.ActionViewItems, uuid.Nil)
	if !decision.Allowed {
		return entity.DeliveredItem{}, fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	item, err := s.repo.DeliveredItemByID(ctx, id)
	if err != nil {
		return entity.DeliveredItem{}, err
	}

	if len(expand) > 0 {
		items := []entity.DeliveredItem{item}
		if err = s.repo.ExpandDeliveredItemRefs(ctx, items, expand); err != nil {
			return entity.DeliveredItem{}, fmt.Errorf("expand refs: %w", err)
		}

		item = items[0]
	}

	return item, nil
}

// SetItemArchived marks or unmarks a delivery record as archived. Archived
// records stay queryable but drop out of default listings.
func (s *Service) SetItemArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	item, err := s.repo.DeliveredItemByID(ctx, id)
	if err != nil {
		return err
	}

	decision := authz.Decide(caller, authz.ActionArchiveItem, item.FoundBy.ID)
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	err = s.repo.SetDeliveredItemArchived(ctx, id, archived)
	if err != nil {
		return fmt.Errorf("set archived: %w", err)
	}

	slog.InfoContext(ctx, "delivery archive flag set", "delivered_id", id, "archived", archived, "by", caller.ID)

	return nil
}

func (s *Service) DeleteLostItem(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	item, err := s.repo.LostItemByID(ctx, id)
	if err != nil {
		return err
	}

	decision := authz.Decide(caller, authz.ActionDeleteItem, item.FoundBy.ID)
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	err = s.repo.DeleteLostItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	slog.InfoContext(ctx, "item deleted", "item_id", id, "by", caller.ID)

	s.purgeImages(ctx, item.Images)

	return nil
}

func (s *Service) DeleteDeliveredItem(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	item, err := s.repo.DeliveredItemByID(ctx, id)
	if err != nil {
		return err
	}

	decision := authz.Decide(caller, authz.ActionDeleteItem, item.FoundBy.ID)
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", entity.ErrForbidden, decision.Reason)
	}

	err = s.repo.DeleteDeliveredItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete delivered item: %w", err)
	}

	slog.InfoContext(ctx, "delivery record deleted", "delivered_id", id, "by", caller.ID)

	s.purgeImages(ctx, item.Images)
	s.purgeImages(ctx, item.DeliveryImages)

	return nil
}

// uploadImages pushes every upload to the image host. On a mid-batch
// failure the already-hosted files are purged so the host never holds
// orphans for a write that did not happen.
func (s *Service) uploadImages(ctx context.Context, uploads []ImageUpload, category, flightNumber string) ([]entity.Image, error) {
	images := make([]entity.Image, 0, len(uploads))

	for _, u := range uploads {
		image, err := s.images.Upload(ctx, u.Data, u.MimeType, u.OriginalName, category, flightNumber)
		if err != nil {
			s.purgeImages(ctx, images)

			return nil, fmt.Errorf("upload image %q: %w", u.OriginalName, err)
		}

		images = append(images, image)
	}

	return images, nil
}

// purgeImages is best-effort: host-side failures are logged and never fail
// the enclosing operation.
func (s *Service) purgeImages(ctx context.Context, images []entity.Image) {
	for _, image := range images {
		if err := s.images.Delete(ctx, image.PublicID); err != nil {
			slog.ErrorContext(ctx, "failed to delete hosted image", "public_id", image.PublicID, "error", err)
		}
	}
}

// Each collection sorts only by its own columns; a sort field that is
// valid for the other collection is still a bad request here.
var (
	lostSortFields = map[entity.ItemsSortBy]bool{
		entity.SortByDateFound: true,
		entity.SortByName:      true,
		entity.SortByCategory:  true,
		entity.SortByStatus:    true,
		entity.SortByFlight:    true,
	}

	deliveredSortFields = map[entity.ItemsSortBy]bool{
		entity.SortByDeliveredA: true,
		entity.SortByDateFound:  true,
		entity.SortByName:       true,
		entity.SortByCategory:   true,
		entity.SortByFlight:     true,
	}
)

func normalizeFilter(filter entity.ItemsFilter, defaultSort entity.ItemsSortBy, sortFields map[entity.ItemsSortBy]bool) (entity.ItemsFilter, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}

	if filter.Limit == 0 {
		filter.Limit = DefaultPageLimit
	}

	if filter.Limit > MaxPageLimit {
		filter.Limit = MaxPageLimit
	}

	if filter.SortBy == "" {
		filter.SortBy = defaultSort
	}

	if !sortFields[filter.SortBy] {
		return entity.ItemsFilter{}, fmt.Errorf("%w: unknown sort field %q", entity.ErrIncorrectRequestBody, filter.SortBy)
	}

	if filter.OrderBy == "" {
		filter.OrderBy = entity.DESC
	}

	if !filter.OrderBy.IsValid() {
		return entity.ItemsFilter{}, fmt.Errorf("%w: unknown sort order %q", entity.ErrIncorrectRequestBody, filter.OrderBy)
	}

	for _, relation := range filter.Expand {
		switch relation {
		case entity.ExpandFoundBy, entity.ExpandSupervisor, entity.ExpandDeliveredBy:
		default:
			return entity.ItemsFilter{}, fmt.Errorf("%w: unknown expand relation %q", entity.ErrIncorrectRequestBody, relation)
		}
	}

	return filter, nil
}
