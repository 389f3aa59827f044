package repository

import (
	"context"
	"encoding/json"

	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/entity"
)

// The two phase moves below are the only multi-record writes in the
// system. A lost item and a delivered item for the same logical item must
// never coexist, so each move runs insert-then-delete inside a single
// transaction: either both records change phase or neither does.

// MoveToDelivered records a delivery: the delivered item is created and
// the source lost item removed as one unit. Returns ErrNotFound when the
// source item vanished before the move committed.
func (r *Repository) MoveToDelivered(ctx context.Context, delivered entity.DeliveredItem, lostID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	q := `INSERT INTO delivered_items
		(id, name, description, location, category, flight_number, date_found, images,
		 customer_name, customer_email, customer_phone, customer_identification,
		 signature, notes, delivery_images, found_by, delivered_by, delivered_at, archived)
	VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	images, err := json.Marshal(delivered.Images)
	if err != nil {
		return err
	}

	deliveryImages, err := json.Marshal(delivered.DeliveryImages)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, q,
		delivered.ID,
		delivered.Name,
		delivered.Description,
		delivered.Location,
		delivered.Category,
		delivered.FlightNumber,
		delivered.DateFound,
		images,
		delivered.Customer.Name,
		delivered.Customer.Email,
		delivered.Customer.Phone,
		delivered.Customer.Identification,
		delivered.Signature,
		delivered.Notes,
		deliveryImages,
		delivered.FoundBy.ID,
		delivered.DeliveredBy.ID,
		delivered.DeliveredAt,
		delivered.Archived,
	)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM lost_items WHERE id = $1`, lostID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return tx.Commit(ctx)
}

// RevertToLost is the inverse move: a fresh lost item is created from the
// delivery record and the delivery record removed, again as one unit.
func (r *Repository) RevertToLost(ctx context.Context, lost entity.LostItem, deliveredID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	q := `INSERT INTO lost_items
		(id, name, description, location, category, flight_number, date_found, images, status, found_by, supervisor, created_at)
	VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	images, err := json.Marshal(lost.Images)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, q,
		lost.ID,
		lost.Name,
		lost.Description,
		lost.Location,
		lost.Category,
		lost.FlightNumber,
		lost.DateFound,
		images,
		lost.Status,
		lost.FoundBy.ID,
		nullableUUID(lost.Supervisor.ID),
		lost.CreatedAt,
	)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM delivered_items WHERE id = $1`, deliveredID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return tx.Commit(ctx)
}
