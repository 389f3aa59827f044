package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"

	"github.com/aeroops/lostfound/internal/entity"
)

const selectDeliveredItem = `SELECT id, name, description, location, category, flight_number, date_found, images,
	customer_name, customer_email, customer_phone, customer_identification,
	signature, notes, delivery_images, found_by, delivered_by, delivered_at, archived
	FROM delivered_items`

func (r *Repository) DeliveredItemByID(ctx context.Context, id uuid.UUID) (entity.DeliveredItem, error) {
	var item entity.DeliveredItem

	err := r.db.QueryRow(ctx, selectDeliveredItem+` WHERE id = $1`, id).Scan(scanDeliveredItemDest(&item)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DeliveredItem{}, entity.ErrNotFound
		}

		return entity.DeliveredItem{}, err
	}

	return item, nil
}

func (r *Repository) ListDeliveredItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.DeliveredItem, int, error) {
	countStmt := applyDeliveredItemsWhere(
		sq.Select("count(*)").From("delivered_items").PlaceholderFormat(sq.Dollar), filter)

	sqlQuery, args, err := countStmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return []entity.DeliveredItem{}, 0, nil
	}

	stmt := applyDeliveredItemsWhere(sq.Select(
		"id",
		"name",
		"description",
		"location",
		"category",
		"flight_number",
		"date_found",
		"images",
		"customer_name",
		"customer_email",
		"customer_phone",
		"customer_identification",
		"signature",
		"notes",
		"delivery_images",
		"found_by",
		"delivered_by",
		"delivered_at",
		"archived",
	).From("delivered_items").PlaceholderFormat(sq.Dollar), filter)

	stmt = stmt.Limit(filter.Limit)
	stmt = stmt.Offset((filter.Page - 1) * filter.Limit)
	stmt = stmt.OrderBy(fmt.Sprintf("%s %s", filter.SortBy, filter.OrderBy))

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	items := make([]entity.DeliveredItem, 0, filter.Limit)

	for rows.Next() {
		var item entity.DeliveredItem

		err = rows.Scan(scanDeliveredItemDest(&item)...)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, item)
	}

	return items, count, nil
}

func applyDeliveredItemsWhere(stmt sq.SelectBuilder, filter entity.ItemsFilter) sq.SelectBuilder {
	// Archived records stay out of default listings.
	if !filter.IncludeArchived {
		stmt = stmt.Where(sq.Eq{"archived": false})
	}

	if filter.FlightNumber != "" {
		stmt = stmt.Where(sq.Eq{"flight_number": filter.FlightNumber})
	}

	if filter.Category != "" {
		stmt = stmt.Where(sq.Eq{"category": filter.Category})
	}

	if !filter.FoundBy.IsNil() {
		stmt = stmt.Where(sq.Eq{"found_by": filter.FoundBy})
	}

	return stmt
}

func (r *Repository) SetDeliveredItemArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE delivered_items SET archived = $1 WHERE id = $2`, archived, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteDeliveredItem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM delivered_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) ExpandDeliveredItemRefs(ctx context.Context, items []entity.DeliveredItem, expand entity.Expand) error {
	ids := make([]uuid.UUID, 0, len(items)*2)

	for _, item := range items {
		ids = append(ids, item.FoundBy.ID, item.DeliveredBy.ID)
	}

	summaries, err := r.UserSummariesByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range items {
		if expand.Has(entity.ExpandFoundBy) {
			items[i].FoundBy.User = summaryOrPlaceholder(summaries, items[i].FoundBy.ID)
		}

		if expand.Has(entity.ExpandDeliveredBy) {
			items[i].DeliveredBy.User = summaryOrPlaceholder(summaries, items[i].DeliveredBy.ID)
		}
	}

	return nil
}

func scanDeliveredItemDest(item *entity.DeliveredItem) []any {
	return []any{
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Location,
		&item.Category,
		&item.FlightNumber,
		&item.DateFound,
		&item.Images,
		&item.Customer.Name,
		&item.Customer.Email,
		&item.Customer.Phone,
		&item.Customer.Identification,
		&item.Signature,
		&item.Notes,
		&item.DeliveryImages,
		&item.FoundBy.ID,
		&item.DeliveredBy.ID,
		&item.DeliveredAt,
		&item.Archived,
	}
}
