package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"

	"github.com/aeroops/lostfound/internal/entity"
)

const selectLostItem = `SELECT id, name, description, location, category, flight_number, date_found, images, status, found_by, supervisor, created_at
	FROM lost_items`

func (r *Repository) CreateLostItem(ctx context.Context, item entity.LostItem) error {
	q := `INSERT INTO lost_items
		(id, name, description, location, category, flight_number, date_found, images, status, found_by, supervisor, created_at)
	VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	images, err := json.Marshal(item.Images)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, q,
		item.ID,
		item.Name,
		item.Description,
		item.Location,
		item.Category,
		item.FlightNumber,
		item.DateFound,
		images,
		item.Status,
		item.FoundBy.ID,
		nullableUUID(item.Supervisor.ID),
		item.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) LostItemByID(ctx context.Context, id uuid.UUID) (entity.LostItem, error) {
	var item entity.LostItem

	err := r.db.QueryRow(ctx, selectLostItem+` WHERE id = $1`, id).Scan(scanLostItemDest(&item)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.LostItem{}, entity.ErrNotFound
		}

		return entity.LostItem{}, err
	}

	return item, nil
}

func (r *Repository) ListLostItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.LostItem, int, error) {
	countStmt := applyLostItemsWhere(
		sq.Select("count(*)").From("lost_items").PlaceholderFormat(sq.Dollar), filter)

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
		return []entity.LostItem{}, 0, nil
	}

	stmt := applyLostItemsWhere(sq.Select(
		"id",
		"name",
		"description",
		"location",
		"category",
		"flight_number",
		"date_found",
		"images",
		"status",
		"found_by",
		"supervisor",
		"created_at",
	).From("lost_items").PlaceholderFormat(sq.Dollar), filter)

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

	items := make([]entity.LostItem, 0, filter.Limit)

	for rows.Next() {
		var item entity.LostItem

		err = rows.Scan(scanLostItemDest(&item)...)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, item)
	}

	return items, count, nil
}

func applyLostItemsWhere(stmt sq.SelectBuilder, filter entity.ItemsFilter) sq.SelectBuilder {
	if filter.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": filter.Status})
	} else if !filter.IncludeArchived {
		stmt = stmt.Where(sq.NotEq{"status": entity.StatusArchived})
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

func (r *Repository) UpdateLostItem(ctx context.Context, item entity.LostItem) error {
	q := `UPDATE lost_items
		SET name = $1, description = $2, location = $3, category = $4, flight_number = $5,
			date_found = $6, images = $7, status = $8, supervisor = $9
		WHERE id = $10`

	images, err := json.Marshal(item.Images)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, q,
		item.Name,
		item.Description,
		item.Location,
		item.Category,
		item.FlightNumber,
		item.DateFound,
		images,
		item.Status,
		nullableUUID(item.Supervisor.ID),
		item.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteLostItem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lost_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ExpandLostItemRefs resolves foundBy/supervisor references into embedded
// summaries. A reference whose user no longer exists resolves to the
// placeholder identity; the read itself never fails because of it.
func (r *Repository) ExpandLostItemRefs(ctx context.Context, items []entity.LostItem, expand entity.Expand) error {
	ids := make([]uuid.UUID, 0, len(items)*2)

	for _, item := range items {
		ids = append(ids, item.FoundBy.ID)

		if !item.Supervisor.ID.IsNil() {
			ids = append(ids, item.Supervisor.ID)
		}
	}

	summaries, err := r.UserSummariesByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range items {
		if expand.Has(entity.ExpandFoundBy) {
			items[i].FoundBy.User = summaryOrPlaceholder(summaries, items[i].FoundBy.ID)
		}

		if expand.Has(entity.ExpandSupervisor) && !items[i].Supervisor.ID.IsNil() {
			items[i].Supervisor.User = summaryOrPlaceholder(summaries, items[i].Supervisor.ID)
		}
	}

	return nil
}

func summaryOrPlaceholder(summaries map[uuid.UUID]entity.UserSummary, id uuid.UUID) *entity.UserSummary {
	if s, ok := summaries[id]; ok {
		return &s
	}

	placeholder := entity.UnknownUser()

	return &placeholder
}

func scanLostItemDest(item *entity.LostItem) []any {
	return []any{
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Location,
		&item.Category,
		&item.FlightNumber,
		&item.DateFound,
		&item.Images,
		&item.Status,
		&item.FoundBy.ID,
		&supervisorScanner{ref: &item.Supervisor},
		&item.CreatedAt,
	}
}

// supervisorScanner maps a NULL supervisor column to the nil uuid.
type supervisorScanner struct {
	ref *entity.UserRef
}

func (s *supervisorScanner) Scan(src any) error {
	if src == nil {
		s.ref.ID = uuid.Nil
		return nil
	}

	var id uuid.UUID

	switch v := src.(type) {
	case string:
		parsed, err := uuid.FromString(v)
		if err != nil {
			return err
		}

		id = parsed
	case [16]byte:
		id = uuid.UUID(v)
	case []byte:
		parsed, err := uuid.FromBytes(v)
		if err != nil {
			return err
		}

		id = parsed
	default:
		return fmt.Errorf("unsupported supervisor column type %T", src)
	}

	s.ref.ID = id

	return nil
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id.IsNil() {
		return nil
	}

	return &id
}
