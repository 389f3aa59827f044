package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"

	"github.com/aeroops/lostfound/internal/entity"
)

func (r *Repository) CreatePermission(ctx context.Context, p entity.Permission) error {
	q := `INSERT INTO permissions (id, name, description) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, p.ID, p.Name, p.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: permission %s", entity.ErrAlreadyExists, p.Name)
		}

		return err
	}

	return nil
}

func (r *Repository) PermissionByID(ctx context.Context, id uuid.UUID) (entity.Permission, error) {
	q := `SELECT id, name, description FROM permissions WHERE id = $1`

	var p entity.Permission

	err := r.db.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Permission{}, entity.ErrNotFound
		}

		return entity.Permission{}, err
	}

	return p, nil
}

func (r *Repository) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	q := `SELECT id, name, description FROM permissions ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var permissions []entity.Permission

	for rows.Next() {
		var p entity.Permission

		err = rows.Scan(&p.ID, &p.Name, &p.Description)
		if err != nil {
			return nil, err
		}

		permissions = append(permissions, p)
	}

	return permissions, nil
}

// PermissionsByNames resolves the given names, preserving input order.
// Any name not present in the catalog makes the whole resolution fail.
func (r *Repository) PermissionsByNames(ctx context.Context, names []string) ([]entity.Permission, error) {
	if len(names) == 0 {
		return nil, nil
	}

	q := `SELECT id, name, description FROM permissions WHERE name = ANY($1)`

	rows, err := r.db.Query(ctx, q, names)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	byName := make(map[string]entity.Permission, len(names))

	for rows.Next() {
		var p entity.Permission

		err = rows.Scan(&p.ID, &p.Name, &p.Description)
		if err != nil {
			return nil, err
		}

		byName[p.Name] = p
	}

	resolved := make([]entity.Permission, 0, len(names))

	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: permission %q", entity.ErrNotFound, name)
		}

		resolved = append(resolved, p)
	}

	return resolved, nil
}

func (r *Repository) UpdatePermission(ctx context.Context, p entity.Permission) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE permissions SET name = $1, description = $2 WHERE id = $3`,
		p.Name, p.Description, p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: permission %s", entity.ErrAlreadyExists, p.Name)
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePermission(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// PermissionHolders lists every user still referencing the permission.
func (r *Repository) PermissionHolders(ctx context.Context, permissionID uuid.UUID) ([]entity.UserSummary, error) {
	q := `SELECT u.id, u.employee_number, u.first_name, u.last_name, u.role
		FROM users u
		JOIN user_permissions up ON up.user_id = u.id
		WHERE up.permission_id = $1
		ORDER BY u.employee_number`

	rows, err := r.db.Query(ctx, q, permissionID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var holders []entity.UserSummary

	for rows.Next() {
		var s entity.UserSummary

		err = rows.Scan(&s.ID, &s.EmployeeNumber, &s.FirstName, &s.LastName, &s.Role)
		if err != nil {
			return nil, err
		}

		holders = append(holders, s)
	}

	return holders, nil
}
