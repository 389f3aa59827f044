package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aeroops/lostfound/internal/entity"
)

func (r *Repository) CreateUser(ctx context.Context, user entity.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	q := `INSERT INTO users (id, employee_number, first_name, last_name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.Exec(ctx, q,
		user.ID,
		user.EmployeeNumber,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee number %s", entity.ErrAlreadyExists, user.EmployeeNumber)
		}

		return err
	}

	for _, p := range user.Permissions {
		_, err = tx.Exec(ctx,
			`INSERT INTO user_permissions (user_id, permission_id) VALUES ($1, $2)`,
			user.ID, p.ID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	q := `SELECT id, employee_number, first_name, last_name, password_hash, role, created_at
		FROM users
		WHERE id = $1`

	var user entity.User

	err := r.db.QueryRow(ctx, q, id).Scan(
		&user.ID,
		&user.EmployeeNumber,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	user.Permissions, err = r.permissionsOfUser(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}

func (r *Repository) UserByEmployeeNumber(ctx context.Context, employeeNumber string) (entity.User, error) {
	q := `SELECT id, employee_number, first_name, last_name, password_hash, role, created_at
		FROM users
		WHERE employee_number = $1`

	var user entity.User

	err := r.db.QueryRow(ctx, q, employeeNumber).Scan(
		&user.ID,
		&user.EmployeeNumber,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	user.Permissions, err = r.permissionsOfUser(ctx, user.ID)
	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]entity.User, error) {
	q := `SELECT id, employee_number, first_name, last_name, password_hash, role, created_at
		FROM users
		ORDER BY employee_number`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var users []entity.User

	for rows.Next() {
		var user entity.User

		err = rows.Scan(
			&user.ID,
			&user.EmployeeNumber,
			&user.FirstName,
			&user.LastName,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	for i := range users {
		users[i].Permissions, err = r.permissionsOfUser(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return users, nil
}

func (r *Repository) UpdateUserRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ReplaceUserPermissions swaps the user's grant set for the given
// permissions in one transaction. The operation is a full replacement, so
// repeating it with the same set is a no-op.
func (r *Repository) ReplaceUserPermissions(ctx context.Context, userID uuid.UUID, permissions []entity.Permission) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM user_permissions WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	for _, p := range permissions {
		_, err = tx.Exec(ctx,
			`INSERT INTO user_permissions (user_id, permission_id) VALUES ($1, $2)`,
			userID, p.ID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UserSummariesByIDs loads display summaries for the given user ids.
// Missing ids are simply absent from the result map; callers substitute
// the placeholder identity.
func (r *Repository) UserSummariesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.UserSummary, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]entity.UserSummary{}, nil
	}

	q := `SELECT id, employee_number, first_name, last_name, role
		FROM users
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	summaries := make(map[uuid.UUID]entity.UserSummary, len(ids))

	for rows.Next() {
		var s entity.UserSummary

		err = rows.Scan(&s.ID, &s.EmployeeNumber, &s.FirstName, &s.LastName, &s.Role)
		if err != nil {
			return nil, err
		}

		summaries[s.ID] = s
	}

	return summaries, nil
}

func (r *Repository) permissionsOfUser(ctx context.Context, userID uuid.UUID) ([]entity.Permission, error) {
	q := `SELECT p.id, p.name, p.description
		FROM permissions p
		JOIN user_permissions up ON up.permission_id = p.id
		WHERE up.user_id = $1
		ORDER BY p.name`

	rows, err := r.db.Query(ctx, q, userID)
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
