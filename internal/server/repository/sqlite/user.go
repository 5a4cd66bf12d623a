package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/siddharthpandey07/UserManage/internal/apperror"
	"github.com/siddharthpandey07/UserManage/internal/models"
)

const userColumns = `id, name, username, email, phone, website,
	address_street, address_city, company_name`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Website,
		&u.Address.Street, &u.Address.City, &u.Company.Name,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all users ordered by ID, which is insertion order.
func (db *DB) List(ctx context.Context) ([]models.User, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	return users, nil
}

func (db *DB) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}
	return u, nil
}

// Create inserts u and fills in the assigned ID.
func (db *DB) Create(ctx context.Context, u *models.User) error {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (name, username, email, phone, website,
			address_street, address_city, company_name)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Username, u.Email, u.Phone, u.Website,
		u.Address.Street, u.Address.City, u.Company.Name,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new user id: %w", err)
	}
	u.ID = id
	return nil
}

func (db *DB) Update(ctx context.Context, u *models.User) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE users SET name = ?, username = ?, email = ?, phone = ?,
			website = ?, address_street = ?, address_city = ?, company_name = ?
		 WHERE id = ?`,
		u.Name, u.Username, u.Email, u.Phone, u.Website,
		u.Address.Street, u.Address.City, u.Company.Name,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating user %d: %w", u.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: updating user %d: %w", u.ID, err)
	}
	if affected == 0 {
		return apperror.NotFound("user", u.ID)
	}
	return nil
}

// Delete removes the user with the given ID; a missing ID is not an error.
func (db *DB) Delete(ctx context.Context, id int64) error {
	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlite: deleting user %d: %w", id, err)
	}
	return nil
}
