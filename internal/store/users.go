package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
)

// CreateUserParams holds the fields for creating a devotee account.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	FullName     string
	Mobile       string
	Consent      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUser inserts a new devotee account and returns it.
func (q *Queries) CreateUser(ctx context.Context, p CreateUserParams) (model.User, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, full_name, mobile, consent, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Email, p.PasswordHash, p.FullName, p.Mobile, p.Consent, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:           id,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		FullName:     p.FullName,
		Mobile:       p.Mobile,
		Consent:      p.Consent,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

const selectUser = `SELECT id, email, password_hash, full_name, mobile, consent,
	created_at, updated_at, last_login_at FROM users`

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Mobile,
		&u.Consent, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	return u, err
}

// GetUserByID returns the user with the given id.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, selectUser+` WHERE id = ?`, id))
}

// GetUserByEmail returns the user with the given email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, selectUser+` WHERE email = ?`, email))
}

// UpdateLastLogin records a successful login.
func (q *Queries) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ?, updated_at = ? WHERE id = ?`, at, at, id)
	return err
}

// UpdatePasswordHash replaces a stored password hash, used when a hash
// is upgraded to the current parameters.
func (q *Queries) UpdatePasswordHash(ctx context.Context, id int64, hash string, at time.Time) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`, hash, at, id)
	return err
}

// ListUsers returns all devotee accounts ordered by creation time.
func (q *Queries) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx, selectUser+` ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Mobile,
			&u.Consent, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
