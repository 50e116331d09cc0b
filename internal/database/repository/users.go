package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// UserUID derives the stable external id of a user from its name.
func UserUID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("user:"+name)).String()
}

// UserRepo handles users.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const upsertUser = `
	INSERT INTO users(id, uid, name, created_at, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 uid=excluded.uid,
	 name=excluded.name,
	 updated_at=CURRENT_TIMESTAMP;
	`

func upsert(ctx context.Context, ex execer, u User) error {
	if u.UID == "" {
		u.UID = UserUID(u.Name)
	}
	if _, err := ex.ExecContext(ctx, upsertUser, u.ID, u.UID, u.Name); err != nil {
		return fmt.Errorf("upsert user %d: %w", u.ID, err)
	}
	return nil
}

func (r *UserRepo) Upsert(ctx context.Context, u User) error {
	return upsert(ctx, r.db, u)
}

// UpsertUserTx is Upsert inside an open transaction.
func UpsertUserTx(ctx context.Context, tx *sql.Tx, u User) error {
	return upsert(ctx, tx, u)
}

func (r *UserRepo) Get(ctx context.Context, id int) (User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, uid, name, created_at, updated_at FROM users WHERE id = ?`, id)
	var u User
	if err := row.Scan(&u.ID, &u.UID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return User{}, err
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, uid, name, created_at, updated_at FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.UID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
