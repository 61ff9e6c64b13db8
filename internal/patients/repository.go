package patients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Account is the minimal WordPress account shape this service creates.
type Account struct {
	Login       string
	Password    string
	Email       string
	DisplayName string
}

// Repository works against the plugin's user tables. Accounts are created at
// most once per synthetic login and never removed.
type Repository struct {
	db     *sql.DB
	prefix string
}

func NewRepository(db *sql.DB, tablePrefix string) *Repository {
	return &Repository{db: db, prefix: tablePrefix}
}

func (r *Repository) usersTable() string {
	return r.prefix + "users"
}

func (r *Repository) usermetaTable() string {
	return r.prefix + "usermeta"
}

// FindIDByLogin resolves an account ID by its login. Not found is not an
// error.
func (r *Repository) FindIDByLogin(ctx context.Context, login string) (int64, bool, error) {
	query := fmt.Sprintf(`SELECT id FROM %s WHERE user_login = $1`, r.usersTable())

	var id int64
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query account by login: %w", err)
	}
	return id, true, nil
}

// CreateAccount inserts a new account row. A login collision maps to
// ErrLoginTaken so the caller can tell the race apart from other failures.
func (r *Repository) CreateAccount(ctx context.Context, acc Account) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_login, user_pass, user_email, display_name, user_registered)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, r.usersTable())

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		acc.Login,
		acc.Password,
		acc.Email,
		acc.DisplayName,
		time.Now(),
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, fmt.Errorf("%w: %s", ErrLoginTaken, acc.Login)
		}
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	return id, nil
}

// SetAttribute stores a side attribute (phone number, first name) the way
// the plugin keeps them: one meta row per key.
func (r *Repository) SetAttribute(ctx context.Context, userID int64, key, value string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, meta_key, meta_value)
		VALUES ($1, $2, $3)
	`, r.usermetaTable())

	if _, err := r.db.ExecContext(ctx, query, userID, key, value); err != nil {
		return fmt.Errorf("failed to set account attribute %s: %w", key, err)
	}
	return nil
}
