package postgres

import (
	"database/sql"
	"errors"
	"fmt"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized reports whether userID has entered the password.
// Unknown users are not authorized.
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	err := r.db.QueryRow(`SELECT authorized FROM users WHERE user_id = $1`, userID).Scan(&authorized)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read user %d: %w", userID, err)
	}
	return authorized, nil
}

// AuthorizeUser marks user as authorized, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to authorize user %d: %w", userID, err)
	}
	return nil
}

// EnsureUserExists creates an unauthorized row for a new user
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to create user %d: %w", userID, err)
	}
	return nil
}

// ListAuthorized returns IDs of authorized users
func (r *UserRepo) ListAuthorized() ([]int64, error) {
	rows, err := r.db.Query(`SELECT user_id FROM users WHERE authorized = TRUE ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
