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

// IsAuthorized reports whether the user passed the password check.
// Unknown users are not authorized.
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	err := r.db.QueryRow(`SELECT authorized FROM users WHERE user_id = $1`, userID).Scan(&authorized)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check authorization of %d: %w", userID, err)
	}
	return authorized, nil
}

// AuthorizeUser marks the user as authorized, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("authorize %d: %w", userID, err)
	}
	return nil
}

// EnsureUserExists creates the user if missing and reports whether it did.
// A created user owns no words yet.
func (r *UserRepo) EnsureUserExists(userID int64) (bool, error) {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	res, err := r.db.Exec(query, userID)
	if err != nil {
		return false, fmt.Errorf("ensure user %d: %w", userID, err)
	}

	created, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ensure user %d: %w", userID, err)
	}
	return created > 0, nil
}
