package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"worko/internal/app/db"
)

// Store errors returned as sentinels so callers can map them to client
// responses without inspecting driver errors.
var (
	// ErrNotFound means no record matched the given identifier or email.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail means a write collided with the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, params CreateParams) (*User, error)
	Replace(ctx context.Context, id uuid.UUID, params ReplaceParams) (*User, error)
	Merge(ctx context.Context, id uuid.UUID, params MergeParams) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, plain string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateParams carries every field of a new record. Password is the plain
// text submitted by the client; Create hashes it as part of the write.
type CreateParams struct {
	Email    string
	Password string
	Name     string
	Age      int
	City     string
	ZipCode  string
}

// ReplaceParams is the full profile document written by a replace update.
// The caller has already merged supplied values over current ones.
type ReplaceParams struct {
	Email   string
	Name    string
	Age     int
	City    string
	ZipCode string
}

// MergeParams is a partial profile update. Nil fields leave the stored
// value untouched.
type MergeParams struct {
	Email   *string
	Name    *string
	Age     *int
	City    *string
	ZipCode *string
}

// DBTX is the subset of database/sql the store needs. *sql.DB satisfies it,
// as do transactions and test doubles.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore implements Store on PostgreSQL.
type SQLStore struct {
	db DBTX
}

// NewSQLStore returns a Store backed by the given database handle.
func NewSQLStore(db DBTX) *SQLStore {
	return &SQLStore{db: db}
}

const userColumns = `id, email, password_hash, name, age, city, zip_code, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Age, &u.City, &u.ZipCode, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List returns every user record, oldest first.
func (s *SQLStore) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

// FindByID returns the record with the given identifier, or ErrNotFound.
func (s *SQLStore) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// FindByEmail returns the record with the given email, or ErrNotFound.
func (s *SQLStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// Create inserts a new record, hashing the submitted password on the way
// in. A collision with the unique email index returns ErrDuplicateEmail.
func (s *SQLStore) Create(ctx context.Context, params CreateParams) (*User, error) {
	hashed, err := HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `INSERT INTO users (email, password_hash, name, age, city, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRowContext(ctx, query,
		params.Email, hashed, params.Name, params.Age, params.City, params.ZipCode))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// Replace overwrites the full profile document of the record with id and
// returns the updated record.
func (s *SQLStore) Replace(ctx context.Context, id uuid.UUID, params ReplaceParams) (*User, error) {
	query := `UPDATE users
		SET email = $2, name = $3, age = $4, city = $5, zip_code = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRowContext(ctx, query,
		id, params.Email, params.Name, params.Age, params.City, params.ZipCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// Merge updates only the non-nil fields of params, leaving every other
// column untouched, and returns the updated record.
func (s *SQLStore) Merge(ctx context.Context, id uuid.UUID, params MergeParams) (*User, error) {
	query := `UPDATE users
		SET email = COALESCE($2, email),
		    name = COALESCE($3, name),
		    age = COALESCE($4, age),
		    city = COALESCE($5, city),
		    zip_code = COALESCE($6, zip_code),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRowContext(ctx, query,
		id, params.Email, params.Name, params.Age, params.City, params.ZipCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// UpdatePassword hashes plain and writes it to the record with id.
func (s *SQLStore) UpdatePassword(ctx context.Context, id uuid.UUID, plain string) error {
	hashed, err := HashPassword(plain)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, hashed)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the record with id. Deleting an absent record is not an
// error; the route acknowledges regardless.
func (s *SQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
