package postgres

import (
	"context"
	"database/sql"

	"github.com/baechuer/leads-api/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, password_hash, created_at, updated_at`

func scanUser(s rowScanner) (domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// ---------- auth.UserRepo ----------

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		return domain.User{}, mapErr(err, domain.ErrUserNotFound)
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.User{}, mapErr(err, domain.ErrUserNotFound)
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = domain.NormalizeEmail(u.Email)
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `
INSERT INTO users (email, password_hash)
VALUES ($1, $2)
RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, q, u.Email, u.PasswordHash))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, mapErr(err, nil)
	}
	return created, nil
}
