package postgres

import (
	"context"
	"database/sql"

	"github.com/baechuer/leads-api/internal/application/account"
	"github.com/baechuer/leads-api/internal/domain"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

const accountColumns = `id, name, first_name, last_name, main_email, created_at, updated_at`

func scanAccount(s rowScanner) (domain.Account, error) {
	var a domain.Account
	err := s.Scan(&a.ID, &a.Name, &a.FirstName, &a.LastName, &a.MainEmail, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *AccountRepo) List(ctx context.Context, f account.ListFilter) ([]domain.Account, error) {
	var w whereBuilder
	w.addSearch(f.Search, "name", "first_name", "last_name", "main_email")

	q := `SELECT ` + accountColumns + ` FROM accounts` + w.clause() + ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, mapErr(err, nil)
	}
	defer rows.Close()

	out := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, mapErr(err, nil)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Account{}, mapErr(err, domain.ErrAccountNotFound)
	}
	return a, nil
}

func (r *AccountRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, mapErr(err, nil)
	}
	return ok, nil
}

func (r *AccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	const q = `
INSERT INTO accounts (name, first_name, last_name, main_email)
VALUES ($1, $2, $3, $4)
RETURNING ` + accountColumns

	created, err := scanAccount(r.db.QueryRowContext(ctx, q, a.Name, a.FirstName, a.LastName, a.MainEmail))
	if err != nil {
		return domain.Account{}, mapErr(err, nil)
	}
	return created, nil
}

func (r *AccountRepo) Update(ctx context.Context, a domain.Account) (domain.Account, error) {
	const q = `
UPDATE accounts SET
  name = $2, first_name = $3, last_name = $4, main_email = $5, updated_at = now()
WHERE id = $1
RETURNING ` + accountColumns

	updated, err := scanAccount(r.db.QueryRowContext(ctx, q, a.ID, a.Name, a.FirstName, a.LastName, a.MainEmail))
	if err != nil {
		return domain.Account{}, mapErr(err, domain.ErrAccountNotFound)
	}
	return updated, nil
}

func (r *AccountRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, `DELETE FROM accounts WHERE id = $1`, id, domain.ErrAccountNotFound)
}

func deleteByID(ctx context.Context, db *sql.DB, q string, id int64, notFound func() *domain.Error) error {
	res, err := db.ExecContext(ctx, q, id)
	if err != nil {
		return mapErr(err, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapErr(err, nil)
	}
	if n == 0 {
		return notFound()
	}
	return nil
}
