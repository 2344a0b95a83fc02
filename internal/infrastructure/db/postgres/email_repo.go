package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/baechuer/leads-api/internal/application/email"
	"github.com/baechuer/leads-api/internal/domain"
)

type EmailRepo struct {
	db *sql.DB
}

func NewEmailRepo(db *sql.DB) *EmailRepo {
	return &EmailRepo{db: db}
}

const emailJoinColumns = `e.id, e.email, e.account_id, e.created_at, e.updated_at,
       a.id, a.name, a.first_name, a.last_name, a.main_email, a.created_at, a.updated_at`

// scanEmail reads an emails row LEFT JOINed with its account.
func scanEmail(s rowScanner) (domain.Email, error) {
	var (
		e                          domain.Email
		accID                      *int64
		accName, accFirst, accLast *string
		accMain                    *string
		accCreatedAt, accUpdatedAt *time.Time
	)
	err := s.Scan(
		&e.ID, &e.Address, &e.AccountID, &e.CreatedAt, &e.UpdatedAt,
		&accID, &accName, &accFirst, &accLast, &accMain, &accCreatedAt, &accUpdatedAt,
	)
	if err != nil {
		return domain.Email{}, err
	}
	if accID != nil {
		e.Account = &domain.Account{
			ID:        *accID,
			Name:      deref(accName),
			FirstName: deref(accFirst),
			LastName:  deref(accLast),
			MainEmail: deref(accMain),
		}
		if accCreatedAt != nil {
			e.Account.CreatedAt = *accCreatedAt
		}
		if accUpdatedAt != nil {
			e.Account.UpdatedAt = *accUpdatedAt
		}
	}
	return e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *EmailRepo) List(ctx context.Context, f email.ListFilter) ([]domain.Email, error) {
	var w whereBuilder
	w.addSearch(f.Search, "e.email")
	if f.AccountID != nil {
		w.add("e.account_id = $%d", *f.AccountID)
	}

	q := `SELECT ` + emailJoinColumns + `
FROM emails e LEFT JOIN accounts a ON a.id = e.account_id` + w.clause() + `
ORDER BY e.created_at DESC, e.id DESC`

	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, mapErr(err, nil)
	}
	defer rows.Close()

	out := []domain.Email{}
	for rows.Next() {
		e, err := scanEmail(rows)
		if err != nil {
			return nil, mapErr(err, nil)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

func (r *EmailRepo) GetByID(ctx context.Context, id int64) (domain.Email, error) {
	const q = `SELECT ` + emailJoinColumns + `
FROM emails e LEFT JOIN accounts a ON a.id = e.account_id
WHERE e.id = $1`

	e, err := scanEmail(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Email{}, mapErr(err, domain.ErrEmailNotFound)
	}
	return e, nil
}

func (r *EmailRepo) Create(ctx context.Context, e domain.Email) (domain.Email, error) {
	const q = `
WITH e AS (
  INSERT INTO emails (email, account_id) VALUES ($1, $2)
  RETURNING id, email, account_id, created_at, updated_at
)
SELECT ` + emailJoinColumns + `
FROM e LEFT JOIN accounts a ON a.id = e.account_id`

	created, err := scanEmail(r.db.QueryRowContext(ctx, q, e.Address, e.AccountID))
	if pgCode(err) == pgForeignKeyViolation && e.AccountID != nil {
		// account removed between lookup and write: store without owner
		created, err = scanEmail(r.db.QueryRowContext(ctx, q, e.Address, nil))
	}
	if err != nil {
		return domain.Email{}, r.writeErr(err, nil)
	}
	return created, nil
}

func (r *EmailRepo) Update(ctx context.Context, e domain.Email) (domain.Email, error) {
	const q = `
WITH e AS (
  UPDATE emails SET email = $2, account_id = $3, updated_at = now()
  WHERE id = $1
  RETURNING id, email, account_id, created_at, updated_at
)
SELECT ` + emailJoinColumns + `
FROM e LEFT JOIN accounts a ON a.id = e.account_id`

	updated, err := scanEmail(r.db.QueryRowContext(ctx, q, e.ID, e.Address, e.AccountID))
	if pgCode(err) == pgForeignKeyViolation && e.AccountID != nil {
		updated, err = scanEmail(r.db.QueryRowContext(ctx, q, e.ID, e.Address, nil))
	}
	if err != nil {
		return domain.Email{}, r.writeErr(err, domain.ErrEmailNotFound)
	}
	return updated, nil
}

func (r *EmailRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, `DELETE FROM emails WHERE id = $1`, id, domain.ErrEmailNotFound)
}

func (r *EmailRepo) writeErr(err error, notFound func() *domain.Error) error {
	if isUniqueViolation(err) {
		return domain.ErrEmailAlreadyExists()
	}
	return mapErr(err, notFound)
}
