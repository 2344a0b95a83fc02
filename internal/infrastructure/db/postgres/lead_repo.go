package postgres

import (
	"context"
	"database/sql"

	"github.com/baechuer/leads-api/internal/application/lead"
	"github.com/baechuer/leads-api/internal/domain"
)

type LeadRepo struct {
	db *sql.DB
}

func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

const leadColumns = `id, email, status, sent_at, assigned_to, first_name, last_name, company,
       title, phone, linkedin, website, city, state, country, created_at, updated_at`

func scanLead(s rowScanner) (domain.Lead, error) {
	var (
		l      domain.Lead
		status string
	)
	err := s.Scan(
		&l.ID, &l.Email, &status, &l.SentAt, &l.AssignedTo, &l.FirstName, &l.LastName, &l.Company,
		&l.Title, &l.Phone, &l.LinkedIn, &l.Website, &l.City, &l.State, &l.Country, &l.CreatedAt, &l.UpdatedAt,
	)
	l.Status = domain.LeadStatus(status)
	return l, err
}

func (r *LeadRepo) List(ctx context.Context, f lead.ListFilter) ([]domain.Lead, error) {
	var w whereBuilder
	w.addSearch(f.Search, "email", "first_name", "last_name", "company")
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.AssignedTo != "" {
		w.add("assigned_to = $%d", f.AssignedTo)
	}

	q := `SELECT ` + leadColumns + ` FROM leads` + w.clause() + ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, mapErr(err, nil)
	}
	defer rows.Close()

	out := []domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, mapErr(err, nil)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

func (r *LeadRepo) GetByID(ctx context.Context, id int64) (domain.Lead, error) {
	const q = `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	l, err := scanLead(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Lead{}, mapErr(err, domain.ErrLeadNotFound)
	}
	return l, nil
}

// ExistsByEmail expects an already normalized address.
func (r *LeadRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM leads WHERE email = $1)`, email).Scan(&ok)
	if err != nil {
		return false, mapErr(err, nil)
	}
	return ok, nil
}

func (r *LeadRepo) Create(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	const q = `
INSERT INTO leads (
  email, status, sent_at, assigned_to, first_name, last_name, company,
  title, phone, linkedin, website, city, state, country
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
RETURNING ` + leadColumns

	created, err := scanLead(r.db.QueryRowContext(ctx, q,
		l.Email, string(l.Status), l.SentAt, l.AssignedTo, l.FirstName, l.LastName, l.Company,
		l.Title, l.Phone, l.LinkedIn, l.Website, l.City, l.State, l.Country,
	))
	if err != nil {
		return domain.Lead{}, mapErr(err, nil)
	}
	return created, nil
}

func (r *LeadRepo) Update(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	const q = `
UPDATE leads SET
  email = $2, status = $3, sent_at = $4, assigned_to = $5, first_name = $6, last_name = $7,
  company = $8, title = $9, phone = $10, linkedin = $11, website = $12, city = $13,
  state = $14, country = $15, updated_at = now()
WHERE id = $1
RETURNING ` + leadColumns

	updated, err := scanLead(r.db.QueryRowContext(ctx, q,
		l.ID, l.Email, string(l.Status), l.SentAt, l.AssignedTo, l.FirstName, l.LastName,
		l.Company, l.Title, l.Phone, l.LinkedIn, l.Website, l.City,
		l.State, l.Country,
	))
	if err != nil {
		return domain.Lead{}, mapErr(err, domain.ErrLeadNotFound)
	}
	return updated, nil
}

func (r *LeadRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, `DELETE FROM leads WHERE id = $1`, id, domain.ErrLeadNotFound)
}
