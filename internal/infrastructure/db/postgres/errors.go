package postgres

import (
	"database/sql"
	"errors"

	"github.com/baechuer/leads-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgCode(err) == pgUniqueViolation }

// mapErr converts driver errors to domain errors. notFound is used for sql.ErrNoRows.
func mapErr(err error, notFound func() *domain.Error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound()
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.ErrDBUnavailable(err)
}
