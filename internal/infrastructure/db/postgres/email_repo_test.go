package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/leads-api/internal/application/email"
	"github.com/baechuer/leads-api/internal/domain"
)

var emailCols = []string{
	"id", "email", "account_id", "created_at", "updated_at",
	"a_id", "a_name", "a_first_name", "a_last_name", "a_main_email", "a_created_at", "a_updated_at",
}

func TestEmailRepo_List_JoinsAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	accID := int64(3)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN accounts a ON a.id = e.account_id WHERE (e.email ILIKE $1) AND e.account_id = $2")).
		WithArgs("%ops%", accID).
		WillReturnRows(sqlmock.NewRows(emailCols).
			AddRow(int64(1), "ops@acme.com", accID, now, now, accID, "Acme", "Jane", "Doe", "ceo@acme.com", now, now).
			AddRow(int64(2), "ops2@acme.com", nil, now, now, nil, nil, nil, nil, nil, nil, nil))

	out, err := NewEmailRepo(db).List(context.Background(), email.ListFilter{Search: "ops", AccountID: &accID})
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].Account)
	assert.Equal(t, "Acme", out[0].Account.Name)
	require.NotNil(t, out[0].AccountID)
	assert.Equal(t, accID, *out[0].AccountID)

	assert.Nil(t, out[1].Account)
	assert.Nil(t, out[1].AccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailRepo_Create_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEmailRepo(db)

	mock.ExpectQuery("INSERT INTO emails").WillReturnError(&pgconn.PgError{Code: "23505"})
	_, err = repo.Create(context.Background(), domain.Email{Address: "dup@x.co"})
	assert.True(t, domain.Is(err, "email_already_exists"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailRepo_Create_AccountGoneStoresWithoutOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	id := int64(8)

	mock.ExpectQuery("INSERT INTO emails").
		WithArgs("x@x.co", id).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectQuery("INSERT INTO emails").
		WithArgs("x@x.co", nil).
		WillReturnRows(sqlmock.NewRows(emailCols).
			AddRow(int64(4), "x@x.co", nil, now, now, nil, nil, nil, nil, nil, nil, nil))

	got, err := NewEmailRepo(db).Create(context.Background(), domain.Email{Address: "x@x.co", AccountID: &id})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Nil(t, got.AccountID)
	assert.Nil(t, got.Account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailRepo_Update_AccountGoneClearsOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	id := int64(9)

	mock.ExpectQuery("UPDATE emails").
		WithArgs(int64(2), "y@x.co", id).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectQuery("UPDATE emails").
		WithArgs(int64(2), "y@x.co", nil).
		WillReturnRows(sqlmock.NewRows(emailCols).
			AddRow(int64(2), "y@x.co", nil, now, now, nil, nil, nil, nil, nil, nil, nil))

	got, err := NewEmailRepo(db).Update(context.Background(), domain.Email{ID: 2, Address: "y@x.co", AccountID: &id})
	require.NoError(t, err)
	assert.Nil(t, got.AccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
