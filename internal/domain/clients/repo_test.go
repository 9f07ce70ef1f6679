package clients

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
)

func TestSanitizeCode(t *testing.T) {
	require.Equal(t, "CL-001", SanitizeCode("CL-001"))
	require.Equal(t, "CL001", SanitizeCode("CL 001!"))
	require.Equal(t, "ab_c", SanitizeCode("  a<b>_'c\"  "))
	require.Equal(t, "", SanitizeCode("<>&"))
}

func TestCreateValidation(t *testing.T) {
	repo := NewRepo(nil)

	_, err := repo.Create(context.Background(), "", "CL-001", "", "", "")
	require.True(t, apperr.IsValidation(err))

	// код из одного мусора схлопывается в пустой
	_, err = repo.Create(context.Background(), "Client", "<>&", "", "", "")
	require.True(t, apperr.IsValidation(err))
}

func TestCreateReactivatesInactive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	cols := []string{"id", "name", "code", "address", "phone", "email", "is_active", "created_at", "updated_at"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM clients").
		WithArgs("CL-001", "Client One").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectQuery("UPDATE clients").
		WithArgs("Client One", "CL-001", "", "", "", int64(4)).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(4), "Client One", "CL-001", "", "", "", true, now, now))
	mock.ExpectCommit()

	repo := NewRepo(mock)
	c, err := repo.Create(context.Background(), "Client One", "CL-001", "", "", "")
	require.NoError(t, err)
	require.Equal(t, int64(4), c.ID)
	require.True(t, c.Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInsertsWhenNoInactiveMatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	cols := []string{"id", "name", "code", "address", "phone", "email", "is_active", "created_at", "updated_at"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM clients").
		WithArgs("CL-002", "Client Two").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO clients").
		WithArgs("Client Two", "CL-002", "addr", "555", "a@b.c").
		WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(9), "Client Two", "CL-002", "addr", "555", "a@b.c", true, now, now))
	mock.ExpectCommit()

	repo := NewRepo(mock)
	c, err := repo.Create(context.Background(), "Client Two", "CL-002", "addr", "555", "a@b.c")
	require.NoError(t, err)
	require.Equal(t, int64(9), c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE clients SET is_active = FALSE").
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewRepo(mock)
	err = repo.SoftDelete(context.Background(), 404)
	require.True(t, apperr.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
