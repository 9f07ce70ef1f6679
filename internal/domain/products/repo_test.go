package products

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
)

func TestCreateValidation(t *testing.T) {
	repo := NewRepo(nil)

	_, err := repo.Create(context.Background(), "", "SBL-0-3", "T", 100)
	require.True(t, apperr.IsValidation(err))

	_, err = repo.Create(context.Background(), "SABLE 0/3", "", "T", 100)
	require.True(t, apperr.IsValidation(err))
}

func TestCreateConflictsWithActiveDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, is_active FROM products").
		WithArgs("SABLE 0/3", "SBL-0-3").
		WillReturnRows(pgxmock.NewRows([]string{"id", "is_active"}).AddRow(int64(1), true))
	mock.ExpectRollback()

	repo := NewRepo(mock)
	_, err = repo.Create(context.Background(), "SABLE 0/3", "SBL-0-3", "T", 100)
	require.True(t, apperr.IsConflict(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE products SET is_active = FALSE").
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewRepo(mock)
	err = repo.SoftDelete(context.Background(), 404)
	require.True(t, apperr.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
