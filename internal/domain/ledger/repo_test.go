package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestClientSummaryDebt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM client_payments p").
		WithArgs(int64(7), from, to).
		WillReturnRows(pgxmock.NewRows([]string{"consumption", "payments"}).AddRow(620.0, 500.0))

	repo := NewRepo(mock)
	s, err := repo.ClientSummary(context.Background(), 7, from, to)
	require.NoError(t, err)
	require.Equal(t, 620.0, s.TotalConsumption)
	require.Equal(t, 500.0, s.TotalPayments)
	require.Equal(t, -120.0, s.Balance)
	require.Equal(t, StatusDebt, s.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientSummaryEmptyPeriodIsCredit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM client_payments p").
		WithArgs(int64(7), from, to).
		WillReturnRows(pgxmock.NewRows([]string{"consumption", "payments"}).AddRow(0.0, 0.0))

	repo := NewRepo(mock)
	s, err := repo.ClientSummary(context.Background(), 7, from, to)
	require.NoError(t, err)
	require.Equal(t, 0.0, s.Balance)
	require.Equal(t, StatusCredit, s.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientSummaryExactSettlement(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM client_payments p").
		WithArgs(int64(7), from, to).
		WillReturnRows(pgxmock.NewRows([]string{"consumption", "payments"}).AddRow(300.0, 300.0))

	repo := NewRepo(mock)
	s, err := repo.ClientSummary(context.Background(), 7, from, to)
	require.NoError(t, err)
	require.Equal(t, 0.0, s.Balance)
	require.Equal(t, StatusCredit, s.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
