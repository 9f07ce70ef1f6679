package pricing

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestPick(t *testing.T) {
	cases := []struct {
		name     string
		client   *float64
		category *float64
		general  *float64
		want     Resolved
	}{
		{"client wins over everything", ptr(150), ptr(120), ptr(100), Resolved{Price: 150, Source: SourceClient}},
		{"category wins over general", nil, ptr(120), ptr(100), Resolved{Price: 120, Source: SourceCategory}},
		{"general as fallback", nil, nil, ptr(100), Resolved{Price: 100, Source: SourceGeneral}},
		{"no price at all", nil, nil, nil, Resolved{Price: 0, Source: SourceNone}},
		{"client zero still wins", ptr(0), ptr(120), ptr(100), Resolved{Price: 0, Source: SourceClient}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, pick(tc.client, tc.category, tc.general))
		})
	}
}

func TestResolveIn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("LEFT JOIN client_prices").
		WithArgs(int64(7), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"cp", "catp", "gp"}).AddRow(nil, ptr(120.0), ptr(100.0)))

	got, err := ResolveIn(context.Background(), mock, 7, 3)
	require.NoError(t, err)
	require.Equal(t, Resolved{Price: 120, Source: SourceCategory}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveInUnknownProduct(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("LEFT JOIN client_prices").
		WithArgs(int64(7), int64(999)).
		WillReturnError(pgx.ErrNoRows)

	got, err := ResolveIn(context.Background(), mock, 7, 999)
	require.NoError(t, err)
	require.Equal(t, Resolved{Price: 0, Source: SourceNone}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
