package payments

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
)

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		name     string
		original float64
		typeName string
		want     float64
	}{
		{"cash stays as entered", 119, "cash", 119},
		{"check divided by tax rate", 119, "check", 100},
		{"check rounds to two digits", 100, "check", 84.03},
		{"unknown type passes through", 50, "transfer", 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, normalizeAmount(tc.original, tc.typeName))
		})
	}
}

func TestNormalizeAmountDeterministic(t *testing.T) {
	a := normalizeAmount(333.33, "check")
	b := normalizeAmount(333.33, "check")
	require.Equal(t, a, b)
}

func TestRecordRejectsBadInput(t *testing.T) {
	svc := NewService(nil, slog.Default(), nil, "DA")

	_, err := svc.Record(context.Background(), RecordInput{
		ClientID: 1, PaymentDate: time.Now(), OriginalAmount: 0, PaymentTypeID: 1,
	})
	require.True(t, apperr.IsValidation(err))

	_, err = svc.Record(context.Background(), RecordInput{
		ClientID: 1, OriginalAmount: 100, PaymentTypeID: 1,
	})
	require.True(t, apperr.IsValidation(err))
}

type fakeNotifier struct{ msgs []string }

func (f *fakeNotifier) Send(text string) error {
	f.msgs = append(f.msgs, text)
	return nil
}

func TestRecordStoresBothAmounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name FROM payment_types").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("check"))
	mock.ExpectQuery("INSERT INTO client_payments").
		WithArgs(int64(7), date, 100.0, 119.0, int64(2), "DA", "").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "client_id", "payment_date", "amount", "original_amount",
			"payment_type_id", "currency", "notes", "created_at",
		}).AddRow(int64(1), int64(7), date, 100.0, 119.0, int64(2), "DA", "", date))
	mock.ExpectCommit()

	notifier := &fakeNotifier{}
	svc := NewService(mock, slog.Default(), notifier, "DA")

	p, err := svc.Record(context.Background(), RecordInput{
		ClientID: 7, PaymentDate: date, OriginalAmount: 119, PaymentTypeID: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, p.Amount)
	require.Equal(t, 119.0, p.OriginalAmount)
	require.Equal(t, "check", p.PaymentType)
	require.Len(t, notifier.msgs, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordUnknownPaymentType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT name FROM payment_types").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	svc := NewService(mock, slog.Default(), nil, "DA")
	_, err = svc.Record(context.Background(), RecordInput{
		ClientID: 7, PaymentDate: time.Now(), OriginalAmount: 100, PaymentTypeID: 99,
	})
	require.True(t, apperr.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
