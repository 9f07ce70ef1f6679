package consumption

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

func ptr(v float64) *float64 { return &v }

func TestSanitizeNotes(t *testing.T) {
	require.Equal(t, "abc", sanitizeNotes(`a<b>&'"c`))
	require.Equal(t, "plain text", sanitizeNotes("plain text"))
	require.Equal(t, "", sanitizeNotes(`<>&'"`))
}

func TestRecordRejectsBadInput(t *testing.T) {
	rec := NewRecorder(nil, slog.Default())

	_, err := rec.Record(context.Background(), RecordInput{
		EntryDate: time.Now(), ClientID: 1, ProductID: 1, Quantity: 0,
	})
	require.True(t, apperr.IsValidation(err))

	_, err = rec.Record(context.Background(), RecordInput{
		ClientID: 1, ProductID: 1, Quantity: 2,
	})
	require.True(t, apperr.IsValidation(err))
}

func TestRecordInsertsNewEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	year := time.Now().Year()
	seq := formatSequence(1, year)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN client_prices").
		WithArgs(int64(7), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"cp", "catp", "gp"}).AddRow(nil, nil, ptr(100.0)))
	mock.ExpectQuery("INSERT INTO sequence_counters").
		WithArgs(year).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectQuery("SELECT id FROM consumption_entries").
		WithArgs(date, int64(7), int64(3)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO consumption_entries").
		WithArgs(date, int64(7), int64(3), 2.5, 100.0, 250.0, seq, "delivery").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "entry_date", "client_id", "product_id", "quantity", "unit_price", "total_amount",
			"sequence_number", "notes", "is_active", "created_at", "updated_at",
		}).AddRow(int64(1), date, int64(7), int64(3), 2.5, 100.0, 250.0, seq, "delivery", true, date, date))
	mock.ExpectCommit()

	rec := NewRecorder(mock, slog.Default())
	entry, err := rec.Record(context.Background(), RecordInput{
		EntryDate: date, ClientID: 7, ProductID: 3, Quantity: 2.5, Notes: "delivery",
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, entry.UnitPrice)
	require.Equal(t, 250.0, entry.TotalAmount)
	require.Equal(t, seq, entry.SequenceNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Дубль по (дата, клиент, продукт) оживает вместо вставки новой строки.
func TestRecordReactivatesInactiveDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM consumption_entries").
		WithArgs(date, int64(7), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery("UPDATE consumption_entries").
		WithArgs(1.0, 150.0, 150.0, "002/2026", "", int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "entry_date", "client_id", "product_id", "quantity", "unit_price", "total_amount",
			"sequence_number", "notes", "is_active", "created_at", "updated_at",
		}).AddRow(int64(5), date, int64(7), int64(3), 1.0, 150.0, 150.0, "002/2026", "", true, date, date))
	mock.ExpectCommit()

	rec := NewRecorder(mock, slog.Default())
	entry, err := rec.Record(context.Background(), RecordInput{
		EntryDate: date, ClientID: 7, ProductID: 3, Quantity: 1,
		SequenceNumber: "002/2026",
		UnitPrice:      ptr(150), TotalAmount: ptr(150),
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), entry.ID)
	require.True(t, entry.Active)
	require.NoError(t, mock.ExpectationsWereMet())
}
