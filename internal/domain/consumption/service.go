package consumption

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
	"github.com/Spok95/supply-ledger/internal/domain/pricing"
	"github.com/Spok95/supply-ledger/internal/infra/db"
)

// notesSanitizer убирает символы, ломающие отрисовку заметок ниже по течению.
var notesSanitizer = strings.NewReplacer("<", "", ">", "", "'", "", `"`, "", "&", "")

func sanitizeNotes(notes string) string {
	return notesSanitizer.Replace(notes)
}

type Recorder struct {
	db  db.DB
	log *slog.Logger
}

func NewRecorder(db db.DB, log *slog.Logger) *Recorder {
	return &Recorder{db: db, log: log}
}

const entryCols = `id, entry_date, client_id, product_id, quantity, unit_price, total_amount,
	       COALESCE(sequence_number,''), COALESCE(notes,''), is_active, created_at, updated_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	if err := row.Scan(
		&e.ID, &e.EntryDate, &e.ClientID, &e.ProductID, &e.Quantity, &e.UnitPrice, &e.TotalAmount,
		&e.SequenceNumber, &e.Notes, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// Record проводит запись расхода. Цена, сумма и порядковый номер
// добираются внутри одной транзакции, так что либо запись проходит
// целиком, либо счётчик и таблицы не трогаются вовсе.
func (s *Recorder) Record(ctx context.Context, in RecordInput) (*Entry, error) {
	if in.Quantity <= 0 {
		return nil, apperr.Validationf("quantity must be positive")
	}
	if in.EntryDate.IsZero() {
		return nil, apperr.Validationf("entry date is required")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var unitPrice, totalAmount float64
	if in.UnitPrice != nil && in.TotalAmount != nil {
		unitPrice, totalAmount = *in.UnitPrice, *in.TotalAmount
	} else {
		resolved, err := pricing.ResolveIn(ctx, tx, in.ClientID, in.ProductID)
		if err != nil {
			return nil, err
		}
		unitPrice = resolved.Price
		totalAmount = decimal.NewFromFloat(in.Quantity).
			Mul(decimal.NewFromFloat(unitPrice)).
			Round(2).InexactFloat64()
	}

	seq := in.SequenceNumber
	if seq == "" {
		seq, err = nextSequence(ctx, tx, time.Now().Year())
		if err != nil {
			return nil, err
		}
	}

	notes := sanitizeNotes(in.Notes)

	// дубль по (дата, клиент, продукт) реактивируем вместо новой строки
	var inactiveID int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM consumption_entries
		WHERE entry_date = $1 AND client_id = $2 AND product_id = $3 AND is_active = FALSE
		LIMIT 1
	`, in.EntryDate, in.ClientID, in.ProductID).Scan(&inactiveID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}

	var row pgx.Row
	if err == nil {
		row = tx.QueryRow(ctx, `
			UPDATE consumption_entries
			SET quantity=$1, unit_price=$2, total_amount=$3, sequence_number=$4, notes=$5,
			    is_active=TRUE, updated_at=NOW()
			WHERE id=$6
			RETURNING `+entryCols, in.Quantity, unitPrice, totalAmount, seq, notes, inactiveID)
	} else {
		row = tx.QueryRow(ctx, `
			INSERT INTO consumption_entries
				(entry_date, client_id, product_id, quantity, unit_price, total_amount, sequence_number, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING `+entryCols, in.EntryDate, in.ClientID, in.ProductID, in.Quantity, unitPrice, totalAmount, seq, notes)
	}

	entry, err := scanEntry(row)
	if err != nil {
		return nil, apperr.FromPg(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Info("consumption recorded",
		"entry_id", entry.ID,
		"client_id", entry.ClientID,
		"product_id", entry.ProductID,
		"sequence", entry.SequenceNumber,
	)
	return entry, nil
}
