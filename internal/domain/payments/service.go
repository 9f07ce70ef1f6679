package payments

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
	"github.com/Spok95/supply-ledger/internal/infra/db"
)

// Чеки проводятся суммой без налога: исходная сумма делится на 1.19.
const (
	taxExclusiveType = "check"
	taxDivisor       = "1.19"
)

// normalizeAmount считает хранимую сумму из исходной. Округление до двух
// знаков half-away-from-zero, на одинаковом входе результат одинаковый.
func normalizeAmount(original float64, typeName string) float64 {
	if typeName != taxExclusiveType {
		return original
	}
	divisor, _ := decimal.NewFromString(taxDivisor)
	return decimal.NewFromFloat(original).Div(divisor).Round(2).InexactFloat64()
}

// Notifier шлёт уведомление админу; nil — уведомления выключены.
type Notifier interface {
	Send(text string) error
}

type Service struct {
	db       db.DB
	log      *slog.Logger
	notifier Notifier
	currency string
}

func NewService(db db.DB, log *slog.Logger, notifier Notifier, currency string) *Service {
	if currency == "" {
		currency = "DA"
	}
	return &Service{db: db, log: log, notifier: notifier, currency: currency}
}

// Record сохраняет платёж: исходная сумма остаётся как введена,
// рядом пишется нормализованная по типу платежа.
func (s *Service) Record(ctx context.Context, in RecordInput) (*Payment, error) {
	if in.OriginalAmount <= 0 {
		return nil, apperr.Validationf("payment amount must be positive")
	}
	if in.PaymentDate.IsZero() {
		return nil, apperr.Validationf("payment date is required")
	}
	currency := in.Currency
	if currency == "" {
		currency = s.currency
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var typeName string
	err = tx.QueryRow(ctx, `SELECT name FROM payment_types WHERE id = $1`, in.PaymentTypeID).Scan(&typeName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.NotFoundf("payment type %d not found", in.PaymentTypeID)
		}
		return nil, err
	}

	stored := normalizeAmount(in.OriginalAmount, typeName)

	row := tx.QueryRow(ctx, `
		INSERT INTO client_payments
			(client_id, payment_date, amount, original_amount, payment_type_id, currency, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, client_id, payment_date, amount, original_amount, payment_type_id, currency, COALESCE(notes,''), created_at
	`, in.ClientID, in.PaymentDate, stored, in.OriginalAmount, in.PaymentTypeID, currency, in.Notes)

	var p Payment
	if err := row.Scan(
		&p.ID, &p.ClientID, &p.PaymentDate, &p.Amount, &p.OriginalAmount,
		&p.PaymentTypeID, &p.Currency, &p.Notes, &p.CreatedAt,
	); err != nil {
		return nil, apperr.FromPg(err)
	}
	p.PaymentType = typeName

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Info("payment recorded",
		"payment_id", p.ID,
		"client_id", p.ClientID,
		"amount", p.Amount,
		"type", typeName,
	)
	if s.notifier != nil {
		msg := fmt.Sprintf("Платёж: клиент #%d, %.2f %s (%s)", p.ClientID, p.Amount, p.Currency, typeName)
		if err := s.notifier.Send(msg); err != nil {
			s.log.Error("admin notification failed", "err", err)
		}
	}
	return &p, nil
}
