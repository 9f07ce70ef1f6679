package payments

import (
	"context"
	"time"

	"github.com/Spok95/supply-ledger/internal/infra/db"
)

type Repo struct{ db db.DB }

func NewRepo(db db.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListTypes(ctx context.Context) ([]PaymentType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM payment_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PaymentType
	for rows.Next() {
		var t PaymentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListByClient — платежи клиента за период, свежие первыми.
func (r *Repo) ListByClient(ctx context.Context, clientID int64, from, to time.Time) ([]Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT cp.id, cp.client_id, cp.payment_date, cp.amount, cp.original_amount,
		       cp.payment_type_id, pt.name, cp.currency, COALESCE(cp.notes,''), cp.created_at
		FROM client_payments cp
		JOIN payment_types pt ON pt.id = cp.payment_type_id
		WHERE cp.client_id = $1 AND cp.payment_date BETWEEN $2 AND $3
		ORDER BY cp.payment_date DESC
	`, clientID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.PaymentDate, &p.Amount, &p.OriginalAmount,
			&p.PaymentTypeID, &p.PaymentType, &p.Currency, &p.Notes, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
