package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Spok95/supply-ledger/internal/infra/db"
)

type Repo struct{ db db.DB }

func NewRepo(db db.DB) *Repo { return &Repo{db: db} }

// ClientSummary считает сальдо одним запросом; пустой период даёт нули
// и статус Credit. Границы периода включительно.
func (r *Repo) ClientSummary(ctx context.Context, clientID int64, from, to time.Time) (*Summary, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(ce.total_amount) FROM consumption_entries ce
			          WHERE ce.client_id = $1 AND ce.is_active = TRUE
			            AND ce.entry_date BETWEEN $2 AND $3), 0),
			COALESCE((SELECT SUM(p.amount) FROM client_payments p
			          WHERE p.client_id = $1
			            AND p.payment_date BETWEEN $2 AND $3), 0)
	`, clientID, from, to)

	var s Summary
	if err := row.Scan(&s.TotalConsumption, &s.TotalPayments); err != nil {
		return nil, err
	}

	s.Balance = decimal.NewFromFloat(s.TotalPayments).
		Sub(decimal.NewFromFloat(s.TotalConsumption)).
		Round(2).InexactFloat64()
	s.Status = StatusCredit
	if s.Balance < 0 {
		s.Status = StatusDebt
	}
	return &s, nil
}

// DailyReport — поштучные записи клиента за период с зафиксированными ценами.
func (r *Repo) DailyReport(ctx context.Context, clientID int64, from, to time.Time) ([]DailyRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ce.entry_date, p.name, p.unit, ce.quantity, ce.unit_price, ce.total_amount,
		       COALESCE(ce.notes,'')
		FROM consumption_entries ce
		JOIN products p ON p.id = ce.product_id
		WHERE ce.client_id = $1 AND ce.is_active = TRUE
		  AND ce.entry_date BETWEEN $2 AND $3
		ORDER BY ce.entry_date, p.id
	`, clientID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyRow
	for rows.Next() {
		var it DailyRow
		if err := rows.Scan(&it.EntryDate, &it.ProductName, &it.Unit, &it.Quantity, &it.UnitPrice, &it.TotalAmount, &it.Notes); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// MonthlyReport — помесячные суммы по продуктам.
func (r *Repo) MonthlyReport(ctx context.Context, clientID int64, from, to time.Time) ([]MonthlyRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DATE_TRUNC('month', ce.entry_date) AS month, p.name, p.unit,
		       SUM(ce.quantity), SUM(ce.total_amount)
		FROM consumption_entries ce
		JOIN products p ON p.id = ce.product_id
		WHERE ce.client_id = $1 AND ce.is_active = TRUE
		  AND ce.entry_date BETWEEN $2 AND $3
		GROUP BY DATE_TRUNC('month', ce.entry_date), p.id, p.name, p.unit
		ORDER BY month, p.id
	`, clientID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthlyRow
	for rows.Next() {
		var it MonthlyRow
		if err := rows.Scan(&it.Month, &it.ProductName, &it.Unit, &it.TotalQuantity, &it.TotalAmount); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
