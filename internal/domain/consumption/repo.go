package consumption

import (
	"context"
	"time"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
	"github.com/Spok95/supply-ledger/internal/infra/db"
)

type Repo struct{ db db.DB }

func NewRepo(db db.DB) *Repo { return &Repo{db: db} }

// ListByDate — журнал за день с именами клиента и продукта.
func (r *Repo) ListByDate(ctx context.Context, date time.Time) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ce.id, ce.entry_date, ce.client_id, c.name, ce.product_id, p.name, p.unit,
		       ce.quantity, ce.unit_price, ce.total_amount,
		       COALESCE(ce.sequence_number,''), COALESCE(ce.notes,''),
		       ce.is_active, ce.created_at, ce.updated_at
		FROM consumption_entries ce
		JOIN clients c ON c.id = ce.client_id
		JOIN products p ON p.id = ce.product_id
		WHERE ce.entry_date = $1 AND ce.is_active = TRUE
		ORDER BY c.name, p.id
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.EntryDate, &e.ClientID, &e.ClientName, &e.ProductID, &e.ProductName, &e.Unit,
			&e.Quantity, &e.UnitPrice, &e.TotalAmount,
			&e.SequenceNumber, &e.Notes,
			&e.Active, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SoftDelete снимает флаг активности, строка и её цена остаются в истории.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE consumption_entries SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("consumption entry %d not found", id)
	}
	return nil
}
