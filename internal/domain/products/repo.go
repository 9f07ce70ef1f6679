package products

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
	"github.com/Spok95/supply-ledger/internal/domain/clients"
	"github.com/Spok95/supply-ledger/internal/infra/db"
)

const DefaultUnit = "T"

type Repo struct{ db db.DB }

func NewRepo(db db.DB) *Repo { return &Repo{db: db} }

const productCols = `id, name, code, unit, price, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Unit, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.NotFoundf("product %d not found", id)
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context, onlyActive bool) ([]Product, error) {
	q := `SELECT ` + productCols + ` FROM products`
	if onlyActive {
		q += ` WHERE is_active = TRUE`
	}
	q += ` ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Unit, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create добавляет продукт. Совпадение по имени/коду с неактивной записью —
// реактивация, с активной — конфликт. Базовая цена > 0 дублируется в general_prices.
func (r *Repo) Create(ctx context.Context, name, code, unit string, generalPrice float64) (*Product, error) {
	name = strings.TrimSpace(name)
	code = clients.SanitizeCode(code)
	if name == "" {
		return nil, apperr.Validationf("product name is required")
	}
	if code == "" {
		return nil, apperr.Validationf("product code is required")
	}
	if unit == "" {
		unit = DefaultUnit
	}
	if generalPrice < 0 {
		generalPrice = 0
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existingID int64
	var existingActive bool
	err = tx.QueryRow(ctx, `
		SELECT id, is_active FROM products
		WHERE name = $1 OR code = $2
		LIMIT 1
	`, name, code).Scan(&existingID, &existingActive)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}

	var row pgx.Row
	switch {
	case err == nil && existingActive:
		return nil, apperr.Conflictf("product with this name or code already exists")
	case err == nil:
		row = tx.QueryRow(ctx, `
			UPDATE products
			SET name=$1, code=$2, unit=$3, price=$4, is_active=TRUE, updated_at=NOW()
			WHERE id=$5
			RETURNING `+productCols, name, code, unit, generalPrice, existingID)
	default:
		row = tx.QueryRow(ctx, `
			INSERT INTO products (name, code, unit, price)
			VALUES ($1,$2,$3,$4)
			RETURNING `+productCols, name, code, unit, generalPrice)
	}

	p, err := scanProduct(row)
	if err != nil {
		return nil, apperr.FromPg(err)
	}

	if generalPrice > 0 {
		if _, err := tx.Exec(ctx, `
			INSERT INTO general_prices (product_id, price)
			VALUES ($1,$2)
			ON CONFLICT (product_id) DO UPDATE SET price=$2, updated_at=NOW()
		`, p.ID, generalPrice); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Update меняет карточку продукта; generalPrice == nil оставляет цену как есть,
// 0 удаляет общую цену, > 0 — upsert в general_prices.
func (r *Repo) Update(ctx context.Context, id int64, name, code, unit string, generalPrice *float64) (*Product, error) {
	name = strings.TrimSpace(name)
	code = clients.SanitizeCode(code)
	if name == "" || code == "" {
		return nil, apperr.Validationf("product name and code are required")
	}
	if unit == "" {
		unit = DefaultUnit
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		UPDATE products
		SET name=$1, code=$2, unit=$3, updated_at=NOW()
		WHERE id=$4
		RETURNING `+productCols, name, code, unit, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.NotFoundf("product %d not found", id)
		}
		return nil, apperr.FromPg(err)
	}

	if generalPrice != nil {
		if *generalPrice > 0 {
			if _, err := tx.Exec(ctx, `
				INSERT INTO general_prices (product_id, price)
				VALUES ($1,$2)
				ON CONFLICT (product_id) DO UPDATE SET price=$2, updated_at=NOW()
			`, p.ID, *generalPrice); err != nil {
				return nil, err
			}
		} else {
			if _, err := tx.Exec(ctx, `DELETE FROM general_prices WHERE product_id = $1`, p.ID); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("product %d not found", id)
	}
	return nil
}
