package pricing

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
	"github.com/Spok95/supply-ledger/internal/infra/db"
)

type Repo struct{ db db.DB }

func NewRepo(db db.DB) *Repo { return &Repo{db: db} }

/* Категории цен */

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(description,''), created_at
		FROM price_categories ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validationf("category name is required")
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO price_categories (name, description)
		VALUES ($1,$2)
		RETURNING id, name, COALESCE(description,''), created_at
	`, name, description)

	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
		return nil, apperr.FromPg(err)
	}
	return &c, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, id int64, name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validationf("category name is required")
	}
	row := r.db.QueryRow(ctx, `
		UPDATE price_categories SET name=$1, description=$2
		WHERE id=$3
		RETURNING id, name, COALESCE(description,''), created_at
	`, name, description, id)

	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.NotFoundf("price category %d not found", id)
		}
		return nil, apperr.FromPg(err)
	}
	return &c, nil
}

/* Цены категорий */

// ListCategoryPrices отдаёт строку на каждый продукт, в том числе без цены.
func (r *Repo) ListCategoryPrices(ctx context.Context, categoryID int64) ([]CategoryPriceRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.code, COALESCE(cp.price, 0), cp.id
		FROM products p
		LEFT JOIN category_prices cp ON cp.product_id = p.id AND cp.category_id = $1
		WHERE p.is_active = TRUE
		ORDER BY p.id
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryPriceRow
	for rows.Next() {
		var it CategoryPriceRow
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.ProductCode, &it.Price, &it.PriceID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertCategoryPrice(ctx context.Context, categoryID, productID int64, price float64) error {
	if price < 0 {
		return apperr.Validationf("price must not be negative")
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO category_prices (category_id, product_id, price)
		VALUES ($1,$2,$3)
		ON CONFLICT (category_id, product_id)
		DO UPDATE SET price=$3, updated_at=NOW()
	`, categoryID, productID, price)
	return apperr.FromPg(err)
}

// BulkSetCategoryPrices задаёт прайс-лист категории целиком одной
// транзакцией; позиции с неизвестными продуктами пропускаются.
func (r *Repo) BulkSetCategoryPrices(ctx context.Context, categoryID int64, prices []ProductPrice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `SELECT id FROM products`)
	if err != nil {
		return err
	}
	valid := map[int64]bool{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		valid[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, pp := range prices {
		if !valid[pp.ProductID] {
			continue
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO category_prices (category_id, product_id, price)
			VALUES ($1,$2,$3)
			ON CONFLICT (category_id, product_id)
			DO UPDATE SET price=$3, updated_at=NOW()
		`, categoryID, pp.ProductID, pp.Price); err != nil {
			return apperr.FromPg(err)
		}
	}
	return tx.Commit(ctx)
}

/* Персональные цены клиентов */

func (r *Repo) ListClientPrices(ctx context.Context, clientID int64) ([]ClientPrice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT cp.id, cp.client_id, cp.product_id, p.name, cp.price, cp.updated_at
		FROM client_prices cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.client_id = $1
		ORDER BY p.id
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClientPrice
	for rows.Next() {
		var it ClientPrice
		if err := rows.Scan(&it.ID, &it.ClientID, &it.ProductID, &it.ProductName, &it.Price, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertClientPrice(ctx context.Context, clientID, productID int64, price float64) (*ClientPrice, error) {
	if price < 0 {
		return nil, apperr.Validationf("price must not be negative")
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO client_prices (client_id, product_id, price)
		VALUES ($1,$2,$3)
		ON CONFLICT (client_id, product_id)
		DO UPDATE SET price=$3, updated_at=NOW()
		RETURNING id, client_id, product_id, price, updated_at
	`, clientID, productID, price)

	var it ClientPrice
	if err := row.Scan(&it.ID, &it.ClientID, &it.ProductID, &it.Price, &it.UpdatedAt); err != nil {
		return nil, apperr.FromPg(err)
	}
	return &it, nil
}

/* Общие цены */

func (r *Repo) ListGeneralPrices(ctx context.Context) ([]GeneralPrice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT gp.id, gp.product_id, p.name, p.code, gp.price, gp.updated_at
		FROM general_prices gp
		JOIN products p ON p.id = gp.product_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GeneralPrice
	for rows.Next() {
		var it GeneralPrice
		if err := rows.Scan(&it.ID, &it.ProductID, &it.ProductName, &it.ProductCode, &it.Price, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// GetGeneralPrice возвращает 0 для продукта без общей цены.
func (r *Repo) GetGeneralPrice(ctx context.Context, productID int64) (float64, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COALESCE((SELECT price FROM general_prices WHERE product_id = $1), 0)
	`, productID)
	var price float64
	if err := row.Scan(&price); err != nil {
		return 0, err
	}
	return price, nil
}

/* Привязка клиента к категории */

func (r *Repo) GetAssignment(ctx context.Context, clientID int64) (*Assignment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT cpa.id, cpa.client_id, cpa.category_id, pc.name, cpa.updated_at
		FROM client_price_assignments cpa
		JOIN price_categories pc ON pc.id = cpa.category_id
		WHERE cpa.client_id = $1
	`, clientID)

	var a Assignment
	if err := row.Scan(&a.ID, &a.ClientID, &a.CategoryID, &a.CategoryName, &a.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// SetAssignment — у клиента не больше одной категории, повторное
// назначение перезаписывает прежнее.
func (r *Repo) SetAssignment(ctx context.Context, clientID, categoryID int64) (*Assignment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO client_price_assignments (client_id, category_id)
		VALUES ($1,$2)
		ON CONFLICT (client_id)
		DO UPDATE SET category_id=$2, updated_at=NOW()
		RETURNING id, client_id, category_id, updated_at
	`, clientID, categoryID)

	var a Assignment
	if err := row.Scan(&a.ID, &a.ClientID, &a.CategoryID, &a.UpdatedAt); err != nil {
		return nil, apperr.FromPg(err)
	}
	return &a, nil
}
