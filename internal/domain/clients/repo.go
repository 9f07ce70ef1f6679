package clients

import (
	"context"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
	"github.com/Spok95/supply-ledger/internal/infra/db"
)

var codeJunk = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

// SanitizeCode оставляет в коде только буквы, цифры, дефис и подчёркивание.
func SanitizeCode(code string) string {
	return codeJunk.ReplaceAllString(strings.TrimSpace(code), "")
}

type Repo struct{ db db.DB }

func NewRepo(db db.DB) *Repo { return &Repo{db: db} }

const clientCols = `id, name, code, COALESCE(address,''), COALESCE(phone,''), COALESCE(email,''), is_active, created_at, updated_at`

func scanClient(row pgx.Row) (*Client, error) {
	var c Client
	if err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Client, error) {
	row := r.db.QueryRow(ctx, `SELECT `+clientCols+` FROM clients WHERE id = $1 AND is_active = TRUE`, id)
	c, err := scanClient(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.NotFoundf("client %d not found", id)
		}
		return nil, err
	}
	return c, nil
}

func (r *Repo) List(ctx context.Context) ([]Client, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clientCols+` FROM clients WHERE is_active = TRUE ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create регистрирует клиента. Если по коду или имени находится
// неактивная запись — она реактивируется на месте, новая строка не заводится.
func (r *Repo) Create(ctx context.Context, name, code, address, phone, email string) (*Client, error) {
	name = strings.TrimSpace(name)
	code = SanitizeCode(code)
	if name == "" {
		return nil, apperr.Validationf("client name is required")
	}
	if code == "" {
		return nil, apperr.Validationf("client code is required")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var inactiveID int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM clients
		WHERE (code = $1 OR name = $2) AND is_active = FALSE
		LIMIT 1
	`, code, name).Scan(&inactiveID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}

	var row pgx.Row
	if err == nil {
		row = tx.QueryRow(ctx, `
			UPDATE clients
			SET name=$1, code=$2, address=$3, phone=$4, email=$5, is_active=TRUE, updated_at=NOW()
			WHERE id=$6
			RETURNING `+clientCols, name, code, address, phone, email, inactiveID)
	} else {
		row = tx.QueryRow(ctx, `
			INSERT INTO clients (name, code, address, phone, email)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING `+clientCols, name, code, address, phone, email)
	}

	c, err := scanClient(row)
	if err != nil {
		return nil, apperr.FromPg(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repo) Update(ctx context.Context, id int64, name, code, address, phone, email string) (*Client, error) {
	name = strings.TrimSpace(name)
	code = SanitizeCode(code)
	if name == "" || code == "" {
		return nil, apperr.Validationf("client name and code are required")
	}

	row := r.db.QueryRow(ctx, `
		UPDATE clients
		SET name=$1, code=$2, address=$3, phone=$4, email=$5, updated_at=NOW()
		WHERE id=$6 AND is_active = TRUE
		RETURNING `+clientCols, name, code, address, phone, email, id)
	c, err := scanClient(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.NotFoundf("client %d not found", id)
		}
		return nil, apperr.FromPg(err)
	}
	return c, nil
}

// SoftDelete только снимает флаг активности: история по клиенту остаётся.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE clients SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("client %d not found", id)
	}
	return nil
}
