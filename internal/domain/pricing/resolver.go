package pricing

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Spok95/supply-ledger/internal/infra/db"
)

// Один запрос по всем трём таблицам цен: никакой гонки между
// последовательными чтениями, приоритет схлопывается на месте.
const resolveQuery = `
	SELECT cp.price, catp.price, gp.price
	FROM products p
	LEFT JOIN client_prices cp ON cp.client_id = $1 AND cp.product_id = p.id
	LEFT JOIN client_price_assignments cpa ON cpa.client_id = $1
	LEFT JOIN category_prices catp ON catp.category_id = cpa.category_id AND catp.product_id = p.id
	LEFT JOIN general_prices gp ON gp.product_id = p.id
	WHERE p.id = $2
`

// pick выбирает первую заданную цену по приоритету
// клиент > категория > общая; без единой цены действует 0.
func pick(clientPrice, categoryPrice, generalPrice *float64) Resolved {
	switch {
	case clientPrice != nil:
		return Resolved{Price: *clientPrice, Source: SourceClient}
	case categoryPrice != nil:
		return Resolved{Price: *categoryPrice, Source: SourceCategory}
	case generalPrice != nil:
		return Resolved{Price: *generalPrice, Source: SourceGeneral}
	}
	return Resolved{Price: 0, Source: SourceNone}
}

// ResolveIn считает действующую цену внутри переданного Querier —
// так Recorder получает цену в той же транзакции, что и запись.
func ResolveIn(ctx context.Context, q db.Querier, clientID, productID int64) (Resolved, error) {
	var clientPrice, categoryPrice, generalPrice *float64
	err := q.QueryRow(ctx, resolveQuery, clientID, productID).Scan(&clientPrice, &categoryPrice, &generalPrice)
	if err != nil {
		if err == pgx.ErrNoRows {
			// продукта нет — отсутствие цены, а не ошибка
			return Resolved{Price: 0, Source: SourceNone}, nil
		}
		return Resolved{}, err
	}
	return pick(clientPrice, categoryPrice, generalPrice), nil
}

func (r *Repo) Resolve(ctx context.Context, clientID, productID int64) (Resolved, error) {
	return ResolveIn(ctx, r.db, clientID, productID)
}
