package consumption

import (
	"context"
	"fmt"

	"github.com/Spok95/supply-ledger/internal/infra/db"
)

// formatSequence даёт человекочитаемый номер вида 007/2026.
func formatSequence(n, year int) string {
	return fmt.Sprintf("%03d/%d", n, year)
}

// nextSequence атомарно сдвигает счётчик года и возвращает номер.
// Счётчик заведён отдельной строкой на год, поэтому два конкурентных
// вызова не получат один номер, а новый год начинается с 001.
func nextSequence(ctx context.Context, q db.Querier, year int) (string, error) {
	var value int
	err := q.QueryRow(ctx, `
		INSERT INTO sequence_counters (year, value)
		VALUES ($1, 1)
		ON CONFLICT (year)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value
	`, year).Scan(&value)
	if err != nil {
		return "", err
	}
	return formatSequence(value, year), nil
}

// PeekSequence показывает следующий номер, не расходуя его.
func (r *Repo) PeekSequence(ctx context.Context, year int) (string, error) {
	var value int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE((SELECT value FROM sequence_counters WHERE year = $1), 0) + 1
	`, year).Scan(&value)
	if err != nil {
		return "", err
	}
	return formatSequence(value, year), nil
}
