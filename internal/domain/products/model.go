package products

import "time"

type Product struct {
	ID        int64
	Name      string
	Code      string
	Unit      string
	Price     float64 // базовая цена, дублируется в general_prices
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
