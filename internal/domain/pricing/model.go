package pricing

import "time"

type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// CategoryPriceRow — строка прайс-листа категории: продукт всегда
// присутствует, цена 0 если для категории не задана.
type CategoryPriceRow struct {
	ProductID   int64
	ProductName string
	ProductCode string
	Price       float64
	PriceID     *int64
}

type ClientPrice struct {
	ID          int64
	ClientID    int64
	ProductID   int64
	ProductName string
	Price       float64
	UpdatedAt   time.Time
}

type GeneralPrice struct {
	ID          int64
	ProductID   int64
	ProductName string
	ProductCode string
	Price       float64
	UpdatedAt   time.Time
}

type Assignment struct {
	ID           int64
	ClientID     int64
	CategoryID   int64
	CategoryName string
	UpdatedAt    time.Time
}

// Source — откуда взялась цена в цепочке приоритетов.
type Source string

const (
	SourceClient   Source = "client"   // персональная цена клиента
	SourceCategory Source = "category" // цена назначенной категории
	SourceGeneral  Source = "general"  // общая цена продукта
	SourceNone     Source = "none"     // цена не настроена, действует 0
)

type Resolved struct {
	Price  float64
	Source Source
}

type ProductPrice struct {
	ProductID int64   `json:"product_id"`
	Price     float64 `json:"price"`
}
