package ledger

import "time"

const (
	StatusCredit = "Credit"
	StatusDebt   = "Debt"
)

// Summary — сальдо клиента за период: платежи минус расход.
type Summary struct {
	TotalConsumption float64
	TotalPayments    float64
	Balance          float64
	Status           string
}

// DailyRow — строка детального отчёта; цена берётся из записи,
// а не пересчитывается по текущим прайсам.
type DailyRow struct {
	EntryDate   time.Time
	ProductName string
	Unit        string
	Quantity    float64
	UnitPrice   float64
	TotalAmount float64
	Notes       string
}

type MonthlyRow struct {
	Month         time.Time
	ProductName   string
	Unit          string
	TotalQuantity float64
	TotalAmount   float64
}
