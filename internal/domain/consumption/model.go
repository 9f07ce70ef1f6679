package consumption

import "time"

type Entry struct {
	ID             int64
	EntryDate      time.Time
	ClientID       int64
	ClientName     string
	ProductID      int64
	ProductName    string
	Unit           string
	Quantity       float64
	UnitPrice      float64 // цена, действовавшая на момент записи
	TotalAmount    float64
	SequenceNumber string
	Notes          string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecordInput — вход рекордера. UnitPrice/TotalAmount nil означают
// "посчитай сам", пустой SequenceNumber — "выдай следующий номер".
type RecordInput struct {
	EntryDate      time.Time
	ClientID       int64
	ProductID      int64
	Quantity       float64
	SequenceNumber string
	Notes          string
	UnitPrice      *float64
	TotalAmount    *float64
}
