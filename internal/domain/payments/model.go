package payments

import "time"

type PaymentType struct {
	ID   int64
	Name string
}

type Payment struct {
	ID             int64
	ClientID       int64
	PaymentDate    time.Time
	Amount         float64 // сумма после нормализации, хранится рядом с исходной
	OriginalAmount float64
	PaymentTypeID  int64
	PaymentType    string
	Currency       string
	Notes          string
	CreatedAt      time.Time
}

type RecordInput struct {
	ClientID       int64
	PaymentDate    time.Time
	OriginalAmount float64
	PaymentTypeID  int64
	Currency       string
	Notes          string
}
