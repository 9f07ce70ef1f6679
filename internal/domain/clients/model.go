package clients

import "time"

type Client struct {
	ID        int64
	Name      string
	Code      string
	Address   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
