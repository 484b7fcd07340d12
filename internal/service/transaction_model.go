package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a product transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	DateOfSale  time.Time
	Category    string
	Image       string
	Sold        bool
	CreatedAt   time.Time
}
