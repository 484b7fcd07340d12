package transaction

import (
	"time"

	"github.com/sid200307/product-transactions-server/internal/service"
)

// Transaction is the API response model for a product transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Title       string `json:"title" doc:"Product title"`
	Description string `json:"description" doc:"Product description"`
	Price       string `json:"price" doc:"Decimal sale price"`
	DateOfSale  string `json:"dateOfSale,omitempty" doc:"RFC3339 sale date, absent when unknown"`
	Category    string `json:"category" doc:"Product category"`
	Image       string `json:"image" doc:"Product image URL"`
	Sold        bool   `json:"sold" doc:"Whether the product has been sold"`
}

func fromServiceTransaction(tx service.Transaction) Transaction {
	dateOfSale := ""
	if !tx.DateOfSale.IsZero() {
		dateOfSale = tx.DateOfSale.Format(time.RFC3339)
	}

	return Transaction{
		ID:          tx.ID.String(),
		Title:       tx.Title,
		Description: tx.Description,
		Price:       tx.Price.String(),
		DateOfSale:  dateOfSale,
		Category:    tx.Category,
		Image:       tx.Image,
		Sold:        tx.Sold,
	}
}
