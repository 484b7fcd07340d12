package transaction

import (
	"context"
	"strconv"
	"strings"
)

type Writer struct {
	db DB
}

func NewWriter(db DB) *Writer {
	return &Writer{db: db}
}

// BulkInsert writes all creates in a single multi-row INSERT. Zero sale
// dates are stored as NULL.
func (w *Writer) BulkInsert(ctx context.Context, creates []*TransactionCreate) error {
	if len(creates) == 0 {
		return nil
	}

	var query strings.Builder
	query.WriteString("INSERT INTO transactions (title, description, price, date_of_sale, category, image, sold) VALUES ")

	args := make([]any, 0, len(creates)*7)
	for i, create := range creates {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("(")
		for j := 0; j < 7; j++ {
			if j > 0 {
				query.WriteString(", ")
			}
			query.WriteString("$" + strconv.Itoa(i*7+j+1))
		}
		query.WriteString(")")

		var dateOfSale any
		if !create.DateOfSale.IsZero() {
			dateOfSale = create.DateOfSale
		}
		args = append(args,
			create.Title,
			create.Description,
			create.Price,
			dateOfSale,
			create.Category,
			create.Image,
			create.Sold,
		)
	}

	_, err := w.db.ExecContext(ctx, query.String(), args...)
	return err
}
