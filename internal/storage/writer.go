package storage

import (
	"database/sql"

	"github.com/sid200307/product-transactions-server/internal/storage/transaction"
)

type Writer struct {
	tx          *sql.Tx
	Transaction *transaction.Writer
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
