package actions

import (
	"context"

	"github.com/sid200307/product-transactions-server/internal/storage"
	"github.com/sid200307/product-transactions-server/internal/storage/transaction"
)

// SeedTransactions bulk-inserts one batch of seed records. Each batch is one
// database transaction; batches already committed by earlier actions stay in
// place when a later batch fails.
type SeedTransactions struct {
	Transactions []*transaction.TransactionCreate
}

func (a *SeedTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transaction.BulkInsert(ctx, a.Transactions)
}
