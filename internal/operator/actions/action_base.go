package actions

import (
	"context"

	"github.com/sid200307/product-transactions-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
