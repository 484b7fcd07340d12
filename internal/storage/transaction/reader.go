package transaction

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DB is the subset of database/sql methods the reader and writer use.
// Both *sql.DB and *sql.Tx satisfy it.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const transactionColumns = "id, title, description, COALESCE(price, 0), date_of_sale, category, image, sold, created_at"

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	db DB
}

func NewReader(db DB) *Reader {
	return &Reader{db: db}
}

// searchPredicate builds the WHERE clause for the list/count queries: an OR
// of a title substring match, a description substring match, and a price
// branch. The price branch is an exact match when the search parses as a
// number, unconstrained (any non-NULL price) when the search is empty, and
// never matches otherwise.
func searchPredicate(search string) (string, []any) {
	args := []any{"%" + search + "%"}

	priceClause := "price IS NOT NULL"
	if search != "" {
		if price, err := strconv.ParseFloat(search, 64); err == nil {
			args = append(args, decimal.NewFromFloat(price))
			priceClause = "price = $2"
		} else {
			priceClause = "FALSE"
		}
	}

	return "(title ILIKE $1 OR description ILIKE $1 OR " + priceClause + ")", args
}

// List returns the page of transactions matching the filter. Nil filter
// returns all rows.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}

	predicate, args := searchPredicate(filter.Search)
	query := "SELECT " + transactionColumns + " FROM transactions WHERE " + predicate +
		" ORDER BY date_of_sale ASC, id ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Count returns the total number of rows matching the filter's search
// predicate, ignoring paging.
func (r *Reader) Count(ctx context.Context, filter *TransactionFilter) (int64, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}

	predicate, args := searchPredicate(filter.Search)
	query := "SELECT COUNT(*) FROM transactions WHERE " + predicate

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListSoldBetween returns rows with a sale date in [start, end] inclusive.
func (r *Reader) ListSoldBetween(ctx context.Context, start, end time.Time) ([]*Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions" +
		" WHERE date_of_sale >= $1 AND date_of_sale <= $2 ORDER BY date_of_sale ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// CountSoldBefore returns the number of rows with a sale date strictly
// before the given time.
func (r *Reader) CountSoldBefore(ctx context.Context, before time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE date_of_sale < $1", before).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func scanTransactions(rows *sql.Rows) ([]*Transaction, error) {
	var result []*Transaction
	for rows.Next() {
		var row Transaction
		var dateOfSale sql.NullTime
		err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Description,
			&row.Price,
			&dateOfSale,
			&row.Category,
			&row.Image,
			&row.Sold,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if dateOfSale.Valid {
			row.DateOfSale = dateOfSale.Time
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}
