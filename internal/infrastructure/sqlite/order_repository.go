// Package sqlite provides a SQLite-backed order archive so "view orders"
// survives a process restart. The pure-Go modernc.org/sqlite driver keeps the
// binary CGO-free.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/minimart/pos-simulator/internal/domain/order"
)

// Rows are written once per placed order and never updated or deleted.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id              INTEGER PRIMARY KEY,
    reference       TEXT    NOT NULL,
    payment_method  TEXT    NOT NULL,
    total           TEXT    NOT NULL,
    placed_at       TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS order_lines (
    order_id     INTEGER NOT NULL REFERENCES orders(id),
    position     INTEGER NOT NULL,
    product_id   TEXT    NOT NULL,
    product_name TEXT    NOT NULL,
    unit_price   TEXT    NOT NULL,
    quantity     INTEGER NOT NULL,
    PRIMARY KEY (order_id, position)
);
`

// OrderRepository is the SQLite implementation of order.Repository.
type OrderRepository struct {
	db *sql.DB
}

// Open opens (or creates) the archive database at the given path and applies
// the schema. WAL keeps a reader (the orders screen) from blocking the writer.
func Open(path string) (*OrderRepository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &OrderRepository{db: db}, nil
}

func (r *OrderRepository) Close() error {
	return r.db.Close()
}

// Save archives a placed order and its lines in one transaction.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	if o == nil || o.ID <= 0 {
		return fmt.Errorf("sqlite: order id is required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertOrder = `
		INSERT INTO orders (id, reference, payment_method, total, placed_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insertOrder,
		o.ID,
		o.Reference,
		o.PaymentMethod,
		o.Total.String(),
		o.PlacedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("sqlite: insert order %d: %w", o.ID, err)
	}

	const insertLine = `
		INSERT INTO order_lines (order_id, position, product_id, product_name, unit_price, quantity)
		VALUES (?, ?, ?, ?, ?, ?)`
	for i, l := range o.Lines {
		if _, err := tx.ExecContext(ctx, insertLine,
			o.ID, i, l.ProductID, l.ProductName, l.UnitPrice.String(), l.Quantity,
		); err != nil {
			return fmt.Errorf("sqlite: insert line %d of order %d: %w", i, o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit order %d: %w", o.ID, err)
	}
	return nil
}

// List returns all archived orders, oldest first, with their lines attached.
func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	const q = `
		SELECT id, reference, payment_method, total, placed_at
		FROM   orders
		ORDER  BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order
	byID := make(map[int64]*order.Order)
	for rows.Next() {
		var (
			o        order.Order
			total    string
			placedAt string
		)
		if err := rows.Scan(&o.ID, &o.Reference, &o.PaymentMethod, &total, &placedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan order: %w", err)
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("sqlite: order %d total %q: %w", o.ID, total, err)
		}
		if o.PlacedAt, err = time.Parse(time.RFC3339Nano, placedAt); err != nil {
			return nil, fmt.Errorf("sqlite: order %d placed_at %q: %w", o.ID, placedAt, err)
		}
		cp := o
		orders = append(orders, &cp)
		byID[cp.ID] = &cp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list orders: %w", err)
	}

	if err := r.attachLines(ctx, byID); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) attachLines(ctx context.Context, byID map[int64]*order.Order) error {
	if len(byID) == 0 {
		return nil
	}

	const q = `
		SELECT order_id, product_id, product_name, unit_price, quantity
		FROM   order_lines
		ORDER  BY order_id, position`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("sqlite: list order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   int64
			l         order.Line
			unitPrice string
		)
		if err := rows.Scan(&orderID, &l.ProductID, &l.ProductName, &unitPrice, &l.Quantity); err != nil {
			return fmt.Errorf("sqlite: scan order line: %w", err)
		}
		if l.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return fmt.Errorf("sqlite: line price %q: %w", unitPrice, err)
		}
		if o, ok := byID[orderID]; ok {
			o.Lines = append(o.Lines, l)
		}
	}
	return rows.Err()
}
