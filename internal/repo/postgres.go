package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "customer_email", "subtotal_cents",
	"status", "tracking_code", "created_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []ItemRow
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	history, err := r.historyRows(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items, history), nil
}

// GetOrderForUpdate reads the base order row under a row lock. Must be called
// inside a trm transaction; it serializes concurrent transitions per order.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}
	return OrderToEntity(order, nil, nil), nil
}

// UpdateOrderStatus applies a conditional status change. The WHERE clause on
// the current status makes the update a compare-and-swap: zero rows affected
// means another transition won the race.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.Status, trackingCode string) (bool, error) {
	builder := r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"order_id": orderID, "status": string(from)})

	if trackingCode != "" {
		builder = builder.Set("tracking_code", trackingCode)
	}

	query, args := builder.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) InsertHistory(ctx context.Context, orderID string, entry entities.HistoryEntry) error {
	query, args := r.qb.Insert("order_status_history").
		Columns("order_id", "status", "changed_at", "actor_id", "note").
		Values(orderID, string(entry.Status), entry.ChangedAt, nullString(entry.ActorID), nullString(entry.Note)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetHistory(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	rows, err := r.historyRows(ctx, orderID)
	if err != nil {
		return nil, err
	}
	history := make([]entities.HistoryEntry, 0, len(rows))
	for _, h := range rows {
		history = append(history, HistoryToEntity(h))
	}
	return history, nil
}

func (r *postgresRepo) historyRows(ctx context.Context, orderID string) ([]HistoryRow, error) {
	query, args := r.qb.Select("order_id", "status", "changed_at", "actor_id", "note").
		From("order_status_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("changed_at ASC", "id ASC").
		MustSql()

	var rows []HistoryRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get status history: %w", err)
	}
	return rows, nil
}

// SaveOrder inserts a new order row. ON CONFLICT DO NOTHING makes checkout
// intake idempotent; the returned flag tells the caller whether this delivery
// actually created the order.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (bool, error) {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.CustomerEmail, o.SubtotalCents, string(o.Status), nullString(o.TrackingCode), o.CreatedAt).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to save order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity").
		Suffix("ON CONFLICT (order_id, product_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListByStatus(ctx context.Context, status entities.Status, filter entities.ListFilter) ([]entities.Order, error) {
	builder := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(status)}).
		OrderBy("created_at DESC")

	if !filter.DateFrom.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": filter.DateFrom})
	}
	if !filter.DateTo.IsZero() {
		builder = builder.Where(sq.LtOrEq{"created_at": filter.DateTo})
	}
	if filter.CustomerEmail != "" {
		builder = builder.Where(sq.Eq{"customer_email": filter.CustomerEmail})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args := builder.MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderToEntity(row, nil, nil))
	}
	return orders, nil
}

// CountByStatus is a single GROUP BY statement, so the counts reflect one
// consistent snapshot.
func (r *postgresRepo) CountByStatus(ctx context.Context) (map[entities.Status]int64, error) {
	query, args := r.qb.Select("status", "COUNT(*) AS total").
		From("orders").
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status string `db:"status"`
		Total  int64  `db:"total"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	counts := make(map[entities.Status]int64, len(entities.AllStatuses()))
	for _, s := range entities.AllStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[entities.Status(row.Status)] = row.Total
	}
	return counts, nil
}

// ProductDimensions serves the catalog collaborator contract from the
// products table. Missing products surface entities.ErrCatalogLookup, which
// the aggregator converts into default attributes.
func (r *postgresRepo) ProductDimensions(ctx context.Context, productID string) (entities.ProductDims, error) {
	query, args := r.qb.Select("product_id", "weight_kg", "length_cm", "height_cm", "width_cm").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var product ProductRow
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ProductDims{}, entities.ErrCatalogLookup
	}
	if err != nil {
		return entities.ProductDims{}, fmt.Errorf("%w: %w", entities.ErrCatalogLookup, err)
	}
	return ProductToDims(product), nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
