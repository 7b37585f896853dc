// Package document_repo provides PostgreSQL implementations for document
// repositories (purchase orders, product comments).
package document_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/domain"
	"freshstock/internal/domain/orders"
	"freshstock/internal/infrastructure/storage/postgres"
)

const (
	purchaseOrderTable = "doc_purchase_orders"
	orderLineTable     = "doc_order_line_items"
)

// Compile-time check that PurchaseOrderRepo implements orders.Repository.
var _ orders.Repository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implements orders.Repository.
type PurchaseOrderRepo struct {
	txManager  *postgres.TxManager
	inserter   *postgres.BatchInserter
	builder    squirrel.StatementBuilderType
	selectCols []string
}

// NewPurchaseOrderRepo creates a new purchase order repository.
func NewPurchaseOrderRepo(txManager *postgres.TxManager) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{
		txManager:  txManager,
		inserter:   postgres.NewBatchInserter(txManager),
		builder:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		selectCols: postgres.ExtractDBColumns[orders.PurchaseOrder](),
	}
}

func (r *PurchaseOrderRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.
		Select(r.selectCols...).
		From(purchaseOrderTable)
}

// Create inserts a new order header.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *orders.PurchaseOrder) error {
	data := postgres.StructToMap(order)

	q := r.builder.
		Insert(purchaseOrderTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// SaveLines inserts the order's line items via COPY.
func (r *PurchaseOrderRepo) SaveLines(ctx context.Context, orderID id.ID, lines []orders.OrderLineItem) error {
	if len(lines) == 0 {
		return nil
	}

	columns := []string{"id", "order_id", "product_id", "quantity"}
	rows := make([][]any, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []any{line.ID, orderID, line.ProductID, line.Quantity})
	}

	if _, err := r.inserter.CopyFromSlice(ctx, orderLineTable, columns, rows); err != nil {
		return fmt.Errorf("copy order lines: %w", err)
	}
	return nil
}

// GetByID retrieves an order header (without lines).
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, orderID id.ID) (*orders.PurchaseOrder, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": orderID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var order orders.PurchaseOrder
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &order, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("purchase order", orderID.String())
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

// GetLines retrieves the persisted line items of an order.
func (r *PurchaseOrderRepo) GetLines(ctx context.Context, orderID id.ID) ([]orders.OrderLineItem, error) {
	q := r.builder.
		Select("id", "order_id", "product_id", "quantity").
		From(orderLineTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []orders.OrderLineItem
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("select order lines: %w", err)
	}
	return lines, nil
}

// Update saves header changes with optimistic locking.
func (r *PurchaseOrderRepo) Update(ctx context.Context, order *orders.PurchaseOrder) error {
	data := postgres.StructToMap(order)

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("order has no version field")
	}

	setMap := make(map[string]any, len(data))
	for col, val := range data {
		if col == "id" || col == "version" || col == "created_at" {
			continue
		}
		setMap[col] = val
	}

	q := r.builder.
		Update(purchaseOrderTable).
		SetMap(setMap).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": order.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("purchase order", order.ID.String())
	}

	order.SetVersion(version + 1)
	return nil
}

// List retrieves order headers with pagination, newest first.
func (r *PurchaseOrderRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*orders.PurchaseOrder], error) {
	result := domain.ListResult[*orders.PurchaseOrder]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}

	countQ := r.builder.
		Select("COUNT(*)").
		FromSelect(q, "sub")

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count orders: %w", err)
	}

	q = q.OrderBy(r.orderBy(filter.OrderBy))
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list orders: %w", err)
	}
	return result, nil
}

func (r *PurchaseOrderRepo) orderBy(orderBy string) string {
	allowed := map[string]struct{}{
		"date": {}, "status": {}, "created_at": {}, "updated_at": {},
	}

	direction := "DESC"
	field := strings.TrimSpace(orderBy)
	if strings.HasPrefix(field, "-") {
		field = strings.TrimPrefix(field, "-")
	} else if field != "" {
		direction = "ASC"
	}

	if _, ok := allowed[field]; !ok {
		return "created_at DESC"
	}
	return field + " " + direction
}
