// Package register_repo provides PostgreSQL implementations for the batch
// stock ledger.
package register_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/core/types"
	"freshstock/internal/domain/batches"
	"freshstock/internal/infrastructure/storage/postgres"
)

const batchStockTable = "reg_batch_stocks"

// Compile-time check that BatchStockRepo implements batches.Repository.
var _ batches.Repository = (*BatchStockRepo)(nil)

// BatchStockRepo implements batches.Repository.
type BatchStockRepo struct {
	txManager  *postgres.TxManager
	builder    squirrel.StatementBuilderType
	selectCols []string
}

// NewBatchStockRepo creates a new batch stock repository.
func NewBatchStockRepo(txManager *postgres.TxManager) *BatchStockRepo {
	return &BatchStockRepo{
		txManager:  txManager,
		builder:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		selectCols: postgres.ExtractDBColumns[batches.BatchStock](),
	}
}

func (r *BatchStockRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.
		Select(r.selectCols...).
		From(batchStockTable)
}

// Create inserts a new batch row.
func (r *BatchStockRepo) Create(ctx context.Context, batch *batches.BatchStock) error {
	data := postgres.StructToMap(batch)

	q := r.builder.
		Insert(batchStockTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID retrieves a batch by ID.
func (r *BatchStockRepo) GetByID(ctx context.Context, batchID id.ID) (*batches.BatchStock, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": batchID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var batch batches.BatchStock
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &batch, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("batch", batchID.String())
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &batch, nil
}

// FindByProduct retrieves all non-empty batches of a product.
func (r *BatchStockRepo) FindByProduct(ctx context.Context, productID id.ID) ([]*batches.BatchStock, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Gt{"quantity": 0}).
		OrderBy("created_at ASC")

	return r.findMany(ctx, q)
}

// FindBySection retrieves all non-empty batches held in a section.
func (r *BatchStockRepo) FindBySection(ctx context.Context, sectionID id.ID) ([]*batches.BatchStock, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"section_id": sectionID}).
		Where(squirrel.Gt{"quantity": 0}).
		OrderBy("due_date ASC")

	return r.findMany(ctx, q)
}

// FindAvailable retrieves non-empty batches of a product due on/after the
// cutoff date.
func (r *BatchStockRepo) FindAvailable(ctx context.Context, productID id.ID, notExpiringBefore time.Time) ([]*batches.BatchStock, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Gt{"quantity": 0}).
		Where(squirrel.GtOrEq{"due_date": notExpiringBefore}).
		OrderBy("due_date ASC")

	return r.findMany(ctx, q)
}

// FindAvailableForUpdate is FindAvailable with row locks, earliest due date
// first. The lock order matches the consumption order, which keeps concurrent
// consumers from deadlocking against each other.
func (r *BatchStockRepo) FindAvailableForUpdate(ctx context.Context, productID id.ID, notExpiringBefore time.Time) ([]*batches.BatchStock, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Gt{"quantity": 0}).
		Where(squirrel.GtOrEq{"due_date": notExpiringBefore}).
		OrderBy("due_date ASC").
		Suffix("FOR UPDATE")

	return r.findMany(ctx, q)
}

// SetQuantity updates a batch's remaining quantity.
func (r *BatchStockRepo) SetQuantity(ctx context.Context, batchID id.ID, quantity int) error {
	q := r.builder.
		Update(batchStockTable).
		Set("quantity", quantity).
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": batchID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("batch", batchID.String())
	}
	return nil
}

// UsedVolume sums quantity times unit volume over a section's batches.
func (r *BatchStockRepo) UsedVolume(ctx context.Context, sectionID id.ID) (types.Volume, error) {
	q := r.builder.
		Select("COALESCE(SUM(b.quantity * p.unit_volume), 0)").
		From(batchStockTable + " b").
		Join("cat_products p ON p.id = b.product_id").
		Where(squirrel.Eq{"b.section_id": sectionID}).
		Where(squirrel.Gt{"b.quantity": 0})

	sql, args, err := q.ToSql()
	if err != nil {
		return types.Zero(), fmt.Errorf("build query: %w", err)
	}

	var used types.Volume
	if err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&used); err != nil {
		return types.Zero(), fmt.Errorf("used volume: %w", err)
	}
	return used, nil
}

func (r *BatchStockRepo) findMany(ctx context.Context, q squirrel.SelectBuilder) ([]*batches.BatchStock, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*batches.BatchStock
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select batches: %w", err)
	}
	return items, nil
}
