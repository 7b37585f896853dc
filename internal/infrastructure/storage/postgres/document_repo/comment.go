package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/domain/comments"
	"freshstock/internal/infrastructure/storage/postgres"
)

const commentTable = "doc_product_comments"

// Compile-time check that CommentRepo implements comments.Repository.
var _ comments.Repository = (*CommentRepo)(nil)

// CommentRepo implements comments.Repository.
type CommentRepo struct {
	txManager  *postgres.TxManager
	builder    squirrel.StatementBuilderType
	selectCols []string
}

// NewCommentRepo creates a new comment repository.
func NewCommentRepo(txManager *postgres.TxManager) *CommentRepo {
	return &CommentRepo{
		txManager:  txManager,
		builder:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		selectCols: postgres.ExtractDBColumns[comments.Comment](),
	}
}

func (r *CommentRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.
		Select(r.selectCols...).
		From(commentTable)
}

// Create inserts a new comment.
func (r *CommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	data := postgres.StructToMap(comment)

	q := r.builder.
		Insert(commentTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment.
func (r *CommentRepo) GetByID(ctx context.Context, commentID id.ID) (*comments.Comment, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": commentID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var comment comments.Comment
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &comment, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("comment", commentID.String())
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &comment, nil
}

// FindByProduct lists a product's comments, newest first.
func (r *CommentRepo) FindByProduct(ctx context.Context, productID id.ID) ([]*comments.Comment, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*comments.Comment
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	return items, nil
}

// Update saves comment changes with optimistic locking. The version is
// managed here: it is matched against the caller's copy and bumped in the
// same statement, then written back on success.
func (r *CommentRepo) Update(ctx context.Context, comment *comments.Comment) error {
	q := r.builder.
		Update(commentTable).
		Set("text", comment.Text).
		Set("updated_at", comment.UpdatedAt).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": comment.ID}).
		Where(squirrel.Eq{"version": comment.Version}).
		Where(squirrel.Eq{"deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("comment", comment.ID.String())
	}

	comment.SetVersion(comment.Version + 1)
	return nil
}

// Delete marks a comment as deleted.
func (r *CommentRepo) Delete(ctx context.Context, commentID id.ID) error {
	q := r.builder.
		Update(commentTable).
		Set("deletion_mark", true).
		Set("updated_at", squirrel.Expr("now()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": commentID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("comment", commentID.String())
	}
	return nil
}
