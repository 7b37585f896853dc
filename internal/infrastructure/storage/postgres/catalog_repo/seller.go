package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"freshstock/internal/core/apperror"
	"freshstock/internal/domain/catalogs/seller"
	"freshstock/internal/infrastructure/storage/postgres"
)

const sellerTable = "cat_sellers"

// SellerRepo implements seller.Repository.
type SellerRepo struct {
	*BaseCatalogRepo[*seller.Seller]
}

// NewSellerRepo creates a new seller repository.
func NewSellerRepo(txManager *postgres.TxManager) *SellerRepo {
	return &SellerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*seller.Seller](
			txManager,
			sellerTable,
			postgres.ExtractDBColumns[seller.Seller](),
			func() *seller.Seller { return &seller.Seller{} },
		),
	}
}

// FindByTaxID retrieves a seller by fiscal identifier.
func (r *SellerRepo) FindByTaxID(ctx context.Context, taxID string) (*seller.Seller, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"tax_id": taxID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	s, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("seller", taxID)
		}
		return nil, err
	}
	return s, nil
}
