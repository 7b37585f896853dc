package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"freshstock/internal/core/apperror"
	"freshstock/internal/domain/catalogs/buyer"
	"freshstock/internal/infrastructure/storage/postgres"
)

const buyerTable = "cat_buyers"

// BuyerRepo implements buyer.Repository.
type BuyerRepo struct {
	*BaseCatalogRepo[*buyer.Buyer]
}

// NewBuyerRepo creates a new buyer repository.
func NewBuyerRepo(txManager *postgres.TxManager) *BuyerRepo {
	return &BuyerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*buyer.Buyer](
			txManager,
			buyerTable,
			postgres.ExtractDBColumns[buyer.Buyer](),
			func() *buyer.Buyer { return &buyer.Buyer{} },
		),
	}
}

// FindByTaxID retrieves a buyer by fiscal identifier.
func (r *BuyerRepo) FindByTaxID(ctx context.Context, taxID string) (*buyer.Buyer, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"tax_id": taxID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	b, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("buyer", taxID)
		}
		return nil, err
	}
	return b, nil
}
