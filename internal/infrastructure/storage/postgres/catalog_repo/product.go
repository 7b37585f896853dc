package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"freshstock/internal/core/id"
	"freshstock/internal/domain"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// FindBySeller retrieves all products owned by a seller.
func (r *ProductRepo) FindBySeller(ctx context.Context, sellerID id.ID) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"seller_id": sellerID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC")

	return r.FindMany(ctx, q)
}

// FindByCategory retrieves products of one storage class.
func (r *ProductRepo) FindByCategory(ctx context.Context, category domain.StorageCategory) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"category": category}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC")

	return r.FindMany(ctx, q)
}
