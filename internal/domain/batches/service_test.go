package batches

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/clock"
	"freshstock/internal/core/id"
	"freshstock/internal/core/types"
	"freshstock/internal/domain"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/internal/domain/catalogs/section"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	batches []*BatchStock
	used    types.Volume
	created []*BatchStock
}

func (r *fakeRepo) Create(ctx context.Context, batch *BatchStock) error {
	r.batches = append(r.batches, batch)
	r.created = append(r.created, batch)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, batchID id.ID) (*BatchStock, error) {
	for _, b := range r.batches {
		if b.ID == batchID {
			return b, nil
		}
	}
	return nil, apperror.NewNotFound("batch", batchID.String())
}

func (r *fakeRepo) FindByProduct(ctx context.Context, productID id.ID) ([]*BatchStock, error) {
	var out []*BatchStock
	for _, b := range r.batches {
		if b.ProductID == productID && b.Quantity > 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindBySection(ctx context.Context, sectionID id.ID) ([]*BatchStock, error) {
	var out []*BatchStock
	for _, b := range r.batches {
		if b.SectionID == sectionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindAvailable(ctx context.Context, productID id.ID, notExpiringBefore time.Time) ([]*BatchStock, error) {
	var out []*BatchStock
	for _, b := range r.batches {
		if b.ProductID == productID && b.Quantity > 0 && b.AvailableOn(notExpiringBefore) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindAvailableForUpdate(ctx context.Context, productID id.ID, notExpiringBefore time.Time) ([]*BatchStock, error) {
	out, err := r.FindAvailable(ctx, productID, notExpiringBefore)
	if err != nil {
		return nil, err
	}
	SortBatches(out, SortByDueDate)
	return out, nil
}

func (r *fakeRepo) SetQuantity(ctx context.Context, batchID id.ID, quantity int) error {
	for _, b := range r.batches {
		if b.ID == batchID {
			b.Quantity = quantity
			return nil
		}
	}
	return apperror.NewNotFound("batch", batchID.String())
}

func (r *fakeRepo) UsedVolume(ctx context.Context, sectionID id.ID) (types.Volume, error) {
	return r.used, nil
}

type fakeProducts struct {
	items map[id.ID]*product.Product
}

func (f fakeProducts) GetByID(ctx context.Context, pid id.ID) (*product.Product, error) {
	if p, ok := f.items[pid]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("product", pid.String())
}

type fakeSections struct {
	items map[id.ID]*section.Section
}

func (f fakeSections) GetByID(ctx context.Context, sid id.ID) (*section.Section, error) {
	if s, ok := f.items[sid]; ok {
		return s, nil
	}
	return nil, apperror.NewNotFound("section", sid.String())
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo    *fakeRepo
	service *Service
	product *product.Product
	section *section.Section
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	prod := product.NewProduct("PRD-1", "Whole Milk 1L", domain.CategoryRefrigerated,
		types.MustVolume("0.001"), types.MustMoney("1.20"), id.New())
	sec := section.NewSection("SEC-1", "Chilled Hall", domain.CategoryRefrigerated,
		types.MustVolume("100"), id.New())

	repo := &fakeRepo{}
	svc := NewService(repo,
		fakeProducts{items: map[id.ID]*product.Product{prod.ID: prod}},
		fakeSections{items: map[id.ID]*section.Section{sec.ID: sec}},
		fakeTxManager{}, clock.At(testNow), nil)

	return &fixture{repo: repo, service: svc, product: prod, section: sec}
}

// addLot registers stock that was admitted daysUntilDue days before expiry.
func (f *fixture) addLot(number string, quantity int, daysUntilDue int) *BatchStock {
	b := NewBatchStock(number, f.product.ID, f.section.ID, quantity,
		testNow.Add(-24*time.Hour), testNow.Add(time.Duration(daysUntilDue)*24*time.Hour))
	f.repo.batches = append(f.repo.batches, b)
	return b
}

func TestFreshnessCutoff(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, testNow.Add(21*24*time.Hour), f.service.FreshnessCutoff())
}

func TestAvailableQuantity_ExcludesExpiringSoon(t *testing.T) {
	f := newFixture(t)
	f.addLot("LOT-FRESH", 50, 30)
	f.addLot("LOT-SOON", 40, 7) // inside the three-week window
	f.addLot("LOT-EMPTY", 0, 60)

	got, err := f.service.AvailableQuantity(context.Background(), f.product.ID, f.service.FreshnessCutoff())
	require.NoError(t, err)
	assert.Equal(t, 50, got)
}

func TestAvailableQuantity_MonotonicInCutoff(t *testing.T) {
	f := newFixture(t)
	f.addLot("LOT-A", 30, 10)
	f.addLot("LOT-B", 20, 25)
	f.addLot("LOT-C", 10, 60)

	// Over a fixed set of batches, pushing the cutoff out can only shrink
	// the available quantity, never grow it.
	prev := 0
	for i, days := range []int{0, 10, 25, 40, 60, 90} {
		got, err := f.service.AvailableQuantity(context.Background(), f.product.ID,
			testNow.Add(time.Duration(days)*24*time.Hour))
		require.NoError(t, err)
		if i > 0 {
			assert.LessOrEqual(t, got, prev, "cutoff at %d days", days)
		}
		prev = got
	}
	assert.Equal(t, 0, prev)
}

func TestConsume_DrainsEarliestDueFirst(t *testing.T) {
	f := newFixture(t)
	early := f.addLot("LOT-EARLY", 5, 25)
	late := f.addLot("LOT-LATE", 5, 40)

	err := f.service.Consume(context.Background(), f.product.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, 0, early.Quantity)
	assert.Equal(t, 3, late.Quantity)
}

func TestConsume_ConservesTotalQuantity(t *testing.T) {
	f := newFixture(t)
	f.addLot("LOT-1", 10, 25)
	f.addLot("LOT-2", 10, 30)
	f.addLot("LOT-3", 10, 40)

	require.NoError(t, f.service.Consume(context.Background(), f.product.ID, 12))

	total := 0
	for _, b := range f.repo.batches {
		total += b.Quantity
	}
	assert.Equal(t, 18, total)
}

func TestConsume_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	lot := f.addLot("LOT-1", 5, 30)
	f.addLot("LOT-SOON", 100, 7) // not countable, expires inside the window

	err := f.service.Consume(context.Background(), f.product.ID, 8)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeInsufficientStock))

	// Nothing consumed from the countable lot.
	assert.Equal(t, 5, lot.Quantity)
}

func TestConsume_RejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)

	err := f.service.Consume(context.Background(), f.product.ID, 0)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestAdmit_Persists(t *testing.T) {
	f := newFixture(t)
	b := NewBatchStock("LOT-NEW", f.product.ID, f.section.ID, 100,
		testNow.Add(-48*time.Hour), testNow.Add(60*24*time.Hour))
	b.CurrentTemperature = decimal.NewFromInt(4)

	err := f.service.Admit(context.Background(), b)
	require.NoError(t, err)
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, "LOT-NEW", f.repo.created[0].BatchNumber)
}

func TestAdmit_RejectsCategoryMismatch(t *testing.T) {
	f := newFixture(t)
	frozen := product.NewProduct("PRD-FRZ", "Frozen Peas", domain.CategoryFrozen,
		types.MustVolume("0.0005"), types.MustMoney("2.35"), id.New())
	f.service.products.(fakeProducts).items[frozen.ID] = frozen

	b := NewBatchStock("LOT-FRZ", frozen.ID, f.section.ID, 10,
		testNow.Add(-48*time.Hour), testNow.Add(120*24*time.Hour))

	err := f.service.Admit(context.Background(), b)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeCategoryMismatch))
	assert.Empty(t, f.repo.created)
}

func TestAdmit_RejectsCapacityOverflow(t *testing.T) {
	f := newFixture(t)
	f.repo.used = types.MustVolume("99.95") // 0.05 free, lot needs 0.1

	b := NewBatchStock("LOT-BIG", f.product.ID, f.section.ID, 100,
		testNow.Add(-48*time.Hour), testNow.Add(60*24*time.Hour))

	err := f.service.Admit(context.Background(), b)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeCapacityExceeded))
	assert.Empty(t, f.repo.created)
}

func TestAdmit_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	b := NewBatchStock("LOT-X", id.New(), f.section.ID, 10,
		testNow.Add(-48*time.Hour), testNow.Add(60*24*time.Hour))

	err := f.service.Admit(context.Background(), b)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFits(t *testing.T) {
	f := newFixture(t)
	f.repo.used = types.MustVolume("99.9")

	// 100 units * 0.001 = 0.1 exactly fills the remaining space.
	ok, err := f.service.Fits(context.Background(), f.product, 100, f.section.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.Fits(context.Background(), f.product, 101, f.section.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
