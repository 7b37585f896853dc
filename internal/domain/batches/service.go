package batches

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/clock"
	"freshstock/internal/core/id"
	"freshstock/internal/core/tx"
	"freshstock/internal/core/types"
	"freshstock/internal/domain/audit"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/internal/domain/catalogs/section"
	"freshstock/pkg/logger"
)

// DefaultLookAhead is the minimum remaining shelf life required for a batch
// to count as available for a new order: three weeks from "now".
const DefaultLookAhead = 21 * 24 * time.Hour

// ProductLookup resolves product references for admission and volume math.
type ProductLookup interface {
	GetByID(ctx context.Context, id id.ID) (*product.Product, error)
}

// SectionLookup resolves section references for admission checks.
type SectionLookup interface {
	GetByID(ctx context.Context, id id.ID) (*section.Section, error)
}

// Service is the batch stock ledger. It admits lots into sections (category
// and capacity checked) and consumes stock first-expire-first-out.
type Service struct {
	repo      Repository
	products  ProductLookup
	sections  SectionLookup
	txManager tx.Manager
	clock     clock.Clock
	lookAhead time.Duration
	auditor   audit.Recorder
}

// NewService creates a new batch ledger service.
func NewService(repo Repository, products ProductLookup, sections SectionLookup, txManager tx.Manager, clk clock.Clock, auditor audit.Recorder) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{
		repo:      repo,
		products:  products,
		sections:  sections,
		txManager: txManager,
		clock:     clk,
		lookAhead: DefaultLookAhead,
		auditor:   auditor,
	}
}

// FreshnessCutoff returns the earliest acceptable due date for stock to
// count as available, evaluated against the wall clock at call time.
func (s *Service) FreshnessCutoff() time.Time {
	return s.clock.Now().Add(s.lookAhead)
}

// GetByID retrieves a batch by ID.
func (s *Service) GetByID(ctx context.Context, batchID id.ID) (*BatchStock, error) {
	batch, err := s.repo.GetByID(ctx, batchID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("batch", batchID.String())
		}
		return nil, err
	}
	return batch, nil
}

// FindByProduct lists a product's batches, optionally sorted by the given key.
func (s *Service) FindByProduct(ctx context.Context, productID id.ID, key SortKey, sorted bool) ([]*BatchStock, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	list, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find batches by product: %w", err)
	}

	if sorted {
		SortBatches(list, key)
	}
	return list, nil
}

// FindBySection lists the batches currently held in a section.
func (s *Service) FindBySection(ctx context.Context, sectionID id.ID) ([]*BatchStock, error) {
	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.repo.FindBySection(ctx, sectionID)
}

// FindAvailable returns batches of the product whose due date is on/after
// notExpiringBefore. Order is unspecified; callers aggregate.
func (s *Service) FindAvailable(ctx context.Context, productID id.ID, notExpiringBefore time.Time) ([]*BatchStock, error) {
	return s.repo.FindAvailable(ctx, productID, notExpiringBefore)
}

// AvailableQuantity sums remaining quantity over FindAvailable.
func (s *Service) AvailableQuantity(ctx context.Context, productID id.ID, notExpiringBefore time.Time) (int, error) {
	list, err := s.repo.FindAvailable(ctx, productID, notExpiringBefore)
	if err != nil {
		return 0, fmt.Errorf("find available batches: %w", err)
	}

	total := 0
	for _, b := range list {
		total += b.Quantity
	}
	return total, nil
}

// UsedVolume returns the occupied volume of a section.
func (s *Service) UsedVolume(ctx context.Context, sectionID id.ID) (types.Volume, error) {
	return s.repo.UsedVolume(ctx, sectionID)
}

// Admit validates a new lot against its target section and persists it.
// Category mismatch and capacity overflow are hard rejections; nothing is
// persisted on failure. These checks run at admission time only, not again
// when orders close.
func (s *Service) Admit(ctx context.Context, batch *BatchStock) error {
	if err := batch.Validate(ctx); err != nil {
		return err
	}

	prod, err := s.products.GetByID(ctx, batch.ProductID)
	if err != nil {
		return err
	}

	sec, err := s.sections.GetByID(ctx, batch.SectionID)
	if err != nil {
		return err
	}

	if !sec.Category.Permits(prod.Category) {
		return apperror.NewCategoryMismatch(string(prod.Category), string(sec.Category))
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		used, err := s.repo.UsedVolume(ctx, batch.SectionID)
		if err != nil {
			return fmt.Errorf("used volume: %w", err)
		}

		required := prod.UnitVolume.Mul(decimal.NewFromInt(int64(batch.Quantity)))
		free := sec.TotalSize.Sub(used)
		if required.GreaterThan(free) {
			return apperror.NewCapacityExceeded(sec.ID.String(), required.String(), free.String())
		}

		if err := s.repo.Create(ctx, batch); err != nil {
			return fmt.Errorf("create batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, audit.Entry{
		EntityType: "batch_stock",
		EntityID:   batch.ID,
		Action:     audit.ActionAdmit,
		Changes:    batch,
	}); err != nil {
		logger.Warn(ctx, "audit record failed", "error", err)
	}

	logger.Info(ctx, "batch admitted",
		"batch_id", batch.ID,
		"product_id", batch.ProductID,
		"section_id", batch.SectionID,
		"quantity", batch.Quantity,
	)
	return nil
}

// Fits reports whether incomingQuantity units of the product fit the
// section's remaining volume. Shares the admission arithmetic; does not
// check category.
func (s *Service) Fits(ctx context.Context, prod *product.Product, incomingQuantity int, sectionID id.ID) (bool, error) {
	sec, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return false, err
	}

	used, err := s.repo.UsedVolume(ctx, sectionID)
	if err != nil {
		return false, fmt.Errorf("used volume: %w", err)
	}

	required := prod.UnitVolume.Mul(decimal.NewFromInt(int64(incomingQuantity)))
	return !required.GreaterThan(sec.TotalSize.Sub(used)), nil
}

// Consume drains quantity units of the product from its batches, earliest due
// date first, considering only batches still inside the freshness window at
// call time. Either exactly quantity units are consumed or nothing is: a
// shortfall rolls the transaction back with InsufficientStock. Row locks on
// the candidate batches serialize concurrent consumers, so two closures can
// never double-spend the same stock.
func (s *Service) Consume(ctx context.Context, productID id.ID, quantity int) error {
	if quantity <= 0 {
		return apperror.NewValidation("consume quantity must be positive").
			WithDetail("quantity", quantity)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		// Cutoff is re-evaluated here, not carried over from validation:
		// caching "now" across phases would bias FEFO selection.
		cutoff := s.FreshnessCutoff()

		candidates, err := s.repo.FindAvailableForUpdate(ctx, productID, cutoff)
		if err != nil {
			return fmt.Errorf("lock batches: %w", err)
		}

		available := 0
		for _, b := range candidates {
			available += b.Quantity
		}
		if available < quantity {
			return apperror.NewInsufficientStock(productID.String(), quantity, available)
		}

		remaining := quantity
		for _, b := range candidates {
			if remaining == 0 {
				break
			}
			take := b.Quantity
			if take > remaining {
				take = remaining
			}
			if err := s.repo.SetQuantity(ctx, b.ID, b.Quantity-take); err != nil {
				return fmt.Errorf("decrement batch %s: %w", b.ID, err)
			}
			remaining -= take
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, audit.Entry{
		EntityType: "batch_stock",
		EntityID:   productID,
		Action:     audit.ActionConsume,
		Changes:    map[string]any{"product_id": productID, "quantity": quantity},
	}); err != nil {
		logger.Warn(ctx, "audit record failed", "error", err)
	}

	logger.Info(ctx, "stock consumed",
		"product_id", productID,
		"quantity", quantity,
	)
	return nil
}
