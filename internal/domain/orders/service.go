package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/core/tx"
	"freshstock/internal/core/types"
	"freshstock/internal/domain"
	"freshstock/internal/domain/audit"
	"freshstock/internal/domain/catalogs/buyer"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/pkg/logger"
)

// BuyerLookup resolves buyer references.
type BuyerLookup interface {
	GetByID(ctx context.Context, id id.ID) (*buyer.Buyer, error)
}

// ProductLookup resolves product references for pricing.
type ProductLookup interface {
	GetByID(ctx context.Context, id id.ID) (*product.Product, error)
}

// Service runs the purchase order workflow. Orders are created OPEN after
// stock validation; closing an order consumes the ordered stock
// first-expire-first-out and is all-or-nothing.
type Service struct {
	repo      Repository
	buyers    BuyerLookup
	products  ProductLookup
	validator *Validator
	ledger    Ledger
	txManager tx.Manager
	auditor   audit.Recorder
}

// NewService creates the purchase order service.
func NewService(repo Repository, buyers BuyerLookup, products ProductLookup, validator *Validator, ledger Ledger, txManager tx.Manager, auditor audit.Recorder) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{
		repo:      repo,
		buyers:    buyers,
		products:  products,
		validator: validator,
		ledger:    ledger,
		txManager: txManager,
		auditor:   auditor,
	}
}

// Create validates and persists a new purchase order in the OPEN state.
// Every line must be coverable by stock due at least three weeks out,
// otherwise the whole order is rejected with InvalidOrder. Returns the order
// and its total price, the sum of quantity times unit price over all lines.
func (s *Service) Create(ctx context.Context, buyerID id.ID, date time.Time, items []LineRequest) (*PurchaseOrder, types.Money, error) {
	if _, err := s.buyers.GetByID(ctx, buyerID); err != nil {
		return nil, types.Zero(), err
	}

	order := NewPurchaseOrder(buyerID, date)
	for _, item := range items {
		order.AddLine(item.ProductID, item.Quantity)
	}
	if err := order.Validate(ctx); err != nil {
		return nil, types.Zero(), err
	}

	// Price before validating stock so a missing product surfaces as
	// NotFound rather than InvalidOrder.
	total := types.Zero()
	for _, item := range items {
		prod, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, types.Zero(), err
		}
		total = total.Add(prod.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if err := s.validator.Validate(ctx, items); err != nil {
		return nil, types.Zero(), err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.repo.SaveLines(ctx, order.ID, order.Lines); err != nil {
			return fmt.Errorf("save order lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, types.Zero(), err
	}

	if err := s.auditor.Record(ctx, audit.Entry{
		EntityType: "purchase_order",
		EntityID:   order.ID,
		Action:     audit.ActionCreate,
		Changes:    order,
	}); err != nil {
		logger.Warn(ctx, "audit record failed", "error", err)
	}

	logger.Info(ctx, "purchase order created",
		"order_id", order.ID,
		"buyer_id", buyerID,
		"lines", len(order.Lines),
		"total", total,
	)
	return order, total, nil
}

// Close transitions an order from OPEN to CLOSED and consumes each line's
// quantity from batch stock, earliest due date first. The status change and
// all consumption commit together; any shortfall rolls everything back and
// leaves the order OPEN. Closing an already closed order is rejected.
func (s *Service) Close(ctx context.Context, orderID id.ID) (*PurchaseOrder, error) {
	var order *PurchaseOrder

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.getWithLines(ctx, orderID)
		if err != nil {
			return err
		}

		if order.IsClosed() {
			return apperror.NewBusinessRule(apperror.CodeOrderClosed, "purchase order is already closed").
				WithDetail("orderId", orderID.String())
		}

		// Stock may have drained since creation; re-check against the
		// persisted lines before touching anything.
		items := make([]LineRequest, 0, len(order.Lines))
		for _, line := range order.Lines {
			items = append(items, LineRequest{ProductID: line.ProductID, Quantity: line.Quantity})
		}
		if err := s.validator.Validate(ctx, items); err != nil {
			return asCloseError(err)
		}

		// Version stays untouched here: the repo bumps it under the
		// optimistic lock and writes the new value back on success.
		order.Status = StatusClosed
		order.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, order); err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		for _, line := range order.Lines {
			if err := s.ledger.Consume(ctx, line.ProductID, line.Quantity); err != nil {
				return fmt.Errorf("consume product %s: %w", line.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.auditor.Record(ctx, audit.Entry{
		EntityType: "purchase_order",
		EntityID:   order.ID,
		Action:     audit.ActionClose,
		Changes:    map[string]any{"status": order.Status},
	}); err != nil {
		logger.Warn(ctx, "audit record failed", "error", err)
	}

	logger.Info(ctx, "purchase order closed",
		"order_id", order.ID,
		"lines", len(order.Lines),
	)
	return order, nil
}

// asCloseError maps a failed close-time re-validation to InsufficientStock:
// at this point the order itself was accepted, the stock ran out.
func asCloseError(err error) error {
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeInvalidOrder {
		return err
	}
	mapped := apperror.NewBusinessRule(apperror.CodeInsufficientStock, "insufficient stock to close purchase order")
	for k, v := range appErr.Details {
		mapped = mapped.WithDetail(k, v)
	}
	return mapped
}

// GetByID retrieves an order together with its line items.
func (s *Service) GetByID(ctx context.Context, orderID id.ID) (*PurchaseOrder, error) {
	return s.getWithLines(ctx, orderID)
}

// List retrieves order headers with pagination. Lines are not loaded.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PurchaseOrder], error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) getWithLines(ctx context.Context, orderID id.ID) (*PurchaseOrder, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("purchase order", orderID.String())
		}
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	order.Lines = lines
	return order, nil
}
