package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/inventory"
	"github.com/fekuna/omnipos-commerce/internal/inventory/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lockTTL      = 5 * time.Second
	lockAttempts = 3
	lockBackoff  = 100 * time.Millisecond
	dateLayout   = "2006-01-02"
)

// Locker is the slice of pkg/cache used to serialise stock changes per product.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) (bool, error)
}

type inventoryUseCase struct {
	repo     inventory.Repository
	products inventory.ProductChecker
	locker   Locker
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewInventoryUseCase(repo inventory.Repository, products inventory.ProductChecker, locker Locker, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		products: products,
		locker:   locker,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *inventoryUseCase) GetProductInventory(ctx context.Context, productID string) (*model.Inventory, error) {
	inv, err := uc.repo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if inv != nil {
		return inv, nil
	}

	p, err := uc.mustFindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &model.Inventory{ProductID: productID, ProductName: p.Name, ProductSKU: p.SKU}, nil
}

func (uc *inventoryUseCase) mustFindProduct(ctx context.Context, productID string) (*model.Product, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product not found")
	}
	return p, nil
}

func (uc *inventoryUseCase) UpdateInventory(ctx context.Context, input *dto.UpdateInventoryInput) (*model.Inventory, error) {
	release, err := uc.lock(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	defer release()

	inv, err := uc.loadOrNew(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.ReorderPoint != nil {
		inv.ReorderPoint = *input.ReorderPoint
	}
	if input.ShelfLifeDays != nil {
		days := *input.ShelfLifeDays
		inv.ShelfLifeDays = &days
	}
	switch {
	case input.ExpirationDate != nil && *input.ExpirationDate == "":
		inv.ExpirationDate = nil
	case input.ExpirationDate != nil:
		exp, err := time.Parse(dateLayout, *input.ExpirationDate)
		if err != nil {
			return nil, apperror.Validation("Validation failed: expiration_date must be YYYY-MM-DD")
		}
		inv.ExpirationDate = &exp
	case input.ShelfLifeDays != nil && *input.ShelfLifeDays > 0:
		// Without an explicit date the shelf life counts from today.
		exp := truncateDay(uc.now()).AddDate(0, 0, *input.ShelfLifeDays)
		inv.ExpirationDate = &exp
	}
	inv.UpdatedAt = uc.now()

	if err := uc.repo.CreateOrUpdate(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (uc *inventoryUseCase) loadOrNew(ctx context.Context, productID string) (*model.Inventory, error) {
	inv, err := uc.repo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if inv != nil {
		return inv, nil
	}
	p, err := uc.mustFindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &model.Inventory{
		ID:          uuid.New().String(),
		ProductID:   productID,
		ProductName: p.Name,
		ProductSKU:  p.SKU,
		UpdatedAt:   uc.now(),
	}, nil
}

// lock takes the per-product stock lock, retrying a few times before giving up.
func (uc *inventoryUseCase) lock(ctx context.Context, productID string) (func(), error) {
	if uc.locker == nil {
		return func() {}, nil
	}

	lockKey := fmt.Sprintf("lock:inventory:%s", productID)
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, lockKey, lockValue, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockBackoff):
		}
	}
	if !acquired {
		return nil, apperror.New(http.StatusConflict, "Inventory is being updated, please try again", apperror.KindConflict)
	}

	return func() {
		if _, err := uc.locker.ReleaseLock(context.Background(), lockKey, lockValue); err != nil {
			uc.logger.Warn("failed to release inventory lock", zap.String("key", lockKey), zap.Error(err))
		}
	}, nil
}

func (uc *inventoryUseCase) AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Inventory, error) {
	release, err := uc.lock(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	defer release()

	inv, err := uc.loadOrNew(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	quantityBefore := inv.Quantity
	inv.Quantity += input.QuantityChange
	inv.UpdatedAt = now

	if inv.Quantity < 0 {
		return nil, apperror.BadRequest(fmt.Sprintf("Insufficient inventory: %d in stock", quantityBefore))
	}

	movementType := input.MovementType
	if movementType == "" {
		movementType = model.MovementAdjustment
	}

	movement := &model.InventoryMovement{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		MovementType:   movementType,
		QuantityChange: input.QuantityChange,
		QuantityBefore: quantityBefore,
		QuantityAfter:  inv.Quantity,
		ReferenceType:  optional(input.ReferenceType),
		ReferenceID:    optional(input.ReferenceID),
		Notes:          input.Reason,
		CreatedBy:      optional(input.UserID),
		CreatedAt:      now,
	}

	if err := uc.repo.AdjustStockWithMovement(ctx, inv, movement); err != nil {
		return nil, err
	}

	if inv.ReorderPoint > 0 && inv.Quantity <= inv.ReorderPoint {
		uc.logger.Info("inventory at or below reorder point",
			zap.String("product_id", inv.ProductID),
			zap.Int("quantity", inv.Quantity),
			zap.Int("reorder_point", inv.ReorderPoint),
		)
	}
	return inv, nil
}

// ApplyOrder deducts stock for every line of an order. Lines that were already
// deducted for this order are skipped so redelivered events are harmless.
func (uc *inventoryUseCase) ApplyOrder(ctx context.Context, event *model.OrderCreatedEvent) error {
	var failed int
	for _, item := range event.Payload.Items {
		done, err := uc.repo.HasMovement(ctx, item.ProductID, model.MovementSale, event.Payload.ID)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		_, err = uc.AdjustInventory(ctx, &dto.AdjustInventoryInput{
			ProductID:      item.ProductID,
			QuantityChange: -item.Quantity,
			MovementType:   model.MovementSale,
			Reason:         "Order " + event.Payload.OrderNumber,
			ReferenceID:    event.Payload.ID,
			ReferenceType:  model.MovementSale,
			UserID:         "system",
		})
		if err != nil {
			failed++
			uc.logger.Error("Failed to adjust inventory for order item",
				zap.String("order_id", event.Payload.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
	if failed > 0 {
		return fmt.Errorf("inventory not adjusted for %d of %d order lines", failed, len(event.Payload.Items))
	}
	return nil
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, page, pageSize int) ([]model.Inventory, int, error) {
	return uc.repo.FindAll(ctx, &dto.InventoryFilters{
		LowStock: true,
		Page:     page,
		PageSize: pageSize,
	})
}

func (uc *inventoryUseCase) ListExpiring(ctx context.Context, withinDays, page, pageSize int) ([]model.Inventory, int, error) {
	if withinDays < 0 {
		return nil, 0, apperror.Validation("Validation failed: days must not be negative")
	}
	before := truncateDay(uc.now()).AddDate(0, 0, withinDays)
	return uc.repo.FindAll(ctx, &dto.InventoryFilters{
		ExpiringBefore: &before,
		Page:           page,
		PageSize:       pageSize,
	})
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
