package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/discount"
	"github.com/fekuna/omnipos-commerce/internal/discount/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type discountUseCase struct {
	repo     discount.Repository
	products discount.ProductChecker
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewDiscountUseCase(repo discount.Repository, products discount.ProductChecker, log logger.ZapLogger) discount.UseCase {
	return &discountUseCase{
		repo:     repo,
		products: products,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *discountUseCase) checkProduct(ctx context.Context, productID string) error {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperror.NotFound("Product not found")
	}
	return nil
}

func checkWindow(from time.Time, to *time.Time) error {
	if to != nil && !to.After(from) {
		return apperror.Validation("Validation failed: valid_to must be after valid_from")
	}
	return nil
}

func (uc *discountUseCase) CreateBulkDiscount(ctx context.Context, input *dto.CreateBulkDiscountInput) (*model.BulkDiscount, error) {
	if err := uc.checkProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	now := uc.now()
	d := &model.BulkDiscount{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:       input.ProductID,
		MinQuantity:     input.MinQuantity,
		DiscountPercent: input.DiscountPercent,
		ValidFrom:       now,
		ValidTo:         input.ValidTo,
		IsActive:        true,
	}
	if input.ValidFrom != nil {
		d.ValidFrom = *input.ValidFrom
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
	}
	if err := checkWindow(d.ValidFrom, d.ValidTo); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBulk(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *discountUseCase) ListBulkDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.BulkDiscount, int, error) {
	return uc.repo.ListBulk(ctx, filters)
}

func (uc *discountUseCase) UpdateBulkDiscount(ctx context.Context, input *dto.UpdateBulkDiscountInput) (*model.BulkDiscount, error) {
	d, err := uc.repo.FindBulkByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.NotFound("Bulk discount not found")
	}

	if input.MinQuantity != nil {
		d.MinQuantity = *input.MinQuantity
	}
	if input.DiscountPercent != nil {
		d.DiscountPercent = *input.DiscountPercent
	}
	if input.ValidFrom != nil {
		d.ValidFrom = *input.ValidFrom
	}
	if input.ValidTo != nil {
		d.ValidTo = input.ValidTo
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
	}
	if err := checkWindow(d.ValidFrom, d.ValidTo); err != nil {
		return nil, err
	}
	d.UpdatedAt = uc.now()

	if err := uc.repo.UpdateBulk(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *discountUseCase) DeleteBulkDiscount(ctx context.Context, id string) error {
	d, err := uc.repo.FindBulkByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return apperror.NotFound("Bulk discount not found")
	}
	return uc.repo.DeleteBulk(ctx, id)
}

func (uc *discountUseCase) CreateDiscount(ctx context.Context, input *dto.CreateDiscountInput) (*model.Discount, error) {
	if err := uc.checkProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	now := uc.now()
	d := &model.Discount{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:       input.ProductID,
		DiscountPercent: input.DiscountPercent,
		MinOrderValue:   input.MinOrderValue,
		ValidFrom:       now,
		ValidTo:         input.ValidTo,
		IsActive:        true,
	}
	if input.ValidFrom != nil {
		d.ValidFrom = *input.ValidFrom
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
	}
	if err := checkWindow(d.ValidFrom, d.ValidTo); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *discountUseCase) ListDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, int, error) {
	return uc.repo.List(ctx, filters)
}

func (uc *discountUseCase) UpdateDiscount(ctx context.Context, input *dto.UpdateDiscountInput) (*model.Discount, error) {
	d, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.NotFound("Discount not found")
	}

	if input.DiscountPercent != nil {
		d.DiscountPercent = *input.DiscountPercent
	}
	if input.MinOrderValue != nil {
		d.MinOrderValue = *input.MinOrderValue
	}
	if input.ValidFrom != nil {
		d.ValidFrom = *input.ValidFrom
	}
	if input.ValidTo != nil {
		d.ValidTo = input.ValidTo
	}
	if input.IsActive != nil {
		d.IsActive = *input.IsActive
	}
	if err := checkWindow(d.ValidFrom, d.ValidTo); err != nil {
		return nil, err
	}
	d.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *discountUseCase) DeleteDiscount(ctx context.Context, id string) error {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return apperror.NotFound("Discount not found")
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *discountUseCase) GetProductDiscounts(ctx context.Context, productID string) (*dto.ProductDiscounts, error) {
	if err := uc.checkProduct(ctx, productID); err != nil {
		return nil, err
	}

	now := uc.now()
	ids := []string{productID}
	bulk, err := uc.repo.ActiveBulkForProducts(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	campaigns, err := uc.repo.ActiveForProducts(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	return &dto.ProductDiscounts{ProductID: productID, Bulk: bulk, Campaigns: campaigns}, nil
}

// DeactivateExpired is run by the cron service.
func (uc *discountUseCase) DeactivateExpired(ctx context.Context) (int64, error) {
	bulk, campaigns, err := uc.repo.DeactivateExpired(ctx, uc.now())
	if err != nil {
		return 0, err
	}
	if bulk+campaigns > 0 {
		uc.logger.Info("Deactivated expired discounts",
			zap.Int64("bulk", bulk),
			zap.Int64("campaigns", campaigns),
		)
	}
	return bulk + campaigns, nil
}
