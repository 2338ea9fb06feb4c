package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/discount"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/order"
	"github.com/fekuna/omnipos-commerce/internal/order/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

type Options struct {
	WarehouseEmail string
}

type orderUseCase struct {
	repo       order.Repository
	products   order.ProductFinder
	discounts  order.DiscountFinder
	customers  order.CustomerFinder
	publisher  order.EventPublisher
	mailer     mailer.Mailer
	translator *i18n.Translator
	opts       Options
	logger     logger.ZapLogger
	now        func() time.Time
}

func NewOrderUseCase(
	repo order.Repository,
	products order.ProductFinder,
	discounts order.DiscountFinder,
	customers order.CustomerFinder,
	publisher order.EventPublisher,
	mail mailer.Mailer,
	translator *i18n.Translator,
	opts Options,
	log logger.ZapLogger,
) order.UseCase {
	return &orderUseCase{
		repo:       repo,
		products:   products,
		discounts:  discounts,
		customers:  customers,
		publisher:  publisher,
		mailer:     mail,
		translator: translator,
		opts:       opts,
		logger:     log,
		now:        time.Now,
	}
}

// mergeLines folds repeated products into one line, keeping first-seen order.
func mergeLines(items []dto.OrderItemInput) ([]string, map[string]int) {
	ids := make([]string, 0, len(items))
	quantities := make(map[string]int, len(items))
	for _, item := range items {
		if _, seen := quantities[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}
	return ids, quantities
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, userID string, input *dto.CreateOrderInput) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.BadRequest("Order must contain at least one item")
	}
	ids, quantities := mergeLines(input.Items)

	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	subtotal := decimal.Zero
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || !p.IsActive {
			return nil, apperror.BadRequest(fmt.Sprintf("Product %s is not available", id))
		}
		subtotal = subtotal.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(quantities[id]))))
	}

	now := uc.now()
	bulk, err := uc.discounts.ActiveBulkForProducts(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	campaigns, err := uc.discounts.ActiveForProducts(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	orderNumber, err := utils.GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	o := &model.Order{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber: orderNumber,
		UserID:      userID,
		Status:      model.OrderStatusPending,
		Note:        input.Note,
		Items:       make([]model.OrderItem, 0, len(ids)),
	}

	discountTotal := decimal.Zero
	for _, id := range ids {
		p := byID[id]
		qty := quantities[id]
		price := decimal.NewFromFloat(p.Price)
		gross := price.Mul(decimal.NewFromInt(int64(qty)))

		percent := discount.BestPercent(bulk, campaigns, id, qty, subtotal, now)
		lineDiscount := gross.Mul(percent).Div(hundred).Round(2)
		discountTotal = discountTotal.Add(lineDiscount)

		o.Items = append(o.Items, model.OrderItem{
			ID:              uuid.New().String(),
			OrderID:         o.ID,
			ProductID:       id,
			ProductName:     p.Name,
			Quantity:        qty,
			UnitPrice:       price.InexactFloat64(),
			DiscountPercent: percent.InexactFloat64(),
			LineTotal:       gross.Sub(lineDiscount).InexactFloat64(),
		})
	}
	o.Subtotal = subtotal.Round(2).InexactFloat64()
	o.DiscountTotal = discountTotal.InexactFloat64()
	o.Total = subtotal.Sub(discountTotal).Round(2).InexactFloat64()

	if err := uc.repo.CreateWithItems(ctx, o); err != nil {
		return nil, err
	}

	uc.publishCreated(ctx, o)
	uc.notifyWarehouse(ctx, o)
	return o, nil
}

func (uc *orderUseCase) publishCreated(ctx context.Context, o *model.Order) {
	if uc.publisher == nil {
		return
	}
	event := model.OrderCreatedEvent{
		EventID:   uuid.New().String(),
		EventType: model.EventOrderCreated,
		Payload: model.OrderPayload{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			UserID:      o.UserID,
			Total:       o.Total,
			Items:       make([]model.OrderItemPayload, 0, len(o.Items)),
		},
		Timestamp: uc.now(),
	}
	for _, item := range o.Items {
		event.Payload.Items = append(event.Payload.Items, model.OrderItemPayload{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	b, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, o.ID, b); err != nil {
		uc.logger.Error("failed to publish order event", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (uc *orderUseCase) notifyWarehouse(ctx context.Context, o *model.Order) {
	if uc.mailer == nil || uc.translator == nil || uc.opts.WarehouseEmail == "" {
		return
	}

	data := map[string]any{
		"OrderNumber": o.OrderNumber,
		"Lines":       len(o.Items),
		"Total":       utils.FormatPrice(o.Total),
		"Date":        utils.FormatDate(o.CreatedAt),
	}
	if uc.customers != nil {
		c, err := uc.customers.FindByID(ctx, o.UserID)
		if err != nil {
			uc.logger.Warn("failed to load customer for warehouse mail", zap.String("user_id", o.UserID), zap.Error(err))
		}
		if c != nil {
			data["Company"] = c.CompanyName
			data["Email"] = c.Email
		}
	}

	msg := &mailer.Message{
		To:      []string{uc.opts.WarehouseEmail},
		Subject: uc.translator.T("OrderReceivedSubject", data),
		Text:    uc.translator.T("OrderReceivedBody", data),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.logger.Warn("failed to send warehouse mail", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperror.NotFound("Order not found")
	}
	return o, nil
}

// GetUserOrder hides other customers' orders behind the same 404.
func (uc *orderUseCase) GetUserOrder(ctx context.Context, userID, id string) (*model.Order, error) {
	o, err := uc.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, apperror.NotFound("Order not found")
	}
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error) {
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, apperror.BadRequest(fmt.Sprintf("Unknown order status %q", filters.Status))
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *orderUseCase) UpdateOrderStatus(ctx context.Context, input *dto.UpdateStatusInput) (*model.Order, error) {
	o, err := uc.GetOrder(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(input.Status) {
		return nil, apperror.BadRequest(fmt.Sprintf("Cannot change order status from %s to %s", o.Status, input.Status))
	}

	now := uc.now()
	if err := uc.repo.UpdateStatus(ctx, o.ID, input.Status, now); err != nil {
		return nil, err
	}
	o.Status = input.Status
	o.UpdatedAt = now
	return o, nil
}
