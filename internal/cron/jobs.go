package cron

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	reportPageSize = 100
	jobTimeout     = 5 * time.Minute
)

// DiscountExpirer is satisfied by discount.UseCase.
type DiscountExpirer interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// ExpiringStock is satisfied by inventory.UseCase.
type ExpiringStock interface {
	ListExpiring(ctx context.Context, withinDays, page, pageSize int) ([]model.Inventory, int, error)
}

type Options struct {
	WarehouseEmail    string
	ExpiryWarningDays int
	DiscountSchedule  string
	InventorySchedule string
}

type Jobs struct {
	discounts  DiscountExpirer
	stock      ExpiringStock
	mailer     mailer.Mailer
	translator *i18n.Translator
	opts       Options
	logger     logger.ZapLogger
}

func NewJobs(discounts DiscountExpirer, stock ExpiringStock, mail mailer.Mailer, translator *i18n.Translator, opts Options, log logger.ZapLogger) *Jobs {
	return &Jobs{
		discounts:  discounts,
		stock:      stock,
		mailer:     mail,
		translator: translator,
		opts:       opts,
		logger:     log,
	}
}

// Register adds both jobs to c.
func (j *Jobs) Register(c *cron.Cron) error {
	if _, err := c.AddFunc(j.opts.DiscountSchedule, j.run("deactivate_expired_discounts", j.DeactivateExpiredDiscounts)); err != nil {
		return fmt.Errorf("schedule discount job: %w", err)
	}
	if _, err := c.AddFunc(j.opts.InventorySchedule, j.run("inventory_expiry_report", j.SendExpiryReport)); err != nil {
		return fmt.Errorf("schedule inventory job: %w", err)
	}
	return nil
}

func (j *Jobs) run(name string, job func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			j.logger.Error("Cron job failed", zap.String("job", name), zap.Error(err))
			return
		}
		j.logger.Info("Cron job finished", zap.String("job", name), zap.Duration("duration", time.Since(start)))
	}
}

func (j *Jobs) DeactivateExpiredDiscounts(ctx context.Context) error {
	n, err := j.discounts.DeactivateExpired(ctx)
	if err != nil {
		return err
	}
	j.logger.Info("Expired discounts deactivated", zap.Int64("count", n))
	return nil
}

// SendExpiryReport mails the warehouse every stock row expiring within the
// warning window. Nothing is sent when no row qualifies.
func (j *Jobs) SendExpiryReport(ctx context.Context) error {
	if j.opts.WarehouseEmail == "" {
		j.logger.Warn("No warehouse email configured, skipping expiry report")
		return nil
	}

	var items []model.Inventory
	for page := 1; ; page++ {
		batch, total, err := j.stock.ListExpiring(ctx, j.opts.ExpiryWarningDays, page, reportPageSize)
		if err != nil {
			return err
		}
		items = append(items, batch...)
		if len(batch) == 0 || len(items) >= total {
			break
		}
	}
	if len(items) == 0 {
		return nil
	}

	lines := make([]string, 0, len(items))
	for _, inv := range items {
		expires := "-"
		if inv.ExpirationDate != nil {
			expires = utils.FormatDate(*inv.ExpirationDate)
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %d, %s", inv.ProductName, inv.ProductSKU, inv.Quantity, expires))
	}

	msg := &mailer.Message{
		To:      []string{j.opts.WarehouseEmail},
		Subject: j.translator.T("ExpiryReportSubject", nil),
		Text: j.translator.T("ExpiryReportBody", map[string]any{
			"Count": len(items),
			"Days":  j.opts.ExpiryWarningDays,
			"Lines": strings.Join(lines, "\n"),
		}),
	}
	if err := j.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send expiry report: %w", err)
	}
	j.logger.Info("Expiry report sent", zap.Int("items", len(items)))
	return nil
}
