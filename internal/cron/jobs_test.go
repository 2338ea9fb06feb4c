package cron

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscounts struct {
	n     int64
	err   error
	calls int
}

func (f *fakeDiscounts) DeactivateExpired(context.Context) (int64, error) {
	f.calls++
	return f.n, f.err
}

type fakeStock struct {
	items []model.Inventory
	pages []int
}

func (f *fakeStock) ListExpiring(_ context.Context, _, page, pageSize int) ([]model.Inventory, int, error) {
	f.pages = append(f.pages, page)
	start := (page - 1) * pageSize
	if start >= len(f.items) {
		return []model.Inventory{}, len(f.items), nil
	}
	end := min(start+pageSize, len(f.items))
	return f.items[start:end], len(f.items), nil
}

type fakeMailer struct {
	sent []*mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg *mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newJobs(t *testing.T, d DiscountExpirer, s ExpiringStock, m mailer.Mailer, opts Options) *Jobs {
	t.Helper()
	tr, err := i18n.New()
	require.NoError(t, err)
	return NewJobs(d, s, m, tr, opts, logger.NewNop())
}

func TestDeactivateExpiredDiscounts(t *testing.T) {
	d := &fakeDiscounts{n: 3}
	j := newJobs(t, d, &fakeStock{}, &fakeMailer{}, Options{})
	require.NoError(t, j.DeactivateExpiredDiscounts(context.Background()))
	assert.Equal(t, 1, d.calls)

	d.err = errors.New("db down")
	assert.Error(t, j.DeactivateExpiredDiscounts(context.Background()))
}

func TestSendExpiryReportPagesThroughStock(t *testing.T) {
	items := make([]model.Inventory, 150)
	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := range items {
		items[i] = model.Inventory{ProductName: fmt.Sprintf("Vare %d", i), ProductSKU: fmt.Sprintf("SKU-%d", i), Quantity: i, ExpirationDate: &exp}
	}
	stock := &fakeStock{items: items}
	mail := &fakeMailer{}
	j := newJobs(t, &fakeDiscounts{}, stock, mail, Options{WarehouseEmail: "lager@example.no", ExpiryWarningDays: 14})

	require.NoError(t, j.SendExpiryReport(context.Background()))
	assert.Equal(t, []int{1, 2}, stock.pages)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, []string{"lager@example.no"}, mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Text, "150")
	assert.Contains(t, mail.sent[0].Text, "- Vare 149 (SKU-149): 149, 01.05.2026")
}

func TestSendExpiryReportSkips(t *testing.T) {
	mail := &fakeMailer{}

	j := newJobs(t, &fakeDiscounts{}, &fakeStock{}, mail, Options{WarehouseEmail: "lager@example.no", ExpiryWarningDays: 14})
	require.NoError(t, j.SendExpiryReport(context.Background()))

	j = newJobs(t, &fakeDiscounts{}, &fakeStock{items: []model.Inventory{{ProductName: "x"}}}, mail, Options{})
	require.NoError(t, j.SendExpiryReport(context.Background()))

	assert.Empty(t, mail.sent)
}

func TestSendExpiryReportMailFailure(t *testing.T) {
	mail := &fakeMailer{err: errors.New("smtp down")}
	j := newJobs(t, &fakeDiscounts{}, &fakeStock{items: []model.Inventory{{ProductName: "x"}}}, mail, Options{WarehouseEmail: "lager@example.no"})
	assert.ErrorContains(t, j.SendExpiryReport(context.Background()), "smtp down")
}

func TestRegister(t *testing.T) {
	j := newJobs(t, &fakeDiscounts{}, &fakeStock{}, &fakeMailer{}, Options{DiscountSchedule: "@hourly", InventorySchedule: "0 6 * * *"})
	c := cron.New()
	require.NoError(t, j.Register(c))
	assert.Len(t, c.Entries(), 2)

	j = newJobs(t, &fakeDiscounts{}, &fakeStock{}, &fakeMailer{}, Options{DiscountSchedule: "every tuesday", InventorySchedule: "@daily"})
	assert.Error(t, j.Register(cron.New()))
}

func TestRunLogsAndSwallowsErrors(t *testing.T) {
	d := &fakeDiscounts{err: errors.New("db down")}
	j := newJobs(t, d, &fakeStock{}, &fakeMailer{}, Options{})
	assert.NotPanics(t, j.run("deactivate_expired_discounts", j.DeactivateExpiredDiscounts))
	assert.Equal(t, 1, d.calls)
}
