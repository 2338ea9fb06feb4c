package discount

import (
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/shopspring/decimal"
)

// BestPercent picks the single best discount for one order line. Bulk
// discounts qualify on the line quantity, campaign discounts on the order
// value. Discounts never stack; the highest qualifying percentage wins.
func BestPercent(
	bulk []model.BulkDiscount,
	campaigns []model.Discount,
	productID string,
	quantity int,
	orderValue decimal.Decimal,
	at time.Time,
) decimal.Decimal {
	best := decimal.Zero
	for i := range bulk {
		d := &bulk[i]
		if d.ProductID != productID || !d.ActiveAt(at) || quantity < d.MinQuantity {
			continue
		}
		if p := decimal.NewFromFloat(d.DiscountPercent); p.GreaterThan(best) {
			best = p
		}
	}
	for i := range campaigns {
		d := &campaigns[i]
		if d.ProductID != productID || !d.ActiveAt(at) {
			continue
		}
		if orderValue.LessThan(decimal.NewFromFloat(d.MinOrderValue)) {
			continue
		}
		if p := decimal.NewFromFloat(d.DiscountPercent); p.GreaterThan(best) {
			best = p
		}
	}
	if best.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return best
}
