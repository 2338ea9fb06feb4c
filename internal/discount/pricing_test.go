package discount

import (
	"testing"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBestPercent(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	from := now.AddDate(0, -1, 0)

	bulk := []model.BulkDiscount{
		{ProductID: "p1", MinQuantity: 10, DiscountPercent: 5, ValidFrom: from, IsActive: true},
		{ProductID: "p1", MinQuantity: 50, DiscountPercent: 12, ValidFrom: from, IsActive: true},
		{ProductID: "p1", MinQuantity: 1, DiscountPercent: 40, ValidFrom: from, ValidTo: &past, IsActive: true},
		{ProductID: "p2", MinQuantity: 1, DiscountPercent: 30, ValidFrom: from, IsActive: true},
	}
	campaigns := []model.Discount{
		{ProductID: "p1", DiscountPercent: 8, MinOrderValue: 1000, ValidFrom: from, IsActive: true},
		{ProductID: "p1", DiscountPercent: 50, MinOrderValue: 0, ValidFrom: from, IsActive: false},
	}

	cases := []struct {
		name     string
		quantity int
		value    float64
		want     string
	}{
		{"nothing qualifies", 2, 100, "0"},
		{"bulk threshold", 10, 100, "5"},
		{"campaign beats small bulk", 10, 1500, "8"},
		{"large bulk beats campaign", 60, 1500, "12"},
		{"campaign alone", 1, 1000, "8"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BestPercent(bulk, campaigns, "p1", tc.quantity, decimal.NewFromFloat(tc.value), now)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
