package service

import (
	"testing"

	"Tably/models"

	"github.com/stretchr/testify/assert"
)

var testRates = BillingRates{GovernmentTax: 0.06, ServiceTax: 0.1}

func TestLineTotal(t *testing.T) {
	item := models.OrderItem{Price: 12.5, Quantity: 3}
	assert.InDelta(t, 37.5, LineTotal(item), 1e-9)
}

func TestVoucherReduction(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		vouchers []models.Voucher
		want     float64
	}{
		{
			name:     "no vouchers",
			subtotal: 100,
			want:     0,
		},
		{
			name:     "single percentage",
			subtotal: 100,
			vouchers: []models.Voucher{
				{DiscountType: models.DiscountPercentage, DiscountAmount: 10},
			},
			want: 10,
		},
		{
			name:     "single fixed",
			subtotal: 100,
			vouchers: []models.Voucher{
				{DiscountType: models.DiscountFixed, DiscountAmount: 15},
			},
			want: 15,
		},
		{
			name:     "percentage and fixed are additive",
			subtotal: 200,
			vouchers: []models.Voucher{
				{DiscountType: models.DiscountPercentage, DiscountAmount: 10},
				{DiscountType: models.DiscountFixed, DiscountAmount: 5},
			},
			want: 25,
		},
		{
			name:     "reduction clamped to subtotal",
			subtotal: 10,
			vouchers: []models.Voucher{
				{DiscountType: models.DiscountFixed, DiscountAmount: 50},
			},
			want: 10,
		},
		{
			name:     "zero subtotal",
			subtotal: 0,
			vouchers: []models.Voucher{
				{DiscountType: models.DiscountPercentage, DiscountAmount: 50},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VoucherReduction(tt.subtotal, tt.vouchers)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestComputeBill(t *testing.T) {
	items := []models.OrderItem{
		{Price: 40, Quantity: 2},
		{Price: 20, Quantity: 1},
	}
	vouchers := []models.Voucher{
		{DiscountType: models.DiscountPercentage, DiscountAmount: 10},
	}

	bill := ComputeBill(items, vouchers, testRates)

	assert.InDelta(t, 10, bill.Discount, 1e-9)
	assert.InDelta(t, 90, bill.Subtotal, 1e-9)
	assert.InDelta(t, 5.4, bill.GstTotal, 1e-9)
	assert.InDelta(t, 9.0, bill.SstTotal, 1e-9)
	assert.InDelta(t, 104.4, bill.NetTotal, 1e-9)
	assert.InDelta(t, 0, bill.RoundingAdj, 1e-9)
}

func TestComputeBillRounding(t *testing.T) {
	items := []models.OrderItem{
		{Price: 3.55, Quantity: 3}, // 10.65 before tax
	}

	bill := ComputeBill(items, nil, testRates)

	// 10.65 * 1.16 = 12.354, rounds up to 12.4
	assert.InDelta(t, 12.4, bill.NetTotal, 1e-9)
	assert.InDelta(t, 0.046, bill.RoundingAdj, 1e-9)
}

// NetTotal must always reconcile from its recorded components.
func TestComputeBillReconciles(t *testing.T) {
	cases := [][]models.OrderItem{
		{{Price: 9.9, Quantity: 1}},
		{{Price: 7.77, Quantity: 3}, {Price: 0.05, Quantity: 2}},
		{{Price: 100, Quantity: 10}},
		nil,
	}

	for _, items := range cases {
		bill := ComputeBill(items, nil, testRates)
		sum := bill.Subtotal + bill.GstTotal + bill.SstTotal + bill.RoundingAdj
		assert.InDelta(t, bill.NetTotal, sum, 1e-9)
	}
}

func TestComputeBillFullDiscount(t *testing.T) {
	items := []models.OrderItem{{Price: 5, Quantity: 2}}
	vouchers := []models.Voucher{
		{DiscountType: models.DiscountFixed, DiscountAmount: 100},
	}

	bill := ComputeBill(items, vouchers, testRates)

	assert.InDelta(t, 10, bill.Discount, 1e-9)
	assert.InDelta(t, 0, bill.Subtotal, 1e-9)
	assert.InDelta(t, 0, bill.NetTotal, 1e-9)
}
