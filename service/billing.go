package service

import (
	"math"

	"Tably/models"
	"Tably/types"
)

type BillingRates struct {
	GovernmentTax float64
	ServiceTax    float64
}

// LineTotal is the one place the price convention lives: OrderItem.Price
// is the unit price snapshotted at order time, so the line always costs
// price * quantity.
func LineTotal(item models.OrderItem) float64 {
	return item.Price * float64(item.Quantity)
}

func Subtotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}

// VoucherReduction sums percentage discounts and fixed discounts applied
// to a session and converts them into one deduction: percentage cut of the
// subtotal plus the fixed amounts, never exceeding the subtotal.
func VoucherReduction(subtotal float64, vouchers []models.Voucher) float64 {
	var percentage, fixed float64
	for _, v := range vouchers {
		switch v.DiscountType {
		case models.DiscountPercentage:
			percentage += v.DiscountAmount
		case models.DiscountFixed:
			fixed += v.DiscountAmount
		}
	}

	reduction := subtotal*percentage/100 + fixed
	if reduction > subtotal {
		reduction = subtotal
	}
	if reduction < 0 {
		reduction = 0
	}
	return reduction
}

// ComputeBill runs the full checkout arithmetic: discount, taxes, and the
// rounding to the nearest 0.1 currency unit with the adjustment recorded.
func ComputeBill(items []models.OrderItem, vouchers []models.Voucher, rates BillingRates) types.Bill {
	subtotal := Subtotal(items)
	discount := VoucherReduction(subtotal, vouchers)
	subtotal -= discount

	gst := subtotal * rates.GovernmentTax
	sst := subtotal * rates.ServiceTax
	net := subtotal + gst + sst

	adj := roundToTenth(net) - net
	net += adj

	return types.Bill{
		Subtotal:    subtotal,
		Discount:    discount,
		GstTotal:    gst,
		SstTotal:    sst,
		RoundingAdj: adj,
		NetTotal:    net,
	}
}

func roundToTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
