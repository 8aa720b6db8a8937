package types

import "time"

// Bill is the checkout arithmetic in one place. Subtotal is already net of
// Discount; RoundingAdj is the signed amount added to reach the nearest
// 0.1 currency unit, recorded explicitly for audit.
type Bill struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	GstTotal    float64 `json:"gst_total"`
	SstTotal    float64 `json:"sst_total"`
	RoundingAdj float64 `json:"rounding_adj"`
	NetTotal    float64 `json:"net_total"`
}

type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

// ReceiptInfo is the structured receipt payload. Rendering (ZPL, printer)
// is an external collaborator; this is everything it needs.
type ReceiptInfo struct {
	RestaurantName     string        `json:"restaurant_name"`
	RestaurantCompany  string        `json:"restaurant_company"`
	RegistrationNumber string        `json:"registration_number"`
	Address            string        `json:"address"`
	Address2           string        `json:"address_2"`
	City               string        `json:"city"`
	State              string        `json:"state"`
	Telephone          string        `json:"telephone"`
	SstID              string        `json:"sst_id"`
	TableID            string        `json:"table_id"`
	SessionID          string        `json:"session_id"`
	DateTime           time.Time     `json:"date_time"`
	Cashier            int64         `json:"cashier"`
	PaymentMethod      string        `json:"payment_method"`
	Lines              []ReceiptLine `json:"lines"`
	Bill               Bill          `json:"bill"`
}

type CheckoutRequest struct {
	SessionID     string `json:"session_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof='Touch n Go' 'Credit Card' 'Debit Card' Cash"`
}

type PeriodStats struct {
	SalesCount    int64   `json:"sales_count"`
	Revenue       float64 `json:"revenue"`
	GovernmentTax float64 `json:"government_tax"`
	ServiceTax    float64 `json:"service_tax"`
}

type StatsSummary struct {
	Today              PeriodStats        `json:"today"`
	Week               PeriodStats        `json:"week"`
	Month              PeriodStats        `json:"month"`
	Year               PeriodStats        `json:"year"`
	PaymentMethodShare map[string]float64 `json:"payment_method_share"`
}
