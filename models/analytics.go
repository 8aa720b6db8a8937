package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnalyticsCheckout is the immutable snapshot written once per checkout.
// Never updated after insert; the source of truth for reporting. The
// unique session index backstops double-checkout at the storage layer.
type AnalyticsCheckout struct {
	AnalyticsID    string         `gorm:"column:analytics_id;type:varchar(36);primaryKey" json:"analytics_id"`
	TableSessionID string         `gorm:"column:table_session_id;type:varchar(36);not null;uniqueIndex:idx_checkout_session" json:"table_session_id"`
	Subtotal       float64        `gorm:"column:subtotal;not null" json:"subtotal"`
	GstTotal       float64        `gorm:"column:gst_total;not null" json:"gst_total"`
	SstTotal       float64        `gorm:"column:sst_total;not null" json:"sst_total"`
	Discount       float64        `gorm:"column:discount;not null" json:"discount"`
	RoundingAdj    float64        `gorm:"column:rounding_adj;not null" json:"rounding_adj"`
	NetTotal       float64        `gorm:"column:net_total;not null" json:"net_total"`
	Cashier        int64          `gorm:"column:cashier;not null" json:"cashier"`
	PaymentMethod  string         `gorm:"column:payment_method;type:varchar(32);not null" json:"payment_method"`
	Items          datatypes.JSON `gorm:"column:items" json:"items"`
	CheckoutTime   time.Time      `gorm:"column:checkout_time;not null;index:idx_checkout_time" json:"checkout_time"`
}

func (AnalyticsCheckout) TableName() string {
	return "analytics_checkouts"
}
