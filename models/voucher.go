package models

import (
	"time"
)

const (
	DiscountPercentage = "Percentage"
	DiscountFixed      = "Fixed"
)

type Voucher struct {
	VoucherID               string     `gorm:"column:voucher_id;type:varchar(36);primaryKey" json:"voucher_id"`
	VoucherCode             string     `gorm:"column:voucher_code;type:varchar(64);not null;uniqueIndex:idx_voucher_code" json:"voucher_code"`
	DiscountType            string     `gorm:"column:discount_type;type:varchar(16);not null" json:"discount_type"`
	DiscountAmount          float64    `gorm:"column:discount_amount;not null" json:"discount_amount"`
	BeginDatetime           *time.Time `gorm:"column:begin_datetime" json:"begin_datetime,omitempty"`
	ExpiryDatetime          *time.Time `gorm:"column:expiry_datetime" json:"expiry_datetime,omitempty"`
	RequirementTime         *string    `gorm:"column:requirement_time;type:varchar(8)" json:"requirement_time,omitempty"`
	RequirementMinimumSpend *float64   `gorm:"column:requirement_minimum_spend" json:"requirement_minimum_spend,omitempty"`
	RequirementMember       bool       `gorm:"column:requirement_member;not null;default:false" json:"requirement_member"`
	MaxUses                 int        `gorm:"column:max_uses;not null;default:0" json:"max_uses"`
	CreatedAt               time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Voucher) TableName() string {
	return "vouchers"
}

// VoucherRequirement lists item ids that must all appear among the
// session's order items before the voucher may be applied.
type VoucherRequirement struct {
	VoucherRequirementID string `gorm:"column:voucher_requirement_id;type:varchar(36);primaryKey" json:"voucher_requirement_id"`
	VoucherID            string `gorm:"column:voucher_id;type:varchar(36);not null;index:idx_requirement_voucher" json:"voucher_id"`
	RequirementItemID    int64  `gorm:"column:requirement_item_id;not null" json:"requirement_item_id"`
}

func (VoucherRequirement) TableName() string {
	return "voucher_requirements"
}

// VoucherUse records one application of a voucher to one session. The
// unique index on (voucher_id, table_session_id) makes "one voucher per
// session" a storage invariant rather than a check-then-insert.
type VoucherUse struct {
	VoucherUseID   string    `gorm:"column:voucher_use_id;type:varchar(36);primaryKey" json:"voucher_use_id"`
	VoucherID      string    `gorm:"column:voucher_id;type:varchar(36);not null;uniqueIndex:idx_voucher_session;index:idx_use_voucher_user" json:"voucher_id"`
	TableSessionID string    `gorm:"column:table_session_id;type:varchar(36);not null;uniqueIndex:idx_voucher_session" json:"table_session_id"`
	UserID         *int64    `gorm:"column:user_id;index:idx_use_voucher_user" json:"user_id,omitempty"`
	UseDatetime    time.Time `gorm:"column:use_datetime;not null" json:"use_datetime"`
}

func (VoucherUse) TableName() string {
	return "voucher_uses"
}
