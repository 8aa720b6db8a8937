package types

import (
	"time"

	"Tably/models"
)

type VoucherCreate struct {
	VoucherCode             string     `json:"voucher_code" binding:"required"`
	DiscountType            string     `json:"discount_type" binding:"required,oneof=Percentage Fixed"`
	DiscountAmount          float64    `json:"discount_amount" binding:"required,gt=0"`
	BeginDatetime           *time.Time `json:"begin_datetime"`
	ExpiryDatetime          *time.Time `json:"expiry_datetime"`
	RequirementTime         *string    `json:"requirement_time"`
	RequirementMinimumSpend *float64   `json:"requirement_minimum_spend" binding:"omitempty,gt=0"`
	RequirementMember       bool       `json:"requirement_member"`
	MaxUses                 int        `json:"max_uses" binding:"omitempty,gte=0"`
	RequiredItemIDs         []int64    `json:"required_item_ids"`
}

type VoucherApply struct {
	SessionID   string `json:"session_id" binding:"required"`
	VoucherCode string `json:"voucher_code" binding:"required"`
}

// VoucherView is a voucher with its item requirements flattened.
type VoucherView struct {
	models.Voucher
	RequiredItemIDs []int64 `json:"required_item_ids,omitempty"`
}
