package models

import (
	"time"
)

// Review is a customer rating of a menu item. Reviews reference items by
// id and survive item retirement the same way order items do.
type Review struct {
	ReviewID       int64     `gorm:"column:review_id;primaryKey;autoIncrement" json:"review_id"`
	UserID         int64     `gorm:"column:user_id;not null;index:idx_review_user" json:"user_id"`
	ItemID         int64     `gorm:"column:item_id;not null;index:idx_review_item" json:"item_id"`
	Remark         string    `gorm:"column:remark;type:varchar(255)" json:"remark"`
	Value          int       `gorm:"column:value;not null" json:"value"`
	ReviewDatetime time.Time `gorm:"column:review_datetime;not null" json:"review_datetime"`
}

func (Review) TableName() string {
	return "reviews"
}
