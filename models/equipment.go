package models

import (
	"time"
)

const (
	RemarkSubmitted = "Submitted"
	RemarkCompleted = "Completed"
)

// EquipmentRemark is a kitchen maintenance note: staff report equipment
// issues as Submitted and flip them to Completed once handled.
type EquipmentRemark struct {
	RemarkID      int64     `gorm:"column:remark_id;primaryKey;autoIncrement" json:"remark_id"`
	EquipmentName string    `gorm:"column:equipment_name;type:varchar(128);not null;index:idx_remark_equipment" json:"equipment_name"`
	SubmitDate    time.Time `gorm:"column:submit_date;type:date;not null" json:"submit_date"`
	Remark        string    `gorm:"column:remark;type:varchar(255);not null" json:"remark"`
	Status        string    `gorm:"column:status;type:varchar(16);not null;default:'Submitted'" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EquipmentRemark) TableName() string {
	return "equipment_remarks"
}
