package types

import "time"

type EquipmentRemarkCreate struct {
	EquipmentName string `json:"equipment_name" binding:"required"`
	SubmitDate    string `json:"submit_date" binding:"required,datetime=2006-01-02"`
	Remark        string `json:"remark" binding:"required"`
	Status        string `json:"status" binding:"omitempty,oneof=Submitted Completed"`
}

type EquipmentRemarkEdit struct {
	RemarkID      int64   `json:"remark_id" binding:"required"`
	EquipmentName *string `json:"equipment_name"`
	SubmitDate    *string `json:"submit_date" binding:"omitempty,datetime=2006-01-02"`
	Remark        *string `json:"remark"`
	Status        *string `json:"status" binding:"omitempty,oneof=Submitted Completed"`
}

// EquipmentRemarkFilter narrows the maintenance log; zero values mean
// "any".
type EquipmentRemarkFilter struct {
	EquipmentName string
	Status        string
	SubmitDate    *time.Time
}
