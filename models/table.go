package models

import (
	"time"
)

const (
	TableAvailable   = "Available"
	TableOccupied    = "Occupied"
	TableUnavailable = "Unavailable"
)

const (
	SessionActive    = "Active"
	SessionCompleted = "Completed"
)

// Table is a physical table. Status is constrained by session state: a
// table with an Active session must be Occupied, and may not be edited to
// Available/Unavailable while that session lives.
type Table struct {
	TableID   string    `gorm:"column:table_id;type:varchar(16);primaryKey" json:"table_id"`
	Status    string    `gorm:"column:status;type:varchar(16);not null;default:'Available'" json:"status"`
	Seats     int       `gorm:"column:seats;not null" json:"seats"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Table) TableName() string {
	return "tables"
}

// TableSession anchors everything billed against one seating: orders and
// voucher uses reference its id, and checkout closes it. The id is a UUID
// so session tokens cannot be guessed by walking a sequence.
type TableSession struct {
	SessionID     string    `gorm:"column:session_id;type:varchar(36);primaryKey" json:"session_id"`
	TableID       string    `gorm:"column:table_id;type:varchar(16);not null;index:idx_table_status" json:"table_id"`
	Status        string    `gorm:"column:status;type:varchar(16);not null;default:'Active';index:idx_table_status" json:"status"`
	StartDatetime time.Time `gorm:"column:start_datetime;not null" json:"start_datetime"`
	HeadCount     *int      `gorm:"column:head_count" json:"head_count,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TableSession) TableName() string {
	return "table_sessions"
}
