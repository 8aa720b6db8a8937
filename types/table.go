package types

import "time"

type TableCreate struct {
	TableID string `json:"table_id" binding:"required"`
	Status  string `json:"status" binding:"omitempty,oneof=Available Occupied Unavailable"`
	Seats   int    `json:"seats" binding:"required,gt=0"`
}

type TableBulkCreate struct {
	Tables []TableCreate `json:"tables" binding:"required,min=1,dive"`
}

type TableEdit struct {
	TableID string  `json:"table_id" binding:"required"`
	Status  *string `json:"status" binding:"omitempty,oneof=Available Unavailable"`
	Seats   *int    `json:"seats" binding:"omitempty,gt=0"`
}

type SessionOpen struct {
	TableID   string `json:"table_id" binding:"required"`
	HeadCount *int   `json:"head_count" binding:"omitempty,gt=0"`
}

type SessionEdit struct {
	SessionID     string     `json:"session_id" binding:"required"`
	StartDatetime *time.Time `json:"start_datetime"`
	HeadCount     *int       `json:"head_count" binding:"omitempty,gt=0"`
}

type SessionClose struct {
	SessionID string `json:"session_id" binding:"required"`
}
