package types

type ReviewCreate struct {
	ItemID int64  `json:"item_id" binding:"required"`
	Remark string `json:"remark"`
	Value  int    `json:"value" binding:"required,min=1,max=5"`
}

type ReviewEdit struct {
	ReviewID int64   `json:"review_id" binding:"required"`
	Remark   *string `json:"remark"`
	Value    *int    `json:"value" binding:"omitempty,min=1,max=5"`
}
