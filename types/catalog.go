package types

type ItemCreate struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
	Description   string  `json:"description"`
	Category      string  `json:"category" binding:"omitempty,oneof=All Beverage Rice Noodle Snacks"`
	PictureLink   string  `json:"picture_link"`
	IngredientIDs []int64 `json:"ingredient_ids"`
}

type ItemEdit struct {
	ItemID      int64    `json:"item_id" binding:"required"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,oneof=All Beverage Rice Noodle Snacks"`
	PictureLink *string  `json:"picture_link"`
}

type IngredientView struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
}

type ItemView struct {
	ItemID      int64            `json:"item_id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category"`
	PictureLink string           `json:"picture_link,omitempty"`
	Ingredients []IngredientView `json:"ingredients,omitempty"`
}
