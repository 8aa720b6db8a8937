package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CategoryAll      = "All"
	CategoryBeverage = "Beverage"
	CategoryRice     = "Rice"
	CategoryNoodle   = "Noodle"
	CategorySnacks   = "Snacks"
)

// Item is a menu entry. Items referenced by historical order items are
// never hard-deleted; DeletedAt hides them from the live menu while
// keeping old bills resolvable (reads that need history use Unscoped).
type Item struct {
	ItemID      int64          `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	Name        string         `gorm:"column:name;type:varchar(128);not null;uniqueIndex:idx_item_name" json:"name"`
	Price       float64        `gorm:"column:price;not null" json:"price"`
	Description string         `gorm:"column:description;type:varchar(255)" json:"description"`
	Category    string         `gorm:"column:category;type:varchar(16);not null;default:'All'" json:"category"`
	PictureLink string         `gorm:"column:picture_link;type:varchar(255)" json:"picture_link"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Item) TableName() string {
	return "items"
}

type Ingredient struct {
	IngredientID int64          `gorm:"column:ingredient_id;primaryKey;autoIncrement" json:"ingredient_id"`
	Name         string         `gorm:"column:name;type:varchar(128);not null;uniqueIndex:idx_ingredient_name" json:"name"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// ItemIngredient is the recipe join. Presence only; quantity tracking is
// optional metadata the schema does not commit to.
type ItemIngredient struct {
	ID           int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID       int64 `gorm:"column:item_id;not null;uniqueIndex:idx_item_ingredient" json:"item_id"`
	IngredientID int64 `gorm:"column:ingredient_id;not null;uniqueIndex:idx_item_ingredient" json:"ingredient_id"`
}

func (ItemIngredient) TableName() string {
	return "item_ingredients"
}
