package dao

import (
	"context"

	"Tably/models"

	"gorm.io/gorm"
)

type ItemDAO struct {
	Repo[models.Item]
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{Repo: NewRepo[models.Item](db)}
}

func (d *ItemDAO) Get(ctx context.Context, itemID int64) (*models.Item, error) {
	return d.FindOne(ctx, "item_id = ?", itemID)
}

// GetUnscoped resolves soft-deleted items too. Historical order items keep
// referencing deleted catalog entries, so billing reads must not lose them.
func (d *ItemDAO) GetUnscoped(ctx context.Context, itemID int64) (*models.Item, error) {
	var item models.Item
	err := d.Db.WithContext(ctx).Unscoped().Where("item_id = ?", itemID).First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (d *ItemDAO) GetByName(ctx context.Context, name string) (*models.Item, error) {
	return d.FindOne(ctx, "name = ?", name)
}

func (d *ItemDAO) Search(ctx context.Context, keyword string) ([]models.Item, error) {
	query := d.Db.WithContext(ctx).Model(&models.Item{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR category LIKE ?", like, like, like)
	}
	var items []models.Item
	err := query.Order("item_id").Find(&items).Error
	return items, err
}

func (d *ItemDAO) ListByCategory(ctx context.Context, category string) ([]models.Item, error) {
	query := d.Db.WithContext(ctx).Model(&models.Item{})
	if category != "" && category != models.CategoryAll {
		query = query.Where("category = ?", category)
	}
	var items []models.Item
	err := query.Order("item_id").Find(&items).Error
	return items, err
}

func (d *ItemDAO) SoftDelete(ctx context.Context, itemID int64) error {
	return d.Db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&models.Item{}).Error
}

func (d *ItemDAO) LinkIngredient(ctx context.Context, tx *gorm.DB, itemID, ingredientID int64) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&models.ItemIngredient{}).
		Where("item_id = ? AND ingredient_id = ?", itemID, ingredientID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&models.ItemIngredient{
		ItemID:       itemID,
		IngredientID: ingredientID,
	}).Error
}

func (d *ItemDAO) Ingredients(ctx context.Context, itemID int64) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := d.Db.WithContext(ctx).
		Joins("JOIN item_ingredients ON item_ingredients.ingredient_id = ingredients.ingredient_id").
		Where("item_ingredients.item_id = ?", itemID).
		Find(&ingredients).Error
	return ingredients, err
}
