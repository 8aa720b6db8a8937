package service

import (
	"context"

	"Tably/dao"
	"Tably/dao/cache"
	"Tably/models"
	"Tably/pkg/log"
	"Tably/pkg/response"
	"Tably/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CatalogService struct {
	DB      *gorm.DB
	ItemDAO *dao.ItemDAO
	Menu    *cache.MenuStorage
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	CreateItem(ctx context.Context, req types.ItemCreate) (*types.ItemView, error)
	EditItem(ctx context.Context, req types.ItemEdit) (*types.ItemView, error)
	DeleteItem(ctx context.Context, itemID int64) error
	GetItem(ctx context.Context, itemID int64) (*types.ItemView, error)
	ListItems(ctx context.Context, keyword, category string) ([]types.ItemView, error)
	CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
}

// CreateItem is idempotent on name: posting an existing item attaches any
// new ingredient links instead of failing.
func (s *CatalogService) CreateItem(ctx context.Context, req types.ItemCreate) (*types.ItemView, error) {
	category := req.Category
	if category == "" {
		category = models.CategoryAll
	}

	var item *models.Item
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Item
		err := tx.Where("name = ?", req.Name).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			existing = models.Item{
				Name:        req.Name,
				Price:       req.Price,
				Description: req.Description,
				Category:    category,
				PictureLink: req.PictureLink,
			}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		for _, ingredientID := range req.IngredientIDs {
			var ingredient models.Ingredient
			if err := tx.Where("ingredient_id = ?", ingredientID).First(&ingredient).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return response.InvalidRequest("ingredient does not exist")
				}
				return err
			}
			if err := s.ItemDAO.LinkIngredient(ctx, tx, existing.ItemID, ingredientID); err != nil {
				return err
			}
		}

		item = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx)
	return s.GetItem(ctx, item.ItemID)
}

func (s *CatalogService) EditItem(ctx context.Context, req types.ItemEdit) (*types.ItemView, error) {
	item, err := s.ItemDAO.Get(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, response.NotFound("item not found")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.PictureLink != nil {
		updates["picture_link"] = *req.PictureLink
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.Item{}).
			Where("item_id = ?", req.ItemID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		s.invalidateMenu(ctx)
	}

	return s.GetItem(ctx, req.ItemID)
}

// DeleteItem soft-deletes: the row stays for historical order items, the
// live menu stops showing it.
func (s *CatalogService) DeleteItem(ctx context.Context, itemID int64) error {
	item, err := s.ItemDAO.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return response.NotFound("item not found")
	}

	if err := s.ItemDAO.SoftDelete(ctx, itemID); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *CatalogService) GetItem(ctx context.Context, itemID int64) (*types.ItemView, error) {
	item, err := s.ItemDAO.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, response.NotFound("item not found")
	}

	view := itemView(*item)
	ingredients, err := s.ItemDAO.Ingredients(ctx, itemID)
	if err != nil {
		return nil, err
	}
	for _, ingredient := range ingredients {
		view.Ingredients = append(view.Ingredients, types.IngredientView{
			IngredientID: ingredient.IngredientID,
			Name:         ingredient.Name,
		})
	}
	return &view, nil
}

// ListItems serves the unfiltered menu from redis when it can; keyword and
// category filters always hit the store. Keyword wins when both are given.
func (s *CatalogService) ListItems(ctx context.Context, keyword, category string) ([]types.ItemView, error) {
	unfiltered := keyword == "" && (category == "" || category == models.CategoryAll)
	if unfiltered {
		if cached, ok := s.Menu.Get(ctx); ok {
			return cached, nil
		}
	}

	var items []models.Item
	var err error
	if keyword != "" {
		items, err = s.ItemDAO.Search(ctx, keyword)
	} else {
		items, err = s.ItemDAO.ListByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	views := make([]types.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView(item))
	}

	if unfiltered {
		if err := s.Menu.Set(ctx, views); err != nil {
			log.L.Warn("menu cache set failed", zap.Error(err))
		}
	}
	return views, nil
}

func (s *CatalogService) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	if name == "" {
		return nil, response.InvalidRequest("ingredient name is required")
	}

	ingredient := models.Ingredient{Name: name}
	if err := s.DB.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *CatalogService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.DB.WithContext(ctx).Order("ingredient_id").Find(&ingredients).Error
	return ingredients, err
}

func (s *CatalogService) invalidateMenu(ctx context.Context) {
	if err := s.Menu.Invalidate(ctx); err != nil {
		log.L.Warn("menu cache invalidate failed", zap.Error(err))
	}
}

func itemView(item models.Item) types.ItemView {
	return types.ItemView{
		ItemID:      item.ItemID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		PictureLink: item.PictureLink,
	}
}
