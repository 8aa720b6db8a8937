package dao

import (
	"context"

	"Tably/models"

	"gorm.io/gorm"
)

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

func (d *ReviewDAO) Get(ctx context.Context, reviewID int64) (*models.Review, error) {
	return d.FindOne(ctx, "review_id = ?", reviewID)
}

// Search lists reviews, optionally narrowed to one author or one item.
func (d *ReviewDAO) Search(ctx context.Context, userID, itemID *int64) ([]models.Review, error) {
	query := d.Db.WithContext(ctx).Model(&models.Review{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if itemID != nil {
		query = query.Where("item_id = ?", *itemID)
	}
	var reviews []models.Review
	err := query.Order("review_id").Find(&reviews).Error
	return reviews, err
}

func (d *ReviewDAO) Update(ctx context.Context, reviewID int64, updates map[string]interface{}) error {
	return d.Db.WithContext(ctx).Model(&models.Review{}).
		Where("review_id = ?", reviewID).
		Updates(updates).Error
}

func (d *ReviewDAO) Delete(ctx context.Context, reviewID int64) error {
	return d.Db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Delete(&models.Review{}).Error
}
