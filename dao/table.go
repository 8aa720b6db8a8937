package dao

import (
	"context"

	"Tably/models"

	"gorm.io/gorm"
)

type TableDAO struct {
	Repo[models.Table]
}

func NewTableDAO(db *gorm.DB) *TableDAO {
	return &TableDAO{Repo: NewRepo[models.Table](db)}
}

func (d *TableDAO) Get(ctx context.Context, tableID string) (*models.Table, error) {
	return d.FindOne(ctx, "table_id = ?", tableID)
}

func (d *TableDAO) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := d.Db.WithContext(ctx).Order("table_id").Find(&tables).Error
	return tables, err
}

func (d *TableDAO) Delete(ctx context.Context, tableID string) error {
	return d.Db.WithContext(ctx).Where("table_id = ?", tableID).Delete(&models.Table{}).Error
}

// ClaimAvailable flips an Available table to Occupied as one compare-and-
// swap. Returns true only when this caller won the row; two concurrent
// opens cannot both see rows_affected = 1.
func (d *TableDAO) ClaimAvailable(ctx context.Context, tx *gorm.DB, tableID string) (bool, error) {
	res := tx.WithContext(ctx).Model(&models.Table{}).
		Where("table_id = ? AND status = ?", tableID, models.TableAvailable).
		Update("status", models.TableOccupied)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// HasActiveSession reports whether any Active session references the table.
func (d *TableDAO) HasActiveSession(ctx context.Context, tableID string) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.TableSession{}).
		Where("table_id = ? AND status = ?", tableID, models.SessionActive).
		Count(&count).Error
	return count > 0, err
}
