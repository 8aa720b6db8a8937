package dao

import (
	"context"

	"Tably/models"
	"Tably/types"

	"gorm.io/gorm"
)

type EquipmentDAO struct {
	Repo[models.EquipmentRemark]
}

func NewEquipmentDAO(db *gorm.DB) *EquipmentDAO {
	return &EquipmentDAO{Repo: NewRepo[models.EquipmentRemark](db)}
}

func (d *EquipmentDAO) Get(ctx context.Context, remarkID int64) (*models.EquipmentRemark, error) {
	return d.FindOne(ctx, "remark_id = ?", remarkID)
}

func (d *EquipmentDAO) Search(ctx context.Context, filter types.EquipmentRemarkFilter) ([]models.EquipmentRemark, error) {
	query := d.Db.WithContext(ctx).Model(&models.EquipmentRemark{})
	if filter.EquipmentName != "" {
		query = query.Where("equipment_name = ?", filter.EquipmentName)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SubmitDate != nil {
		query = query.Where("submit_date = ?", filter.SubmitDate.Format("2006-01-02"))
	}
	var remarks []models.EquipmentRemark
	err := query.Order("remark_id").Find(&remarks).Error
	return remarks, err
}

func (d *EquipmentDAO) Update(ctx context.Context, remarkID int64, updates map[string]interface{}) error {
	return d.Db.WithContext(ctx).Model(&models.EquipmentRemark{}).
		Where("remark_id = ?", remarkID).
		Updates(updates).Error
}

func (d *EquipmentDAO) Delete(ctx context.Context, remarkID int64) error {
	return d.Db.WithContext(ctx).
		Where("remark_id = ?", remarkID).
		Delete(&models.EquipmentRemark{}).Error
}
