package dao

import (
	"context"

	"Tably/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoucherDAO struct {
	Repo[models.Voucher]
}

func NewVoucherDAO(db *gorm.DB) *VoucherDAO {
	return &VoucherDAO{Repo: NewRepo[models.Voucher](db)}
}

func (d *VoucherDAO) GetByCode(ctx context.Context, code string) (*models.Voucher, error) {
	return d.FindOne(ctx, "voucher_code = ?", code)
}

func (d *VoucherDAO) GetByID(ctx context.Context, voucherID string) (*models.Voucher, error) {
	return d.FindOne(ctx, "voucher_id = ?", voucherID)
}

func (d *VoucherDAO) Requirements(ctx context.Context, voucherID string) ([]models.VoucherRequirement, error) {
	var reqs []models.VoucherRequirement
	err := d.Db.WithContext(ctx).Where("voucher_id = ?", voucherID).Find(&reqs).Error
	return reqs, err
}

// CountUserUses counts prior applications of a voucher by one user, for
// the max-uses-per-user constraint. Runs inside tx with the matching use
// rows locked, so two concurrent applies cannot both read a count under
// the cap and both insert.
func (d *VoucherDAO) CountUserUses(ctx context.Context, tx *gorm.DB, voucherID string, userID int64) (int64, error) {
	var uses []models.VoucherUse
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("voucher_id = ? AND user_id = ?", voucherID, userID).
		Find(&uses).Error
	return int64(len(uses)), err
}

func (d *VoucherDAO) UsesBySession(ctx context.Context, sessionID string) ([]models.VoucherUse, error) {
	var uses []models.VoucherUse
	err := d.Db.WithContext(ctx).Where("table_session_id = ?", sessionID).Find(&uses).Error
	return uses, err
}

func (d *VoucherDAO) HasUses(ctx context.Context, voucherID string) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.VoucherUse{}).
		Where("voucher_id = ?", voucherID).
		Count(&count).Error
	return count > 0, err
}

// DeleteCascade removes a voucher with its requirements. Uses are never
// deleted here; delete is rejected upstream once the voucher has history.
func (d *VoucherDAO) DeleteCascade(ctx context.Context, voucherID string) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("voucher_id = ?", voucherID).Delete(&models.VoucherRequirement{}).Error; err != nil {
			return err
		}
		return tx.Where("voucher_id = ?", voucherID).Delete(&models.Voucher{}).Error
	})
}
