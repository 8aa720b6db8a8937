package service

import (
	"context"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"
	"Tably/types"

	"gorm.io/gorm"
)

type TableService struct {
	DB       *gorm.DB
	TableDAO *dao.TableDAO
}

var _ ITableService = (*TableService)(nil)

type ITableService interface {
	Add(ctx context.Context, req types.TableCreate) (*models.Table, error)
	BulkAdd(ctx context.Context, req types.TableBulkCreate) ([]models.Table, error)
	Edit(ctx context.Context, req types.TableEdit) (*models.Table, error)
	Delete(ctx context.Context, tableID string) error
	IsAvailable(ctx context.Context, tableID string) (*models.Table, bool, error)
	List(ctx context.Context) ([]models.Table, error)
}

func (s *TableService) Add(ctx context.Context, req types.TableCreate) (*models.Table, error) {
	existing, err := s.TableDAO.Get(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.InvalidRequest("this table id already exists")
	}

	status := req.Status
	if status == "" {
		status = models.TableAvailable
	}

	table := models.Table{
		TableID: req.TableID,
		Status:  status,
		Seats:   req.Seats,
	}
	if err := s.TableDAO.Create(ctx, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// BulkAdd inserts the batch in one transaction, skipping ids that already
// exist rather than failing the batch.
func (s *TableService) BulkAdd(ctx context.Context, req types.TableBulkCreate) ([]models.Table, error) {
	var created []models.Table

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range req.Tables {
			var count int64
			if err := tx.Model(&models.Table{}).
				Where("table_id = ?", t.TableID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			status := t.Status
			if status == "" {
				status = models.TableAvailable
			}
			table := models.Table{TableID: t.TableID, Status: status, Seats: t.Seats}
			if err := tx.Create(&table).Error; err != nil {
				return err
			}
			created = append(created, table)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Edit rejects status changes while an Active session references the
// table; freeing or blocking a table mid-bill would orphan the session.
// Seats can always be edited. Occupied is never set by hand; the session
// manager owns that transition.
func (s *TableService) Edit(ctx context.Context, req types.TableEdit) (*models.Table, error) {
	table, err := s.TableDAO.Get(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, response.NotFound("table not found")
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		active, err := s.TableDAO.HasActiveSession(ctx, req.TableID)
		if err != nil {
			return nil, err
		}
		if active {
			return nil, response.Conflict("this table has active sessions, check out before changing status")
		}
		updates["status"] = *req.Status
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if len(updates) == 0 {
		return table, nil
	}

	if err := s.DB.WithContext(ctx).Model(&models.Table{}).
		Where("table_id = ?", req.TableID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.TableDAO.Get(ctx, req.TableID)
}

func (s *TableService) Delete(ctx context.Context, tableID string) error {
	table, err := s.TableDAO.Get(ctx, tableID)
	if err != nil {
		return err
	}
	if table == nil {
		return response.NotFound("table not found")
	}

	active, err := s.TableDAO.HasActiveSession(ctx, tableID)
	if err != nil {
		return err
	}
	if active {
		return response.Conflict("this table has active sessions, check out before deleting")
	}

	return s.TableDAO.Delete(ctx, tableID)
}

func (s *TableService) IsAvailable(ctx context.Context, tableID string) (*models.Table, bool, error) {
	table, err := s.TableDAO.Get(ctx, tableID)
	if err != nil {
		return nil, false, err
	}
	if table == nil {
		return nil, false, response.NotFound("table not found")
	}
	return table, table.Status == models.TableAvailable, nil
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	return s.TableDAO.List(ctx)
}
