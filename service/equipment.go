package service

import (
	"context"
	"time"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"
	"Tably/types"
)

type EquipmentService struct {
	EquipmentDAO *dao.EquipmentDAO
}

var _ IEquipmentService = (*EquipmentService)(nil)

type IEquipmentService interface {
	AddRemark(ctx context.Context, req types.EquipmentRemarkCreate) (*models.EquipmentRemark, error)
	EditRemark(ctx context.Context, req types.EquipmentRemarkEdit) (*models.EquipmentRemark, error)
	ListRemarks(ctx context.Context, filter types.EquipmentRemarkFilter) ([]models.EquipmentRemark, error)
	DeleteRemark(ctx context.Context, remarkID int64) error
}

func (s *EquipmentService) AddRemark(ctx context.Context, req types.EquipmentRemarkCreate) (*models.EquipmentRemark, error) {
	submitDate, err := time.Parse("2006-01-02", req.SubmitDate)
	if err != nil {
		return nil, response.InvalidRequest("submit_date must be YYYY-MM-DD")
	}

	status := req.Status
	if status == "" {
		status = models.RemarkSubmitted
	}

	remark := models.EquipmentRemark{
		EquipmentName: req.EquipmentName,
		SubmitDate:    submitDate,
		Remark:        req.Remark,
		Status:        status,
	}
	if err := s.EquipmentDAO.Create(ctx, &remark); err != nil {
		return nil, err
	}
	return &remark, nil
}

func (s *EquipmentService) EditRemark(ctx context.Context, req types.EquipmentRemarkEdit) (*models.EquipmentRemark, error) {
	remark, err := s.EquipmentDAO.Get(ctx, req.RemarkID)
	if err != nil {
		return nil, err
	}
	if remark == nil {
		return nil, response.NotFound("remark not found")
	}

	updates := map[string]interface{}{}
	if req.EquipmentName != nil {
		updates["equipment_name"] = *req.EquipmentName
	}
	if req.SubmitDate != nil {
		submitDate, err := time.Parse("2006-01-02", *req.SubmitDate)
		if err != nil {
			return nil, response.InvalidRequest("submit_date must be YYYY-MM-DD")
		}
		updates["submit_date"] = submitDate
	}
	if req.Remark != nil {
		updates["remark"] = *req.Remark
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.EquipmentDAO.Update(ctx, req.RemarkID, updates); err != nil {
			return nil, err
		}
	}
	return s.EquipmentDAO.Get(ctx, req.RemarkID)
}

func (s *EquipmentService) ListRemarks(ctx context.Context, filter types.EquipmentRemarkFilter) ([]models.EquipmentRemark, error) {
	return s.EquipmentDAO.Search(ctx, filter)
}

func (s *EquipmentService) DeleteRemark(ctx context.Context, remarkID int64) error {
	remark, err := s.EquipmentDAO.Get(ctx, remarkID)
	if err != nil {
		return err
	}
	if remark == nil {
		return response.NotFound("remark not found")
	}
	return s.EquipmentDAO.Delete(ctx, remarkID)
}
