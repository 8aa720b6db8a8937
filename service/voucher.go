package service

import (
	"context"
	"errors"
	"time"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/log"
	"Tably/pkg/response"
	"Tably/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VoucherService struct {
	DB         *gorm.DB
	SessionSvc ISessionService
	VoucherDAO *dao.VoucherDAO
	OrderDAO   *dao.OrderDAO
}

var _ IVoucherService = (*VoucherService)(nil)

type IVoucherService interface {
	Create(ctx context.Context, req types.VoucherCreate) (*models.Voucher, error)
	Get(ctx context.Context, voucherCode string) (*types.VoucherView, error)
	Delete(ctx context.Context, voucherCode string) error
	Apply(ctx context.Context, userID *int64, req types.VoucherApply) (*models.VoucherUse, error)
}

func (s *VoucherService) Create(ctx context.Context, req types.VoucherCreate) (*models.Voucher, error) {
	existing, err := s.VoucherDAO.GetByCode(ctx, req.VoucherCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.InvalidRequest("a voucher with this voucher code already exists")
	}

	if req.RequirementTime != nil {
		if _, err := time.Parse("15:04:05", *req.RequirementTime); err != nil {
			return nil, response.InvalidRequest("requirement_time must be formatted HH:MM:SS")
		}
	}

	voucher := models.Voucher{
		VoucherID:               uuid.NewString(),
		VoucherCode:             req.VoucherCode,
		DiscountType:            req.DiscountType,
		DiscountAmount:          req.DiscountAmount,
		BeginDatetime:           req.BeginDatetime,
		ExpiryDatetime:          req.ExpiryDatetime,
		RequirementTime:         req.RequirementTime,
		RequirementMinimumSpend: req.RequirementMinimumSpend,
		RequirementMember:       req.RequirementMember,
		MaxUses:                 req.MaxUses,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&voucher).Error; err != nil {
			return err
		}
		for _, itemID := range req.RequiredItemIDs {
			requirement := models.VoucherRequirement{
				VoucherRequirementID: uuid.NewString(),
				VoucherID:            voucher.VoucherID,
				RequirementItemID:    itemID,
			}
			if err := tx.Create(&requirement).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// a create racing past the pre-check lands on the unique code index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.InvalidRequest("a voucher with this voucher code already exists")
		}
		return nil, err
	}
	return &voucher, nil
}

func (s *VoucherService) Get(ctx context.Context, voucherCode string) (*types.VoucherView, error) {
	voucher, err := s.VoucherDAO.GetByCode(ctx, voucherCode)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, response.NotFound("voucher not found")
	}

	requirements, err := s.VoucherDAO.Requirements(ctx, voucher.VoucherID)
	if err != nil {
		return nil, err
	}

	view := types.VoucherView{Voucher: *voucher}
	for _, requirement := range requirements {
		view.RequiredItemIDs = append(view.RequiredItemIDs, requirement.RequirementItemID)
	}
	return &view, nil
}

// Delete hard-deletes a voucher definition, but only while nothing
// references it: once a VoucherUse exists the voucher is history that
// billed sessions depend on.
func (s *VoucherService) Delete(ctx context.Context, voucherCode string) error {
	voucher, err := s.VoucherDAO.GetByCode(ctx, voucherCode)
	if err != nil {
		return err
	}
	if voucher == nil {
		return response.NotFound("voucher not found")
	}

	used, err := s.VoucherDAO.HasUses(ctx, voucher.VoucherID)
	if err != nil {
		return err
	}
	if used {
		return response.Conflict("voucher has recorded uses and cannot be deleted")
	}

	return s.VoucherDAO.DeleteCascade(ctx, voucher.VoucherID)
}

// Apply runs the whole validation pipeline and records the use in one
// transaction: the session is re-verified under a row lock, the per-user
// use count is read with its rows locked (so two applies cannot both pass
// the max-uses check), and the unique index on (voucher_id,
// table_session_id) backstops the "one voucher per session" rule.
func (s *VoucherService) Apply(ctx context.Context, userID *int64, req types.VoucherApply) (*models.VoucherUse, error) {
	voucher, err := s.VoucherDAO.GetByCode(ctx, req.VoucherCode)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, response.InvalidRequest("invalid voucher code")
	}

	items, err := s.OrderDAO.ItemsBySession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	requirements, err := s.VoucherDAO.Requirements(ctx, voucher.VoucherID)
	if err != nil {
		return nil, err
	}

	use := models.VoucherUse{
		VoucherUseID:   uuid.NewString(),
		VoucherID:      voucher.VoucherID,
		TableSessionID: req.SessionID,
		UserID:         userID,
		UseDatetime:    time.Now(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.SessionSvc.VerifyLocked(ctx, tx, req.SessionID); err != nil {
			return err
		}

		var priorUses int64
		if voucher.MaxUses > 0 && userID != nil {
			priorUses, err = s.VoucherDAO.CountUserUses(ctx, tx, voucher.VoucherID, *userID)
			if err != nil {
				return err
			}
		}

		if err := ValidateVoucher(voucher, requirements, items, userID, priorUses, time.Now()); err != nil {
			return err
		}

		return tx.Create(&use).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("this voucher is already applied to this session")
		}
		return nil, err
	}

	log.L.Info("voucher applied",
		zap.String("voucher_code", voucher.VoucherCode),
		zap.String("session_id", req.SessionID),
	)
	return &use, nil
}

// ValidateVoucher checks every constraint a voucher can carry, in a fixed
// order, each failure naming the violated rule. Pure over its inputs.
func ValidateVoucher(
	voucher *models.Voucher,
	requirements []models.VoucherRequirement,
	items []models.OrderItem,
	userID *int64,
	priorUses int64,
	now time.Time,
) error {
	if voucher.BeginDatetime != nil && now.Before(*voucher.BeginDatetime) {
		return response.InvalidRequest("voucher not started yet")
	}
	if voucher.ExpiryDatetime != nil && now.After(*voucher.ExpiryDatetime) {
		return response.InvalidRequest("voucher expired")
	}

	if voucher.RequirementTime != nil {
		floor, err := time.Parse("15:04:05", *voucher.RequirementTime)
		if err != nil {
			return response.Internal("voucher has a malformed requirement_time")
		}
		floorSec := floor.Hour()*3600 + floor.Minute()*60 + floor.Second()
		nowSec := now.Hour()*3600 + now.Minute()*60 + now.Second()
		if nowSec < floorSec {
			return response.InvalidRequest("voucher cannot be used at this time")
		}
	}

	if voucher.RequirementMinimumSpend != nil {
		if Subtotal(items) < *voucher.RequirementMinimumSpend {
			return response.InvalidRequest("minimum spend not met")
		}
	}

	if (voucher.RequirementMember || voucher.MaxUses != 0) && userID == nil {
		return response.InvalidRequest("voucher requires user to be logged in")
	}

	if voucher.MaxUses > 0 && priorUses >= int64(voucher.MaxUses) {
		return response.InvalidRequest("too much uses")
	}

	if len(requirements) > 0 {
		inOrder := make(map[int64]struct{}, len(items))
		for _, item := range items {
			inOrder[item.ItemID] = struct{}{}
		}
		for _, requirement := range requirements {
			if _, ok := inOrder[requirement.RequirementItemID]; !ok {
				return response.InvalidRequest("required item not in order")
			}
		}
	}

	return nil
}
