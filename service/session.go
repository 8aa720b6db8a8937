package service

import (
	"context"
	"time"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"
	"Tably/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService struct {
	DB         *gorm.DB
	TableDAO   *dao.TableDAO
	SessionDAO *dao.SessionDAO
}

var _ ISessionService = (*SessionService)(nil)

type ISessionService interface {
	Open(ctx context.Context, tableID string, headCount *int) (*models.TableSession, *models.Table, error)
	Close(ctx context.Context, sessionID string) (*models.TableSession, error)
	Edit(ctx context.Context, req types.SessionEdit) (*models.TableSession, error)
	Verify(ctx context.Context, sessionID string) (*models.TableSession, error)
	VerifyLocked(ctx context.Context, tx *gorm.DB, sessionID string) (*models.TableSession, error)
}

// Open claims the table and creates the Active session in one transaction.
// The compare-and-swap on table status is what makes concurrent opens on
// the same table safe: only one caller sees the row flip.
func (s *SessionService) Open(ctx context.Context, tableID string, headCount *int) (*models.TableSession, *models.Table, error) {
	table, err := s.TableDAO.Get(ctx, tableID)
	if err != nil {
		return nil, nil, err
	}
	if table == nil {
		return nil, nil, response.NotFound("table not found")
	}

	sess := models.TableSession{
		SessionID:     uuid.NewString(),
		TableID:       tableID,
		Status:        models.SessionActive,
		StartDatetime: time.Now(),
		HeadCount:     headCount,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimed, err := s.TableDAO.ClaimAvailable(ctx, tx, tableID)
		if err != nil {
			return err
		}
		if !claimed {
			return response.Conflict("table is not available")
		}
		return tx.Create(&sess).Error
	})
	if err != nil {
		return nil, nil, err
	}

	table.Status = models.TableOccupied
	return &sess, table, nil
}

// Close completes the session and frees the table, unless an admin has
// independently marked the table Unavailable; that override survives
// checkout. Closing an already-Completed session is a Conflict so a
// double checkout surfaces instead of passing silently.
func (s *SessionService) Close(ctx context.Context, sessionID string) (*models.TableSession, error) {
	var closed *models.TableSession

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess, err := s.SessionDAO.LockForUpdate(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			return response.NotFound("table session not found")
		}
		if sess.Status == models.SessionCompleted {
			return response.Conflict("session is already completed")
		}

		if err := tx.Model(&models.TableSession{}).
			Where("session_id = ?", sessionID).
			Update("status", models.SessionCompleted).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Table{}).
			Where("table_id = ? AND status <> ?", sess.TableID, models.TableUnavailable).
			Update("status", models.TableAvailable).Error; err != nil {
			return err
		}

		sess.Status = models.SessionCompleted
		closed = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

func (s *SessionService) Edit(ctx context.Context, req types.SessionEdit) (*models.TableSession, error) {
	sess, err := s.SessionDAO.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, response.NotFound("table session not found")
	}

	updates := map[string]interface{}{}
	if req.StartDatetime != nil {
		updates["start_datetime"] = *req.StartDatetime
	}
	if req.HeadCount != nil {
		updates["head_count"] = *req.HeadCount
	}
	if len(updates) == 0 {
		return sess, nil
	}

	if err := s.DB.WithContext(ctx).Model(&models.TableSession{}).
		Where("session_id = ?", req.SessionID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.SessionDAO.Get(ctx, req.SessionID)
}

// Verify is the single chokepoint guarding every downstream mutation:
// orders and voucher uses may only attach to an existing Active session.
func (s *SessionService) Verify(ctx context.Context, sessionID string) (*models.TableSession, error) {
	if sessionID == "" {
		return nil, response.Unauthorized("invalid table session")
	}
	sess, err := s.SessionDAO.GetActive(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, response.Unauthorized("invalid table session")
	}
	return sess, nil
}

// VerifyLocked is Verify under a row lock inside tx. Mutations that must
// not commit against a session that checkout is completing take this lock,
// so they serialize behind the checkout transaction and see its outcome.
func (s *SessionService) VerifyLocked(ctx context.Context, tx *gorm.DB, sessionID string) (*models.TableSession, error) {
	if sessionID == "" {
		return nil, response.Unauthorized("invalid table session")
	}
	sess, err := s.SessionDAO.LockForUpdate(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Status != models.SessionActive {
		return nil, response.Unauthorized("invalid table session")
	}
	return sess, nil
}
