package dao

import (
	"context"

	"Tably/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionDAO struct {
	Repo[models.TableSession]
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{Repo: NewRepo[models.TableSession](db)}
}

func (d *SessionDAO) Get(ctx context.Context, sessionID string) (*models.TableSession, error) {
	return d.FindOne(ctx, "session_id = ?", sessionID)
}

// GetActive returns the session only when it exists and is Active, the
// guard every order/voucher mutation path runs first.
func (d *SessionDAO) GetActive(ctx context.Context, sessionID string) (*models.TableSession, error) {
	return d.FindOne(ctx, "session_id = ? AND status = ?", sessionID, models.SessionActive)
}

// LockForUpdate loads the session under a row lock inside tx, so checkout
// and close cannot interleave on the same session.
func (d *SessionDAO) LockForUpdate(ctx context.Context, tx *gorm.DB, sessionID string) (*models.TableSession, error) {
	var sess models.TableSession
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ?", sessionID).
		First(&sess).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sess, nil
}
