package service

import (
	"context"
	"testing"

	"Tably/config"
	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCashierService(db *gorm.DB) *CashierService {
	return &CashierService{
		Config: &config.Config{
			Billing:    &config.Billing{GovernmentTax: 0.06, ServiceTax: 0.1},
			Restaurant: &config.Restaurant{Name: "Test Kitchen"},
		},
		DB:           db,
		SessionDAO:   dao.NewSessionDAO(db),
		OrderDAO:     dao.NewOrderDAO(db),
		VoucherDAO:   dao.NewVoucherDAO(db),
		AnalyticsDAO: dao.NewAnalyticsDAO(db),
	}
}

// A session that has already been checked out must not produce a second
// analytics record; the lock-then-check inside the transaction rejects it.
func TestCheckoutAlreadyCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newCashierService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionCompleted))
	mock.ExpectRollback()

	_, err := svc.Checkout(context.Background(), "s-1", "Cash", 7)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 409, be.Code)
	assert.Equal(t, "cannot checkout a completed session", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutUnknownSession(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newCashierService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "table_id", "status"}))
	mock.ExpectRollback()

	_, err := svc.Checkout(context.Background(), "missing", "Cash", 7)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreviewCompletedSession(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newCashierService(db)

	mock.ExpectQuery("SELECT \\* FROM `table_sessions`").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionCompleted))

	_, err := svc.Preview(context.Background(), "s-1")

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 409, be.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
