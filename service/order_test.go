package service

import (
	"context"
	"testing"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"
	"Tably/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"ordered to preparing", models.OrderStatusOrdered, models.OrderStatusPreparing, false},
		{"preparing to serving", models.OrderStatusPreparing, models.OrderStatusServing, false},
		{"serving to served", models.OrderStatusServing, models.OrderStatusServed, false},
		{"skipping stages is allowed", models.OrderStatusOrdered, models.OrderStatusServed, false},
		{"no self transition", models.OrderStatusPreparing, models.OrderStatusPreparing, true},
		{"no moving backwards", models.OrderStatusServed, models.OrderStatusOrdered, true},
		{"no leaving served", models.OrderStatusServed, models.OrderStatusServing, true},
		{"unknown source status", "Cancelled", models.OrderStatusServed, true},
		{"unknown target status", models.OrderStatusOrdered, "Done", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:         db,
		SessionSvc: newSessionService(db),
		OrderDAO:   dao.NewOrderDAO(db),
		ItemDAO:    dao.NewItemDAO(db),
	}
}

func orderCreateReq() types.OrderCreate {
	return types.OrderCreate{
		SessionID: "s-1",
		Lines:     []types.OrderLineCreate{{ItemID: 5, Quantity: 2}},
	}
}

func TestOrderCreate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newOrderService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionActive))
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `items`").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "name", "price"}).
			AddRow(5, "Teh Tarik", 4.5))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	view, err := svc.Create(context.Background(), nil, orderCreateReq())
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, "Teh Tarik", view.Items[0].Name)
	assert.InDelta(t, 4.5, view.Items[0].Price, 1e-9)
	assert.InDelta(t, 9.0, view.Items[0].LineTotal, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The session is re-verified under a row lock inside the order-create
// transaction, so an order cannot commit against a session that a
// concurrent checkout has completed.
func TestOrderCreateRejectsCompletedSession(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newOrderService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionCompleted))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), nil, orderCreateReq())

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 401, be.Code)
	assert.Equal(t, "invalid table session", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A missing or retired item rejects the whole order, nothing is kept.
func TestOrderCreateUnknownItemRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newOrderService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionActive))
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `items`").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "name", "price"}))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), nil, orderCreateReq())

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
	assert.Equal(t, "item 5 is not available", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
