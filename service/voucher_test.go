package service

import (
	"context"
	"testing"
	"time"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"
	"Tably/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string        { return &s }
func f64Ptr(f float64) *float64      { return &f }
func i64Ptr(i int64) *int64          { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func TestValidateVoucher(t *testing.T) {
	now := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)
	member := i64Ptr(42)

	items := []models.OrderItem{
		{ItemID: 1, Price: 30, Quantity: 2}, // 60
		{ItemID: 2, Price: 10, Quantity: 1}, // 10
	}

	tests := []struct {
		name         string
		voucher      models.Voucher
		requirements []models.VoucherRequirement
		items        []models.OrderItem
		userID       *int64
		priorUses    int64
		wantErr      string
	}{
		{
			name:    "unconstrained voucher passes for guests",
			voucher: models.Voucher{DiscountType: models.DiscountPercentage, DiscountAmount: 10},
			items:   items,
		},
		{
			name: "not started yet",
			voucher: models.Voucher{
				BeginDatetime: timePtr(now.Add(time.Hour)),
			},
			items:   items,
			wantErr: "voucher not started yet",
		},
		{
			name: "expired",
			voucher: models.Voucher{
				ExpiryDatetime: timePtr(now.Add(-time.Hour)),
			},
			items:   items,
			wantErr: "voucher expired",
		},
		{
			name: "inside validity window",
			voucher: models.Voucher{
				BeginDatetime:  timePtr(now.Add(-time.Hour)),
				ExpiryDatetime: timePtr(now.Add(time.Hour)),
			},
			items: items,
		},
		{
			name: "before time-of-day floor",
			voucher: models.Voucher{
				RequirementTime: strPtr("18:00:00"),
			},
			items:   items,
			wantErr: "voucher cannot be used at this time",
		},
		{
			name: "after time-of-day floor",
			voucher: models.Voucher{
				RequirementTime: strPtr("12:00:00"),
			},
			items: items,
		},
		{
			name: "minimum spend not met",
			voucher: models.Voucher{
				RequirementMinimumSpend: f64Ptr(100),
			},
			items:   items,
			wantErr: "minimum spend not met",
		},
		{
			name: "minimum spend met exactly",
			voucher: models.Voucher{
				RequirementMinimumSpend: f64Ptr(70),
			},
			items: items,
		},
		{
			name: "member-only voucher rejects guests",
			voucher: models.Voucher{
				RequirementMember: true,
			},
			items:   items,
			wantErr: "voucher requires user to be logged in",
		},
		{
			name: "capped voucher rejects guests",
			voucher: models.Voucher{
				MaxUses: 3,
			},
			items:   items,
			wantErr: "voucher requires user to be logged in",
		},
		{
			name: "member under the usage cap",
			voucher: models.Voucher{
				MaxUses: 3,
			},
			items:     items,
			userID:    member,
			priorUses: 2,
		},
		{
			name: "member at the usage cap",
			voucher: models.Voucher{
				MaxUses: 3,
			},
			items:     items,
			userID:    member,
			priorUses: 3,
			wantErr:   "too much uses",
		},
		{
			name:    "required item missing from order",
			voucher: models.Voucher{},
			requirements: []models.VoucherRequirement{
				{RequirementItemID: 99},
			},
			items:   items,
			wantErr: "required item not in order",
		},
		{
			name:    "all required items present",
			voucher: models.Voucher{},
			requirements: []models.VoucherRequirement{
				{RequirementItemID: 1},
				{RequirementItemID: 2},
			},
			items: items,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoucher(&tt.voucher, tt.requirements, tt.items, tt.userID, tt.priorUses, now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func newVoucherService(db *gorm.DB) *VoucherService {
	return &VoucherService{
		DB:         db,
		SessionSvc: newSessionService(db),
		VoucherDAO: dao.NewVoucherDAO(db),
		OrderDAO:   dao.NewOrderDAO(db),
	}
}

func voucherRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"voucher_id", "voucher_code", "discount_type", "discount_amount", "requirement_member", "max_uses"}).
		AddRow("v-1", "TENOFF", models.DiscountPercentage, 10, false, 0)
}

// Two applies racing on the same session: the loser's insert lands on the
// unique (voucher_id, table_session_id) index and must surface as a
// Conflict, not a storage error.
func TestVoucherApplyDuplicateSession(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newVoucherService(db)

	mock.ExpectQuery("SELECT \\* FROM `vouchers`").
		WillReturnRows(voucherRows())
	mock.ExpectQuery("SELECT .* FROM `order_items`").
		WillReturnRows(sqlmock.NewRows([]string{"order_item_id", "item_id", "quantity", "price"}).
			AddRow(1, 5, 2, 4.5))
	mock.ExpectQuery("SELECT \\* FROM `voucher_requirements`").
		WillReturnRows(sqlmock.NewRows([]string{"voucher_requirement_id", "voucher_id", "requirement_item_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionActive))
	mock.ExpectExec("INSERT INTO `voucher_uses`").
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	_, err := svc.Apply(context.Background(), nil, types.VoucherApply{
		SessionID:   "s-1",
		VoucherCode: "TENOFF",
	})

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 409, be.Code)
	assert.Equal(t, "this voucher is already applied to this session", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Applying to a session that checkout completed mid-flight fails inside
// the transaction, before anything is written.
func TestVoucherApplyCompletedSession(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newVoucherService(db)

	mock.ExpectQuery("SELECT \\* FROM `vouchers`").
		WillReturnRows(voucherRows())
	mock.ExpectQuery("SELECT .* FROM `order_items`").
		WillReturnRows(sqlmock.NewRows([]string{"order_item_id", "item_id", "quantity", "price"}))
	mock.ExpectQuery("SELECT \\* FROM `voucher_requirements`").
		WillReturnRows(sqlmock.NewRows([]string{"voucher_requirement_id", "voucher_id", "requirement_item_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionCompleted))
	mock.ExpectRollback()

	_, err := svc.Apply(context.Background(), nil, types.VoucherApply{
		SessionID:   "s-1",
		VoucherCode: "TENOFF",
	})

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 401, be.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A create racing past the duplicate-code pre-check hits the unique code
// index; the caller sees the same InvalidRequest as the pre-check path.
func TestVoucherCreateDuplicateCodeRace(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newVoucherService(db)

	mock.ExpectQuery("SELECT \\* FROM `vouchers`").
		WillReturnRows(sqlmock.NewRows([]string{"voucher_id", "voucher_code"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vouchers`").
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), types.VoucherCreate{
		VoucherCode:    "TENOFF",
		DiscountType:   models.DiscountPercentage,
		DiscountAmount: 10,
	})

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
	assert.Equal(t, "a voucher with this voucher code already exists", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
