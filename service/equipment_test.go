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

func newEquipmentService(db *gorm.DB) *EquipmentService {
	return &EquipmentService{EquipmentDAO: dao.NewEquipmentDAO(db)}
}

func TestEquipmentAddRemark(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newEquipmentService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `equipment_remarks`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	remark, err := svc.AddRemark(context.Background(), types.EquipmentRemarkCreate{
		EquipmentName: "Oven 2",
		SubmitDate:    "2024-05-20",
		Remark:        "door hinge loose",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RemarkSubmitted, remark.Status)
	assert.Equal(t, "Oven 2", remark.EquipmentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentAddRemarkBadDate(t *testing.T) {
	db, _ := newMockDB(t)
	svc := newEquipmentService(db)

	_, err := svc.AddRemark(context.Background(), types.EquipmentRemarkCreate{
		EquipmentName: "Oven 2",
		SubmitDate:    "20/05/2024",
		Remark:        "door hinge loose",
	})

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestEquipmentEditRemarkNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newEquipmentService(db)

	mock.ExpectQuery("SELECT \\* FROM `equipment_remarks`").
		WillReturnRows(sqlmock.NewRows([]string{"remark_id", "equipment_name", "remark", "status"}))

	completed := models.RemarkCompleted
	_, err := svc.EditRemark(context.Background(), types.EquipmentRemarkEdit{
		RemarkID: 7,
		Status:   &completed,
	})

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
	assert.Equal(t, "remark not found", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
