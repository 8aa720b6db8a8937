package service

import (
	"context"
	"testing"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newSessionService(db *gorm.DB) *SessionService {
	return &SessionService{
		DB:         db,
		TableDAO:   dao.NewTableDAO(db),
		SessionDAO: dao.NewSessionDAO(db),
	}
}

func tableRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"table_id", "status", "seats"}).
		AddRow("T1", status, 4)
}

func TestSessionOpen(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newSessionService(db)

	mock.ExpectQuery("SELECT \\* FROM `tables`").
		WillReturnRows(tableRows(models.TableAvailable))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tables` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `table_sessions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	sess, table, err := svc.Open(context.Background(), "T1", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, "T1", sess.TableID)
	assert.Equal(t, models.SessionActive, sess.Status)
	assert.Equal(t, models.TableOccupied, table.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// When the compare-and-swap touches no rows another caller already claimed
// the table; the whole open must roll back with a Conflict.
func TestSessionOpenLosesRace(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newSessionService(db)

	mock.ExpectQuery("SELECT \\* FROM `tables`").
		WillReturnRows(tableRows(models.TableAvailable))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tables` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, _, err := svc.Open(context.Background(), "T1", nil)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 409, be.Code)
	assert.Equal(t, "table is not available", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionOpenUnknownTable(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newSessionService(db)

	mock.ExpectQuery("SELECT \\* FROM `tables`").
		WillReturnRows(sqlmock.NewRows([]string{"table_id", "status", "seats"}))

	_, _, err := svc.Open(context.Background(), "T9", nil)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func sessionRows(sessionID, tableID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"session_id", "table_id", "status"}).
		AddRow(sessionID, tableID, status)
}

func TestSessionClose(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newSessionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionActive))
	mock.ExpectExec("UPDATE `table_sessions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `tables` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sess, err := svc.Close(context.Background(), "s-1")
	require.NoError(t, err)

	assert.Equal(t, models.SessionCompleted, sess.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionCloseAlreadyCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newSessionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `table_sessions` .* FOR UPDATE").
		WillReturnRows(sessionRows("s-1", "T1", models.SessionCompleted))
	mock.ExpectRollback()

	_, err := svc.Close(context.Background(), "s-1")

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 409, be.Code)
	assert.Equal(t, "session is already completed", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionVerifyRejectsCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newSessionService(db)

	// GetActive filters on status, so a completed session comes back empty
	mock.ExpectQuery("SELECT \\* FROM `table_sessions`").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "table_id", "status"}))

	_, err := svc.Verify(context.Background(), "s-done")

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 401, be.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
