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

func newFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{
		ReviewDAO: dao.NewReviewDAO(db),
		ItemDAO:   dao.NewItemDAO(db),
	}
}

func TestCanModifyReview(t *testing.T) {
	review := &models.Review{ReviewID: 1, UserID: 42}

	tests := []struct {
		name   string
		userID int64
		role   string
		want   bool
	}{
		{"author edits own review", 42, "Customer", true},
		{"manager moderates any review", 7, "Manager", true},
		{"other customer is rejected", 7, "Customer", false},
		{"staff without manager role is rejected", 7, "Chef", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyReview(review, tt.userID, tt.role))
		})
	}
}

func TestFeedbackAddReviewUnknownItem(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newFeedbackService(db)

	mock.ExpectQuery("SELECT \\* FROM `items`").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "name", "price"}))

	_, err := svc.AddReview(context.Background(), 42, types.ReviewCreate{
		ItemID: 5,
		Remark: "too salty",
		Value:  2,
	})

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
	assert.Equal(t, "item not found", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Customers only ever see their own reviews; the author filter is applied
// server-side, not trusted from the request.
func TestFeedbackListScopedToAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newFeedbackService(db)

	mock.ExpectQuery("SELECT \\* FROM `reviews` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "user_id", "item_id", "value"}).
			AddRow(1, 42, 5, 4))

	reviews, err := svc.ListReviews(context.Background(), 42, "Customer", nil)
	require.NoError(t, err)

	require.Len(t, reviews, 1)
	assert.Equal(t, int64(42), reviews[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackListManagerSeesAll(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newFeedbackService(db)

	mock.ExpectQuery("SELECT \\* FROM `reviews` ORDER BY review_id").
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "user_id", "item_id", "value"}).
			AddRow(1, 42, 5, 4).
			AddRow(2, 7, 5, 5))

	reviews, err := svc.ListReviews(context.Background(), 1, "Manager", nil)
	require.NoError(t, err)

	assert.Len(t, reviews, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackEditForeignReview(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newFeedbackService(db)

	mock.ExpectQuery("SELECT \\* FROM `reviews`").
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "user_id", "item_id", "value"}).
			AddRow(1, 7, 5, 4))

	_, err := svc.EditReview(context.Background(), 42, "Customer", types.ReviewEdit{
		ReviewID: 1,
		Remark:   strPtr("actually fine"),
	})

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)
	assert.Equal(t, "you cannot edit this review", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackDeleteForeignReview(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newFeedbackService(db)

	mock.ExpectQuery("SELECT \\* FROM `reviews`").
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "user_id", "item_id", "value"}).
			AddRow(1, 7, 5, 4))

	err := svc.DeleteReview(context.Background(), 42, "Customer", 1)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)
	assert.Equal(t, "you cannot delete this review", be.Msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
