package service

import (
	"context"
	"time"

	"Tably/dao"
	"Tably/models"
	"Tably/pkg/response"
	"Tably/types"
)

type FeedbackService struct {
	ReviewDAO *dao.ReviewDAO
	ItemDAO   *dao.ItemDAO
}

var _ IFeedbackService = (*FeedbackService)(nil)

type IFeedbackService interface {
	AddReview(ctx context.Context, userID int64, req types.ReviewCreate) (*models.Review, error)
	EditReview(ctx context.Context, userID int64, role string, req types.ReviewEdit) (*models.Review, error)
	ListReviews(ctx context.Context, userID int64, role string, itemID *int64) ([]models.Review, error)
	DeleteReview(ctx context.Context, userID int64, role string, reviewID int64) error
}

// CanModifyReview is the ownership gate: a review belongs to its author,
// managers can moderate any review.
func CanModifyReview(review *models.Review, userID int64, role string) bool {
	return role == "Manager" || review.UserID == userID
}

// AddReview records the caller's rating; the author and timestamp come
// from the request context, never from the payload.
func (s *FeedbackService) AddReview(ctx context.Context, userID int64, req types.ReviewCreate) (*models.Review, error) {
	item, err := s.ItemDAO.GetUnscoped(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, response.NotFound("item not found")
	}

	review := models.Review{
		UserID:         userID,
		ItemID:         req.ItemID,
		Remark:         req.Remark,
		Value:          req.Value,
		ReviewDatetime: time.Now(),
	}
	if err := s.ReviewDAO.Create(ctx, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *FeedbackService) EditReview(ctx context.Context, userID int64, role string, req types.ReviewEdit) (*models.Review, error) {
	review, err := s.ReviewDAO.Get(ctx, req.ReviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, response.NotFound("review not found")
	}
	if !CanModifyReview(review, userID, role) {
		return nil, response.Forbidden("you cannot edit this review")
	}

	updates := map[string]interface{}{}
	if req.Remark != nil {
		updates["remark"] = *req.Remark
	}
	if req.Value != nil {
		updates["value"] = *req.Value
	}

	if len(updates) > 0 {
		if err := s.ReviewDAO.Update(ctx, req.ReviewID, updates); err != nil {
			return nil, err
		}
	}
	return s.ReviewDAO.Get(ctx, req.ReviewID)
}

// ListReviews shows managers the full log; everyone else sees only what
// they wrote.
func (s *FeedbackService) ListReviews(ctx context.Context, userID int64, role string, itemID *int64) ([]models.Review, error) {
	var author *int64
	if role != "Manager" {
		author = &userID
	}
	return s.ReviewDAO.Search(ctx, author, itemID)
}

func (s *FeedbackService) DeleteReview(ctx context.Context, userID int64, role string, reviewID int64) error {
	review, err := s.ReviewDAO.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return response.NotFound("review not found")
	}
	if !CanModifyReview(review, userID, role) {
		return response.Forbidden("you cannot delete this review")
	}
	return s.ReviewDAO.Delete(ctx, reviewID)
}
