package services

import (
	"boutique/internal/domain"
	"boutique/internal/repos"
	"boutique/internal/validate"
)

type ReviewService struct {
	Reviews *repos.ReviewRepo
}

func NewReviewService(reviews *repos.ReviewRepo) *ReviewService {
	return &ReviewService{Reviews: reviews}
}

// Submit records a review for (productID, userID). A user gets one review
// per product; a second submission is rejected.
func (s *ReviewService) Submit(productID, userID string, rating int, comment string) (domain.Review, error) {
	if !validate.Rating(rating) {
		return domain.Review{}, domain.ErrBadRating
	}
	rv := domain.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.Reviews.Create(&rv); err != nil {
		return domain.Review{}, err
	}
	return rv, nil
}

func (s *ReviewService) ForProduct(productID string) ([]domain.Review, error) {
	return s.Reviews.ListByProduct(productID)
}

func (s *ReviewService) Average(productID string) (float64, int, error) {
	return s.Reviews.AverageRating(productID)
}
