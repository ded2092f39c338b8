package usecase

import (
	"context"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"

	"gorm.io/gorm"
)

// ReviewUseCase ведет отзывы и производный рейтинг курса.
// Намеренно не требует записи на курс: любой может оставить отзыв.
type ReviewUseCase struct {
	db      *gorm.DB
	courses *repository.CourseRepository
}

func NewReviewUseCase(db *gorm.DB, cr *repository.CourseRepository) *ReviewUseCase {
	return &ReviewUseCase{db: db, courses: cr}
}

// UpsertReview: повторный отзыв того же юзера перезаписывает старый
// на том же месте. Рейтинг пересчитывается по полному набору отзывов
// в той же транзакции, что и запись отзыва.
func (uc *ReviewUseCase) UpsertReview(ctx context.Context, courseID int64, reviewerID, body string, critic int) (*domain.Review, error) {
	var saved domain.Review

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		courses := uc.courses.Tx(tx)

		course, err := courses.GetByID(ctx, courseID)
		if err != nil {
			return err
		}

		slot := -1
		for i := range course.Reviews {
			if course.Reviews[i].ReviewerID == reviewerID {
				slot = i
				break
			}
		}

		if slot >= 0 {
			existing := course.Reviews[slot]
			err = tx.WithContext(ctx).Model(&domain.Review{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{"body": body, "critic": critic}).Error
			if err != nil {
				return err
			}
			course.Reviews[slot].Body = body
			course.Reviews[slot].Critic = critic
			saved = course.Reviews[slot]
		} else {
			review := domain.Review{
				CourseID:   courseID,
				ReviewerID: reviewerID,
				Body:       body,
				Critic:     critic,
			}
			if err := tx.WithContext(ctx).Create(&review).Error; err != nil {
				return err
			}
			course.Reviews = append(course.Reviews, review)
			saved = review
		}

		course.RecomputeRating()
		return courses.UpdateRating(ctx, courseID, course.Rating)
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Reviews юзера по курсу: ноль или один элемент
func (uc *ReviewUseCase) GetReview(ctx context.Context, courseID int64, reviewerID string) ([]domain.Review, error) {
	course, err := uc.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	found := make([]domain.Review, 0, 1)
	for _, r := range course.Reviews {
		if r.ReviewerID == reviewerID {
			found = append(found, r)
		}
	}
	return found, nil
}
