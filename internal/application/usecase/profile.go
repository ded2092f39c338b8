package usecase

import (
	"context"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"
)

// ProfileUseCase — чтение профилей и купленных курсов
type ProfileUseCase struct {
	profiles *repository.ProfileRepository
	courses  *repository.CourseRepository
}

func NewProfileUseCase(pr *repository.ProfileRepository, cr *repository.CourseRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: pr, courses: cr}
}

// ListProfiles: userID == "" вернет все профили
func (uc *ProfileUseCase) ListProfiles(ctx context.Context, userID string) ([]domain.Profile, error) {
	return uc.profiles.List(ctx, userID)
}

func (uc *ProfileUseCase) Purchases(ctx context.Context, userID string) ([]domain.PurchasedCourse, error) {
	profile, err := uc.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.PurchasedCourses, nil
}

// PurchasedCourses — полные объекты курсов по записям профиля
func (uc *ProfileUseCase) PurchasedCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	profile, err := uc.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses := make([]domain.Course, 0, len(profile.PurchasedCourses))
	for _, p := range profile.PurchasedCourses {
		course, err := uc.courses.GetByID(ctx, p.CourseID)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

// PurchasedCourseDetail отдает полный курс (с телами уроков) только
// владельцу записи о покупке
func (uc *ProfileUseCase) PurchasedCourseDetail(ctx context.Context, userID string, courseID int64) (*domain.Course, error) {
	profile, err := uc.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := false
	for _, p := range profile.PurchasedCourses {
		if p.CourseID == courseID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, fmt.Errorf("%w: course is not purchased by %s", domain.ErrPermissionDenied, userID)
	}
	return uc.courses.GetByID(ctx, courseID)
}

func (uc *ProfileUseCase) CertificationStatus(ctx context.Context, userID string, courseID int64) (*domain.PurchasedCourse, error) {
	if _, err := uc.profiles.Get(ctx, userID); err != nil {
		return nil, err
	}
	return uc.profiles.GetPurchase(ctx, userID, courseID)
}
