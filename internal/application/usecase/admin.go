package usecase

import (
	"context"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"
)

// AdminUseCase — список администраторов и привилегированный CRUD
// категорий. Любая мутация сперва проверяет права вызывающего.
type AdminUseCase struct {
	admins     *repository.AdminRepository
	categories *repository.CategoryRepository
}

func NewAdminUseCase(ar *repository.AdminRepository, cr *repository.CategoryRepository) *AdminUseCase {
	return &AdminUseCase{admins: ar, categories: cr}
}

func (uc *AdminUseCase) RequireAdmin(ctx context.Context, callerID string) error {
	isAdmin, err := uc.admins.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return fmt.Errorf("%w: only administrators can perform this action", domain.ErrPermissionDenied)
	}
	return nil
}

func (uc *AdminUseCase) AddAdmin(ctx context.Context, callerID, targetID string) error {
	if err := uc.RequireAdmin(ctx, callerID); err != nil {
		return err
	}
	return uc.admins.Add(ctx, &domain.Administrator{AccountID: targetID, AddedBy: callerID})
}

// RemoveAdmin: админ может удалить и самого себя — ограничения нет
func (uc *AdminUseCase) RemoveAdmin(ctx context.Context, callerID, targetID string) error {
	if err := uc.RequireAdmin(ctx, callerID); err != nil {
		return err
	}
	return uc.admins.Remove(ctx, targetID)
}

func (uc *AdminUseCase) ListAdmins(ctx context.Context) ([]domain.Administrator, error) {
	return uc.admins.List(ctx)
}

func (uc *AdminUseCase) CreateCategory(ctx context.Context, callerID, name, imageURL string) (*domain.Category, error) {
	if err := uc.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	category := &domain.Category{Name: name, ImageURL: imageURL}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *AdminUseCase) UpdateCategory(ctx context.Context, callerID string, id int64, name, imageURL string) (*domain.Category, error) {
	if err := uc.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	if err := uc.categories.Update(ctx, &domain.Category{ID: id, Name: name, ImageURL: imageURL}); err != nil {
		return nil, err
	}
	return uc.categories.GetByID(ctx, id)
}

func (uc *AdminUseCase) DeleteCategory(ctx context.Context, callerID string, id int64) error {
	if err := uc.RequireAdmin(ctx, callerID); err != nil {
		return err
	}
	return uc.categories.Delete(ctx, id)
}

// Categories — публичное чтение; id == 0 вернет все
func (uc *AdminUseCase) Categories(ctx context.Context, id int64) ([]domain.Category, error) {
	return uc.categories.List(ctx, id)
}
