package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/security"

	"github.com/google/uuid"
)

type AuthUseCase struct {
	users        *repository.UserRepository
	wallets      *repository.WalletRepository
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
}

func NewAuthUseCase(
	ur *repository.UserRepository,
	wr *repository.WalletRepository,
	h *security.PasswordHasher,
	tm *security.TokenManager,
) *AuthUseCase {
	return &AuthUseCase{users: ur, wallets: wr, hasher: h, tokenManager: tm}
}

func (uc *AuthUseCase) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", domain.ErrInvalidArgument)
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Кошелек открывается сразу, чтобы было куда класть депозиты
	if _, err := uc.wallets.GetOrCreate(ctx, username); err != nil {
		return nil, err
	}
	return user, nil
}

// Login возвращает access-токен, subject которого — username
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := uc.tokenManager.Generate(user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
