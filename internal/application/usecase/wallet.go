package usecase

import (
	"context"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"
)

// WalletUseCase — пополнение и чтение кошельков. Переводы между
// счетами делает только платежный движок.
type WalletUseCase struct {
	wallets *repository.WalletRepository
}

func NewWalletUseCase(wr *repository.WalletRepository) *WalletUseCase {
	return &WalletUseCase{wallets: wr}
}

func (uc *WalletUseCase) Balance(ctx context.Context, accountID string) (int64, error) {
	return uc.wallets.Balance(ctx, accountID)
}

func (uc *WalletUseCase) Deposit(ctx context.Context, accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: deposit must be positive", domain.ErrInvalidArgument)
	}
	if err := uc.wallets.Deposit(ctx, accountID, amount); err != nil {
		return 0, err
	}
	return uc.wallets.Balance(ctx, accountID)
}

func (uc *WalletUseCase) History(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	return uc.wallets.History(ctx, accountID)
}
