package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Tx(tx *gorm.DB) *WalletRepository {
	return &WalletRepository{db: tx}
}

func (r *WalletRepository) GetOrCreate(ctx context.Context, accountID string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).
		Where(domain.Account{AccountID: accountID}).
		FirstOrCreate(&account).Error
	return &account, err
}

func (r *WalletRepository) Balance(ctx context.Context, accountID string) (int64, error) {
	account, err := r.GetOrCreate(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Debit снимает amount со счета. Недостаток средств — отказ платежа.
func (r *WalletRepository) Debit(ctx context.Context, accountID string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative amount", domain.ErrInvalidArgument)
	}
	var account domain.Account
	err := r.db.WithContext(ctx).First(&account, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: account %s has no funds", domain.ErrInsufficientPayment, accountID)
		}
		return err
	}
	if account.Balance < amount {
		return fmt.Errorf("%w: balance %d is less than %d", domain.ErrInsufficientPayment, account.Balance, amount)
	}
	return r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("account_id = ?", accountID).
		Update("balance", gorm.Expr("balance - ?", amount)).Error
}

func (r *WalletRepository) Credit(ctx context.Context, accountID string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative amount", domain.ErrInvalidArgument)
	}
	if _, err := r.GetOrCreate(ctx, accountID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("account_id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

// Transfer — Debit + Credit + строка аудита, в рамках текущего db
// (движок зовет его внутри своей транзакции)
func (r *WalletRepository) Transfer(ctx context.Context, fromID, toID string, amount int64, memo string) error {
	if err := r.Debit(ctx, fromID, amount); err != nil {
		return err
	}
	if err := r.Credit(ctx, toID, amount); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&domain.Transfer{
		ID:     uuid.New(),
		FromID: fromID,
		ToID:   toID,
		Amount: amount,
		Memo:   memo,
	}).Error
}

// Deposit — внешнее пополнение счета (fiat-шлюз вне этой системы)
func (r *WalletRepository) Deposit(ctx context.Context, accountID string, amount int64) error {
	if err := r.Credit(ctx, accountID, amount); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&domain.Transfer{
		ID:     uuid.New(),
		FromID: "external",
		ToID:   accountID,
		Amount: amount,
		Memo:   "deposit",
	}).Error
}

func (r *WalletRepository) History(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	var transfers []domain.Transfer
	err := r.db.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", accountID, accountID).
		Order("created_at asc").
		Find(&transfers).Error
	return transfers, err
}
