package usecase

import (
	"context"
	"fmt"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"

	"gorm.io/gorm"
)

// Комиссия платформы в базисных пунктах: 500 = 5.00%
const (
	VaultFeeBasisPoints = 500
	feeDenominator      = 10_000

	// Остаток меньше этого не возвращаем покупателю
	refundDustThreshold = 1
)

// EnrollmentUseCase — платежный движок: покупка курса, покупка
// сертификации, админский сброс флага. Каждая операция — одна
// транзакция: любой несработавший инвариант откатывает и переводы,
// и записи каталога/профиля целиком.
type EnrollmentUseCase struct {
	db       *gorm.DB
	courses  *repository.CourseRepository
	profiles *repository.ProfileRepository
	wallets  *repository.WalletRepository
	admins   *repository.AdminRepository

	vaultID         string
	storageByteCost int64
}

func NewEnrollmentUseCase(
	db *gorm.DB,
	cr *repository.CourseRepository,
	pr *repository.ProfileRepository,
	wr *repository.WalletRepository,
	ar *repository.AdminRepository,
	vaultID string,
	storageByteCost int64,
) *EnrollmentUseCase {
	return &EnrollmentUseCase{
		db:              db,
		courses:         cr,
		profiles:        pr,
		wallets:         wr,
		admins:          ar,
		vaultID:         vaultID,
		storageByteCost: storageByteCost,
	}
}

// SplitPrice делит цену на долю автора и комиссию хранилища платформы.
// Целочисленное деление: vaultFee + creatorShare == price всегда.
func SplitPrice(price int64) (creatorShare, vaultFee int64) {
	vaultFee = price * VaultFeeBasisPoints / feeDenominator
	creatorShare = price - vaultFee
	return creatorShare, vaultFee
}

func (uc *EnrollmentUseCase) BuyCourse(ctx context.Context, buyerID string, courseID int64, attached int64) (*domain.Course, error) {
	var out *domain.Course

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		courses := uc.courses.Tx(tx)
		profiles := uc.profiles.Tx(tx)
		wallets := uc.wallets.Tx(tx)

		course, err := courses.GetByID(ctx, courseID)
		if err != nil {
			return err
		}
		if course.IsInscribed(buyerID) {
			return fmt.Errorf("%w: user already enrolled in the course", domain.ErrConflict)
		}
		if attached < course.Price {
			return fmt.Errorf("%w: attached value is less than price %d", domain.ErrInsufficientPayment, course.Price)
		}

		// Приложенная сумма должна реально лежать на кошельке
		balance, err := wallets.Balance(ctx, buyerID)
		if err != nil {
			return err
		}
		if balance < attached {
			return fmt.Errorf("%w: balance %d cannot attach %d", domain.ErrInsufficientPayment, balance, attached)
		}

		creatorShare, vaultFee := SplitPrice(course.Price)
		if err := wallets.Transfer(ctx, buyerID, course.CreatorID, creatorShare, "course purchase"); err != nil {
			return err
		}
		if vaultFee != 0 {
			if err := wallets.Transfer(ctx, buyerID, uc.vaultID, vaultFee, "vault fee"); err != nil {
				return err
			}
		}

		// Оплата стораджа: новая запись в inscriptions, запись о покупке
		// и, возможно, новый профиль
		hasProfile, err := profiles.Exists(ctx, buyerID)
		if err != nil {
			return err
		}
		inscription := domain.Inscription{CourseID: courseID, UserID: buyerID}
		purchase := domain.PurchasedCourse{UserID: buyerID, CourseID: courseID, PassCertification: false}

		grown := inscription.StorageBytes() + purchase.StorageBytes()
		if !hasProfile {
			grown += domain.ProfileHeaderStorageBytes(buyerID)
		}
		if err := uc.settleStorage(ctx, wallets, buyerID, attached-course.Price, grown); err != nil {
			return err
		}

		if err := courses.AddInscription(ctx, &inscription); err != nil {
			return err
		}
		if !hasProfile {
			if err := profiles.Create(ctx, &domain.Profile{UserID: buyerID}); err != nil {
				return err
			}
		}
		if err := profiles.AppendPurchase(ctx, &purchase); err != nil {
			return err
		}

		out, err = courses.GetByID(ctx, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *EnrollmentUseCase) BuyCertification(ctx context.Context, buyerID string, courseID int64, attached int64) (*domain.PurchasedCourse, error) {
	var out *domain.PurchasedCourse

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		courses := uc.courses.Tx(tx)
		profiles := uc.profiles.Tx(tx)
		wallets := uc.wallets.Tx(tx)

		course, err := courses.GetByID(ctx, courseID)
		if err != nil {
			return err
		}
		// Проверяется наличие профиля и записи о покупке, а НЕ
		// inscriptions курса — две независимые проверки, как в
		// исходном поведении.
		if _, err := profiles.Get(ctx, buyerID); err != nil {
			return err
		}
		if attached < course.CertificationPrice {
			return fmt.Errorf("%w: attached value is less than price %d", domain.ErrInsufficientPayment, course.CertificationPrice)
		}

		balance, err := wallets.Balance(ctx, buyerID)
		if err != nil {
			return err
		}
		if balance < attached {
			return fmt.Errorf("%w: balance %d cannot attach %d", domain.ErrInsufficientPayment, balance, attached)
		}

		creatorShare, vaultFee := SplitPrice(course.CertificationPrice)
		if err := wallets.Transfer(ctx, buyerID, course.CreatorID, creatorShare, "certification purchase"); err != nil {
			return err
		}
		if vaultFee != 0 {
			if err := wallets.Transfer(ctx, buyerID, uc.vaultID, vaultFee, "vault fee"); err != nil {
				return err
			}
		}

		// Флаг уже лежит в записи о покупке: роста состояния нет
		if err := uc.settleStorage(ctx, wallets, buyerID, attached-course.CertificationPrice, 0); err != nil {
			return err
		}

		purchase, err := profiles.GetPurchase(ctx, buyerID, courseID)
		if err != nil {
			return err
		}
		if err := profiles.SetCertification(ctx, purchase.ID, true); err != nil {
			return err
		}
		purchase.PassCertification = true
		out = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResetCertification — админский откат флага сертификации
func (uc *EnrollmentUseCase) ResetCertification(ctx context.Context, adminID, userID string, courseID int64) (*domain.PurchasedCourse, error) {
	isAdmin, err := uc.admins.IsAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, fmt.Errorf("%w: only administrators can reset certification", domain.ErrPermissionDenied)
	}

	var out *domain.PurchasedCourse
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		profiles := uc.profiles.Tx(tx)

		if _, err := profiles.Get(ctx, userID); err != nil {
			return err
		}
		purchase, err := profiles.GetPurchase(ctx, userID, courseID)
		if err != nil {
			return err
		}
		if err := profiles.SetCertification(ctx, purchase.ID, false); err != nil {
			return err
		}
		purchase.PassCertification = false
		out = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// settleStorage проверяет и списывает плату за рост состояния.
// surplus — то, что осталось от приложенной суммы после цены актива.
// Плата уходит в vault; возврат сверх порога пыли покупатель просто
// не платит (его кошелек дебетуется только на фактические переводы).
func (uc *EnrollmentUseCase) settleStorage(ctx context.Context, wallets *repository.WalletRepository, payerID string, surplus, bytesGrown int64) error {
	required := bytesGrown * uc.storageByteCost
	if surplus < required {
		return fmt.Errorf("%w: must attach %d to cover storage", domain.ErrInsufficientPayment, required)
	}

	pay := required
	if surplus-required <= refundDustThreshold {
		// Пыль не возвращаем — уходит платформе вместе с платой
		pay = surplus
	}
	if pay == 0 {
		return nil
	}
	return wallets.Transfer(ctx, payerID, uc.vaultID, pay, "storage cost")
}
