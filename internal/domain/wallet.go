package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account — баланс в минимальных единицах валюты
type Account struct {
	AccountID string `gorm:"primaryKey" json:"account_id"`
	Balance   int64  `gorm:"not null;default:0" json:"balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transfer — запись о переводе, для аудита
type Transfer struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FromID string    `gorm:"index" json:"from_id"`
	ToID   string    `gorm:"index" json:"to_id"`
	Amount int64     `gorm:"not null" json:"amount"`
	Memo   string    `json:"memo"`

	CreatedAt time.Time `json:"created_at"`
}
