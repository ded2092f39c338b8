package domain

import "time"

type Category struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	ImageURL string `json:"img"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Administrator — член списка администраторов платформы.
// Стартовый набор сидится из конфига при первом запуске.
type Administrator struct {
	AccountID string `gorm:"primaryKey" json:"account_id"`
	AddedBy   string `json:"added_by"`

	CreatedAt time.Time `json:"created_at"`
}
