package domain

import (
	"time"

	"github.com/google/uuid"
)

// User — учетка для входа. Username служит внешней идентичностью:
// им подписаны курсы, кошельки, профили и список админов.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex;not null;size:64" json:"username"`
	Email    string    `gorm:"uniqueIndex;not null;size:128" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
