package domain

import "time"

// Profile создается лениво при первой покупке и никогда не удаляется
type Profile struct {
	UserID string `gorm:"primaryKey" json:"user_id"`

	// Порядок покупок — порядок добавления. Уникальность (user, course)
	// здесь НЕ форсируется: дедупликация "уже записан" — обязанность
	// платежного движка и проверяется по inscriptions курса.
	PurchasedCourses []PurchasedCourse `gorm:"foreignKey:UserID;references:UserID" json:"purchased_courses"`

	CreatedAt time.Time `json:"created_at"`
}

type PurchasedCourse struct {
	ID                int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID            string `gorm:"index;not null" json:"-"`
	CourseID          int64  `gorm:"index;not null" json:"course_id"`
	PassCertification bool   `gorm:"default:false" json:"pass_certification"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
