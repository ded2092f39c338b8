package domain

import "time"

// Тип контента внутри курса
const (
	ContentKindVideo int8 = 1
	ContentKindText  int8 = 2
)

type Course struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID string `gorm:"index;not null" json:"creator_id"`
	Title     string `gorm:"index" json:"title"`

	CategoryID int64    `gorm:"index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	ImageURL         string `json:"img"`

	// Контент неизменяем после публикации (put_course его не трогает)
	Content []ContentItem `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"content"`

	Price              int64 `json:"price"`
	CertificationPrice int64 `json:"price_certification"`

	Inscriptions []Inscription `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"inscriptions"`

	// Производное поле: всегда пересчитывается из полного набора отзывов
	Rating  float64  `json:"rating"`
	Reviews []Review `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContentItem struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	CourseID int64  `gorm:"index;not null" json:"-"`
	Position int    `gorm:"not null" json:"position"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Kind     int8   `json:"kind"` // 1 Video, 2 Text
}

type Inscription struct {
	CourseID int64  `gorm:"primaryKey" json:"course_id"`
	UserID   string `gorm:"primaryKey" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}

type Review struct {
	// ID — слот отзыва: при повторной отправке тем же юзером строка
	// перезаписывается на месте, порядок остальных не меняется.
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	CourseID   int64  `gorm:"index:idx_course_reviewer,unique;not null" json:"course_id"`
	ReviewerID string `gorm:"index:idx_course_reviewer,unique;not null" json:"user_id"`
	Body       string `json:"review"`
	Critic     int    `json:"critics"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentPreview — то, что видно в маркете без покупки
type ContentPreview struct {
	Title string `json:"title"`
	Kind  int8   `json:"kind"`
}

// MarketCourse — публичная проекция курса: без списка записавшихся
// и без тел уроков (платный контент).
type MarketCourse struct {
	ID                 int64            `json:"id"`
	CreatorID          string           `json:"creator_id"`
	Title              string           `json:"title"`
	Category           Category         `json:"category"`
	ShortDescription   string           `json:"short_description"`
	LongDescription    string           `json:"long_description"`
	ImageURL           string           `json:"img"`
	Content            []ContentPreview `json:"content"`
	Price              int64            `json:"price"`
	CertificationPrice int64            `json:"price_certification"`
	Rating             float64          `json:"rating"`
	Reviews            []Review         `json:"reviews"`
}

// MarketView строит публичную проекцию
func (c *Course) MarketView() MarketCourse {
	preview := make([]ContentPreview, 0, len(c.Content))
	for _, item := range c.Content {
		preview = append(preview, ContentPreview{Title: item.Title, Kind: item.Kind})
	}
	return MarketCourse{
		ID:                 c.ID,
		CreatorID:          c.CreatorID,
		Title:              c.Title,
		Category:           c.Category,
		ShortDescription:   c.ShortDescription,
		LongDescription:    c.LongDescription,
		ImageURL:           c.ImageURL,
		Content:            preview,
		Price:              c.Price,
		CertificationPrice: c.CertificationPrice,
		Rating:             c.Rating,
		Reviews:            c.Reviews,
	}
}

// IsInscribed проверяет запись юзера на курс
func (c *Course) IsInscribed(userID string) bool {
	for _, ins := range c.Inscriptions {
		if ins.UserID == userID {
			return true
		}
	}
	return false
}

// RecomputeRating пересчитывает рейтинг с нуля по всем отзывам.
// Никаких бегущих сумм — так нечему рассинхронизироваться.
func (c *Course) RecomputeRating() {
	if len(c.Reviews) == 0 {
		c.Rating = 0
		return
	}
	var sum float64
	for _, r := range c.Reviews {
		sum += float64(r.Critic)
	}
	c.Rating = sum / float64(len(c.Reviews))
}
