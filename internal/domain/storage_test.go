package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringStorageBytes(t *testing.T) {
	assert.Equal(t, int64(4), StringStorageBytes(""))
	assert.Equal(t, int64(9), StringStorageBytes("alice"))
}

func TestInscriptionStorageBytes(t *testing.T) {
	ins := Inscription{CourseID: 1, UserID: "alice"}
	assert.Equal(t, int64(9), ins.StorageBytes())
}

func TestPurchasedCourseStorageBytes(t *testing.T) {
	// course id (8) + флаг сертификации (1)
	assert.Equal(t, int64(9), PurchasedCourse{}.StorageBytes())
}

func TestProfileHeaderStorageBytes(t *testing.T) {
	// идентичность владельца + заголовок пустого списка покупок
	assert.Equal(t, int64(13), ProfileHeaderStorageBytes("alice"))
}

func TestIsInscribed(t *testing.T) {
	course := Course{Inscriptions: []Inscription{{UserID: "alice"}, {UserID: "bob"}}}
	assert.True(t, course.IsInscribed("alice"))
	assert.False(t, course.IsInscribed("carol"))
}

func TestMarketViewHidesPaidContent(t *testing.T) {
	course := Course{
		ID:    7,
		Title: "t",
		Content: []ContentItem{
			{Title: "intro", Body: "secret body", Kind: ContentKindVideo},
		},
		Inscriptions: []Inscription{{UserID: "alice"}},
	}
	view := course.MarketView()
	assert.Equal(t, course.ID, view.ID)
	// Превью контента без тел уроков
	assert.Equal(t, []ContentPreview{{Title: "intro", Kind: ContentKindVideo}}, view.Content)
}
