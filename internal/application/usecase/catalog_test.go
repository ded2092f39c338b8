package usecase

import (
	"context"
	"testing"

	"github.com/waste3d/artemis-marketplace/internal/domain"
	"github.com/waste3d/artemis-marketplace/internal/infrastructure/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")

	// Категория должна существовать
	_, err := env.catalog.PublishCourse(ctx, "alice", PublishCourseInput{Title: "x", CategoryID: 404})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first := env.seedCourse(t, "alice", categoryID, 500, 100)
	second := env.seedCourse(t, "bob", categoryID, 700, 0)

	// Идентификаторы монотонно растут и не переиспользуются
	assert.Greater(t, second.ID, first.ID)

	assert.Equal(t, "alice", first.CreatorID)
	assert.Equal(t, "design", first.Category.Name)
	require.Len(t, first.Content, 2)
	assert.Equal(t, 1, first.Content[0].Position)
	assert.Equal(t, 2, first.Content[1].Position)
	assert.Zero(t, first.Rating)

	// Удаленный id не возвращается в оборот
	require.NoError(t, env.catalog.DeleteCourse(ctx, "bob", second.ID))
	next := env.seedCourse(t, "bob", categoryID, 700, 0)
	assert.Greater(t, next.ID, second.ID)
}

func TestUpdateCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	otherCategory := env.seedCategory(t, "devops")
	course := env.seedCourse(t, "alice", categoryID, 500, 100)

	_, err := env.catalog.UpdateCourse(ctx, "mallory", course.ID, UpdateCourseInput{
		Title: "hijacked", CategoryID: categoryID,
	})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	updated, err := env.catalog.UpdateCourse(ctx, "alice", course.ID, UpdateCourseInput{
		Title:            "new title",
		CategoryID:       otherCategory,
		ShortDescription: "updated",
		Price:            900,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, otherCategory, updated.CategoryID)
	assert.Equal(t, int64(900), updated.Price)

	// Контент и отзывы при обновлении не трогаются
	assert.Len(t, updated.Content, 2)
}

func TestDeleteCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	course := env.seedCourse(t, "alice", categoryID, 500, 0)

	err := env.catalog.DeleteCourse(ctx, "mallory", course.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	// С записавшимися юзерами курс не удалить
	env.fund(t, "buyer", 10_000)
	_, err = env.enrollment.BuyCourse(ctx, "buyer", course.ID, course.Price+firstBuyStorage("buyer")*testStorageCost)
	require.NoError(t, err)
	err = env.catalog.DeleteCourse(ctx, "alice", course.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	empty := env.seedCourse(t, "alice", categoryID, 100, 0)
	require.NoError(t, env.catalog.DeleteCourse(ctx, "alice", empty.ID))
	_, err = env.courses.GetByID(ctx, empty.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarketCourses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	otherCategory := env.seedCategory(t, "devops")

	a := env.seedCourse(t, "alice", categoryID, 100, 0)
	b := env.seedCourse(t, "bob", otherCategory, 200, 0)
	c := env.seedCourse(t, "alice", categoryID, 300, 0)

	// Страница без фильтров — в порядке вставки
	page, err := env.catalog.MarketCourses(ctx, repository.CourseFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{page[0].ID, page[1].ID, page[2].ID})

	// Витрина не раскрывает тела уроков
	require.NotEmpty(t, page[0].Content)
	assert.Equal(t, "intro", page[0].Content[0].Title)

	// Фильтр по автору
	creator := "alice"
	page, err = env.catalog.MarketCourses(ctx, repository.CourseFilter{CreatorID: &creator}, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)

	// Окно посреди списка
	page, err = env.catalog.MarketCourses(ctx, repository.CourseFilter{}, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, b.ID, page[0].ID)

	// Нулевой либо отрицательный limit — отказ
	_, err = env.catalog.MarketCourses(ctx, repository.CourseFilter{}, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = env.catalog.MarketCourses(ctx, repository.CourseFilter{}, -1, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// Offset сверяется с общим числом курсов ДО фильтрации:
	// offset 2 валиден даже при двух курсах alice
	page, err = env.catalog.MarketCourses(ctx, repository.CourseFilter{CreatorID: &creator}, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)

	_, err = env.catalog.MarketCourses(ctx, repository.CourseFilter{}, 3, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRecentCourses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	env.seedCourse(t, "alice", categoryID, 100, 0)
	b := env.seedCourse(t, "bob", categoryID, 200, 0)
	c := env.seedCourse(t, "carol", categoryID, 300, 0)

	recent, err := env.catalog.RecentCourses(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, b.ID, recent[0].ID)
	assert.Equal(t, c.ID, recent[1].ID)

	// Запрошено больше, чем есть — отдается весь каталог
	recent, err = env.catalog.RecentCourses(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	_, err = env.catalog.RecentCourses(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTopRatedCourses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	good := env.seedCourse(t, "alice", categoryID, 100, 0)
	fine := env.seedCourse(t, "bob", categoryID, 200, 0)
	env.seedCourse(t, "carol", categoryID, 300, 0) // без отзывов

	_, err := env.reviews.UpsertReview(ctx, good.ID, "u1", "great", 5)
	require.NoError(t, err)
	_, err = env.reviews.UpsertReview(ctx, good.ID, "u2", "ok", 4)
	require.NoError(t, err)
	_, err = env.reviews.UpsertReview(ctx, fine.ID, "u1", "meh", 3)
	require.NoError(t, err)

	top, err := env.catalog.TopRatedCourses(ctx, 0)
	require.NoError(t, err)
	// Курс без отзывов в топ не попадает
	require.Len(t, top, 2)
	assert.Equal(t, good.ID, top[0].ID)
	assert.InDelta(t, 4.5, top[0].Rating, 1e-9)
	assert.Equal(t, fine.ID, top[1].ID)
	assert.InDelta(t, 3.0, top[1].Rating, 1e-9)

	top, err = env.catalog.TopRatedCourses(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, good.ID, top[0].ID)
}

// Равные рейтинги не переставляют курсы: тай-брейк — порядок каталога
func TestTopRatedCoursesTieBreak(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	first := env.seedCourse(t, "alice", categoryID, 100, 0)
	second := env.seedCourse(t, "bob", categoryID, 200, 0)
	third := env.seedCourse(t, "carol", categoryID, 300, 0)

	for _, id := range []int64{third.ID, first.ID, second.ID} {
		_, err := env.reviews.UpsertReview(ctx, id, "u1", "solid", 4)
		require.NoError(t, err)
	}

	top, err := env.catalog.TopRatedCourses(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []int64{first.ID, second.ID, third.ID},
		[]int64{top[0].ID, top[1].ID, top[2].ID})
}

func TestCourseCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	otherCategory := env.seedCategory(t, "devops")
	env.seedCourse(t, "alice", categoryID, 100, 0)
	env.seedCourse(t, "alice", otherCategory, 200, 0)
	env.seedCourse(t, "bob", categoryID, 300, 0)

	total, err := env.catalog.CourseCount(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	creator := "alice"
	count, err := env.catalog.CourseCount(ctx, &creator, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = env.catalog.CourseCount(ctx, &creator, &categoryID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInstructorCourses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categoryID := env.seedCategory(t, "design")
	env.seedCourse(t, "alice", categoryID, 100, 0)
	env.seedCourse(t, "bob", categoryID, 200, 0)
	env.seedCourse(t, "alice", categoryID, 300, 0)

	mine, err := env.catalog.InstructorCourses(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	// Автору видны полные тела уроков
	require.NotEmpty(t, mine[0].Content)
	assert.Equal(t, "welcome", mine[0].Content[0].Body)

	_, err = env.catalog.InstructorCourses(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
