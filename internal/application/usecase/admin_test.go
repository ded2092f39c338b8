package usecase

import (
	"context"
	"testing"

	"github.com/waste3d/artemis-marketplace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.admins.Seed(ctx, []string{"e-learning", "juanochando"}))
	// Повторный сид при непустом списке ничего не делает
	require.NoError(t, env.admins.Seed(ctx, []string{"intruder"}))

	admins, err := env.admin.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "e-learning", admins[0].AccountID)

	err = env.admin.AddAdmin(ctx, "mallory", "mallory-friend")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	require.NoError(t, env.admin.AddAdmin(ctx, "e-learning", "new-admin"))
	err = env.admin.AddAdmin(ctx, "e-learning", "new-admin")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	err = env.admin.RemoveAdmin(ctx, "e-learning", "stranger")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Админ может удалить самого себя
	require.NoError(t, env.admin.RemoveAdmin(ctx, "new-admin", "new-admin"))
	err = env.admin.RequireAdmin(ctx, "new-admin")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCategoryAdministration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.admins.Seed(ctx, []string{"root-admin"}))

	_, err := env.admin.CreateCategory(ctx, "mallory", "hax", "")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	created, err := env.admin.CreateCategory(ctx, "root-admin", "backend", "img.png")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := env.admin.UpdateCategory(ctx, "root-admin", created.ID, "backend & infra", "img2.png")
	require.NoError(t, err)
	assert.Equal(t, "backend & infra", updated.Name)

	_, err = env.admin.UpdateCategory(ctx, "root-admin", 404, "ghost", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Чтение категорий публично
	all, err := env.admin.Categories(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	one, err := env.admin.Categories(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, created.ID, one[0].ID)

	err = env.admin.DeleteCategory(ctx, "mallory", created.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	require.NoError(t, env.admin.DeleteCategory(ctx, "root-admin", created.ID))
	err = env.admin.DeleteCategory(ctx, "root-admin", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
