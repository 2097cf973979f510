//go:build e2e

package repository_test

import (
	"context"
	"testing"

	"couponhub/internal/domain/admin"
	"couponhub/internal/infra"
	"couponhub/internal/infra/repository"
	"couponhub/tests/common/dbtest"
	"couponhub/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository(t *testing.T) {
	t.Parallel()
	pool, _ := e2e.StartPostgres(t)
	repo := repository.NewAdminRepository(pool)
	ctx := context.Background()

	username, err := admin.NewUsername("root")
	require.NoError(t, err)

	t.Run("missing admin is not found", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))

		_, err := repo.FindByUsername(ctx, username)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("upsert keeps id and replaces hash", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))

		first, err := repo.Upsert(ctx, admin.NewAdmin(username, "hash-1"))
		require.NoError(t, err)
		second, err := repo.Upsert(ctx, admin.NewAdmin(username, "hash-2"))
		require.NoError(t, err)

		assert.Equal(t, first.ID(), second.ID())
		found, err := repo.FindByUsername(ctx, username)
		require.NoError(t, err)
		assert.Equal(t, "hash-2", found.PasswordHash())
		assert.Equal(t, "root", found.Username().Value())
	})

	t.Run("fixture admin is readable", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))
		id := dbtest.CreateTestAdmin(t, pool, "root", "s3cret-pass")

		found, err := repo.FindByUsername(ctx, username)
		require.NoError(t, err)
		assert.Equal(t, id, found.ID())
	})
}
