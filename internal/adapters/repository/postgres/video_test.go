package postgres_test

import (
	"clipshare/internal/adapters/repository/postgres"
	"clipshare/internal/core/domain"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlVideoRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	videoRepo := postgres.NewSqlVideoRepository(dbConnection)

	t.Run("create then find by public id", func(t *testing.T) {
		truncate()
		id, err := videoRepo.Create(ctx, domain.Video{
			Title:          "Holiday",
			Description:    "beach",
			PublicID:       "video-uploads/holiday",
			OriginalSize:   10_000_000,
			CompressedSize: 4_000_000,
			Duration:       125,
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		found, err := videoRepo.FindByPublicID(ctx, "video-uploads/holiday")
		require.NoError(t, err)
		assert.Equal(t, id, found.ID)
		assert.Equal(t, "Holiday", found.Title)
		assert.Equal(t, int64(4_000_000), found.CompressedSize)
		assert.False(t, found.CreatedAt.IsZero())
	})

	t.Run("find missing", func(t *testing.T) {
		truncate()
		_, err := videoRepo.FindByPublicID(ctx, "nope")
		require.ErrorIs(t, err, domain.ErrVideoNotFound)
	})

	t.Run("duplicate public id", func(t *testing.T) {
		truncate()
		video := domain.Video{Title: "a", PublicID: "dup", OriginalSize: 1, CompressedSize: 1}
		_, err := videoRepo.Create(ctx, video)
		require.NoError(t, err)
		_, err = videoRepo.Create(ctx, video)
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("list returns every record", func(t *testing.T) {
		truncate()
		for _, publicID := range []string{"a", "b", "c"} {
			_, err := videoRepo.Create(ctx, domain.Video{Title: publicID, PublicID: publicID, OriginalSize: 10, CompressedSize: 5})
			require.NoError(t, err)
		}

		videos, err := videoRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 3)
	})

	t.Run("list empty", func(t *testing.T) {
		truncate()
		videos, err := videoRepo.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, videos)
		require.Empty(t, videos)
	})
}
