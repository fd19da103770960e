package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository/postgres"
)

func TestIntegrationCatalogueRepos(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	ctx := context.Background()
	stickerRepo := postgres.NewStickerRepo(db.Pool)
	backgroundRepo := postgres.NewBackgroundRepo(db.Pool)

	t.Run("empty tables return no rows", func(t *testing.T) {
		db.Truncate(t, "stickers", "background_textures")

		stickers, err := stickerRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, stickers)

		textures, err := backgroundRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, textures)
	})

	t.Run("lists stickers by position", func(t *testing.T) {
		db.Truncate(t, "stickers")

		_, err := db.Pool.Exec(ctx, `
			INSERT INTO stickers (id, name, src, category, position) VALUES
				('star', 'Star', '/stickers/star.png', 'shapes', 2),
				('heart', 'Heart', '/stickers/heart.png', 'shapes', 1)
		`)
		require.NoError(t, err)

		stickers, err := stickerRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, stickers, 2)
		assert.Equal(t, "heart", stickers[0].ID)
		assert.Equal(t, "/stickers/heart.png", stickers[0].Src)
		assert.Equal(t, "shapes", stickers[0].Category)
		assert.Equal(t, "star", stickers[1].ID)
	})

	t.Run("lists background textures", func(t *testing.T) {
		db.Truncate(t, "background_textures")

		_, err := db.Pool.Exec(ctx, `
			INSERT INTO background_textures (id, name, src, position) VALUES
				('paper', 'Paper', '/backgrounds/paper.jpg', 1)
		`)
		require.NoError(t, err)

		textures, err := backgroundRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, textures, 1)
		assert.Equal(t, "Paper", textures[0].Name)
	})
}
