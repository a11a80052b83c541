package content_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/content"
	"go.trai.ch/cook/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func loadedIDs(res domain.LoadResult) []string {
	out := make([]string, 0, len(res.Loaded))
	for _, p := range res.Loaded {
		out = append(out, p.ID.String())
	}
	return out
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()
	p := setupProject(t)
	loader := content.NewLoader(p.index, p.logger)
	ctx := context.Background()

	res, err := loader.Load(ctx, domain.NewPackageID("/Game/Maps/Arena"))
	require.NoError(t, err)
	require.NotNil(t, res.Root)
	assert.Equal(t, "/game/maps/arena", res.Root.ID.String())
	assert.True(t, res.Root.IsMap)
	assert.Equal(t, "World", res.Root.Class)
	assert.Equal(t, []byte("arena"), res.Root.Payload)
	assert.Equal(t, []string{
		"/game/meshes/rock",
		"/game/sky",
		"/game/materials/m_rock",
		"/game/textures/t_rock",
	}, loadedIDs(res))
	assert.ElementsMatch(t, []string{"World", "StaticMesh", "SkyAtmosphere", "Material", "Texture2D"}, res.ClassTags())

	n, size := loader.Resident()
	assert.Equal(t, 5, n)
	assert.Equal(t, uint64(len("arena")+len("rock")+len("pixels")), size)

	// Resident packages are not loaded again.
	res, err = loader.Load(ctx, domain.NewPackageID("/Game/Meshes/Rock"))
	require.NoError(t, err)
	assert.Equal(t, "StaticMesh", res.Root.Class)
	assert.Empty(t, res.Loaded)

	assert.Equal(t, 5, loader.Evict())
	n, size = loader.Resident()
	assert.Zero(t, n)
	assert.Zero(t, size)
}

func TestLoader_Redirect(t *testing.T) {
	t.Parallel()
	p := setupProject(t)
	loader := content.NewLoader(p.index, p.logger)

	res, err := loader.Load(context.Background(), domain.NewPackageID("/Game/Old/Rock"))
	require.NoError(t, err)
	assert.Equal(t, "/game/meshes/rock", res.Root.ID.String())
	assert.Equal(t, []string{"/game/materials/m_rock", "/game/textures/t_rock"}, loadedIDs(res))
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing package", func(t *testing.T) {
		t.Parallel()
		p := setupProject(t)
		loader := content.NewLoader(p.index, p.logger)

		_, err := loader.Load(context.Background(), domain.NewPackageID("/Game/Missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	})

	t.Run("malformed source", func(t *testing.T) {
		t.Parallel()
		p := setupProject(t)
		writeFile(t, filepath.Join(p.cfg.ContentRoot, "Broken.uasset"), "imports: [unterminated\n")
		loader := content.NewLoader(p.index, p.logger)

		_, err := loader.Load(context.Background(), domain.NewPackageID("/Game/Broken"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to decode package source")
	})

	t.Run("redirect loop", func(t *testing.T) {
		t.Parallel()
		p := setupProject(t)
		writeFile(t, filepath.Join(p.cfg.ContentRoot, "A.uasset"), "redirect: /Game/B\n")
		writeFile(t, filepath.Join(p.cfg.ContentRoot, "B.uasset"), "redirect: /Game/A\n")
		loader := content.NewLoader(p.index, p.logger)

		_, err := loader.Load(context.Background(), domain.NewPackageID("/Game/A"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "redirector chain too long")
	})

	t.Run("missing import is skipped", func(t *testing.T) {
		t.Parallel()
		p := setupProject(t)
		writeFile(t, filepath.Join(p.cfg.ContentRoot, "Lonely.uasset"), "imports: [/Game/Gone, /Game/Sky]\n")
		p.logger.EXPECT().Warn(gomock.Any()).Times(1)
		loader := content.NewLoader(p.index, p.logger)

		res, err := loader.Load(context.Background(), domain.NewPackageID("/Game/Lonely"))
		require.NoError(t, err)
		assert.Contains(t, loadedIDs(res), "/game/sky")
		assert.NotContains(t, loadedIDs(res), "/game/gone")
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		p := setupProject(t)
		loader := content.NewLoader(p.index, p.logger)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := loader.Load(ctx, domain.NewPackageID("/Game/Maps/Arena"))
		require.ErrorIs(t, err, context.Canceled)
	})
}
