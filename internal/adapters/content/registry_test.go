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

func TestAssetRegistry_GetDependenciesOf(t *testing.T) {
	t.Parallel()
	p := setupProject(t)
	reg := content.NewAssetRegistry(p.index, p.logger)

	deps, err := reg.GetDependenciesOf(context.Background(), domain.NewPackageID("/Game/Meshes/Rock"))
	require.NoError(t, err)
	assert.Equal(t, ids("/game/materials/m_rock", "/game/textures/t_rock"), deps)

	// Arena and Sky import each other.
	deps, err = reg.GetDependenciesOf(context.Background(), domain.NewPackageID("/Game/Sky"))
	require.NoError(t, err)
	assert.Equal(t, ids(
		"/game/maps/arena",
		"/game/materials/m_rock",
		"/game/meshes/rock",
		"/game/textures/t_rock",
	), deps)
}

func TestAssetRegistry_GetDependents(t *testing.T) {
	t.Parallel()
	p := setupProject(t)
	reg := content.NewAssetRegistry(p.index, p.logger)

	got, err := reg.GetDependents(context.Background(), ids("/Game/Textures/T_Rock"))
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "/game/textures/t_rock", got[0].String(), "roots come first")
	assert.ElementsMatch(t, ids(
		"/game/textures/t_rock",
		"/game/materials/m_rock",
		"/game/meshes/rock",
		"/game/old/rock",
		"/game/maps/arena",
		"/winter/maps/frost",
		"/game/sky",
	), got)

	leaf, err := reg.GetDependents(context.Background(), ids("/Winter/Maps/Frost", "/Winter/Maps/Frost"))
	require.NoError(t, err)
	assert.Equal(t, ids("/winter/maps/frost"), leaf)
}

func TestAssetRegistry_RebuildsAfterInvalidate(t *testing.T) {
	t.Parallel()
	p := setupProject(t)
	reg := content.NewAssetRegistry(p.index, p.logger)
	ctx := context.Background()

	deps, err := reg.GetDependenciesOf(ctx, domain.NewPackageID("/Game/Textures/T_Rock"))
	require.NoError(t, err)
	assert.Empty(t, deps)

	writeFile(t, filepath.Join(p.cfg.ContentRoot, "Textures", "T_Rock.uasset"), "class: Texture2D\nimports: [/Game/Sky]\n")
	p.index.Invalidate()

	deps, err = reg.GetDependenciesOf(ctx, domain.NewPackageID("/Game/Textures/T_Rock"))
	require.NoError(t, err)
	assert.Contains(t, deps, domain.NewPackageID("/Game/Sky"))
}

func TestAssetRegistry_Enumerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   domain.AssetFilter
		warnings int
		want     []domain.PackageID
	}{
		{
			name:   "all maps",
			filter: domain.AssetFilter{AllMaps: true},
			want:   ids("/game/maps/arena", "/winter/maps/frost"),
		},
		{
			name:   "map by short name",
			filter: domain.AssetFilter{Maps: []string{"Arena"}},
			want:   ids("/game/maps/arena"),
		},
		{
			name:   "map by path",
			filter: domain.AssetFilter{Maps: []string{"/Winter/Maps/Frost.umap"}},
			want:   ids("/winter/maps/frost"),
		},
		{
			name:     "unknown map",
			filter:   domain.AssetFilter{Maps: []string{"Desert"}},
			warnings: 1,
			want:     ids(),
		},
		{
			name:   "directory",
			filter: domain.AssetFilter{Directories: []string{"/Game/Meshes", "/Game/Materials/"}},
			want:   ids("/game/materials/m_rock", "/game/meshes/rock"),
		},
		{
			name:     "explicit packages",
			filter:   domain.AssetFilter{Packages: []string{"/Game/Sky", "/Game/Nope", "/game/sky.uasset"}},
			warnings: 1,
			want:     ids("/game/sky"),
		},
		{
			name:   "dlc scope",
			filter: domain.AssetFilter{AllMaps: true, Packages: []string{"/Winter/Maps/Frost"}, DLC: "Winter"},
			want:   ids("/winter/maps/frost"),
		},
		{
			name:     "dlc hides base content",
			filter:   domain.AssetFilter{Packages: []string{"/Game/Sky"}, DLC: "Winter"},
			warnings: 1,
			want:     ids(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := setupProject(t)
			if tt.warnings > 0 {
				p.logger.EXPECT().Warn(gomock.Any()).Times(tt.warnings)
			}
			reg := content.NewAssetRegistry(p.index, p.logger)

			got, err := reg.Enumerate(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
