package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/content"
	"go.trai.ch/cook/internal/adapters/fs"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// project lays out a small content tree:
//
//	Content/Maps/Arena.umap        imports Rock, Sky
//	Content/Meshes/Rock.uasset     imports M_Rock
//	Content/Materials/M_Rock.uasset imports T_Rock
//	Content/Textures/T_Rock.uasset
//	Content/Sky.uasset             imports Arena (cycle)
//	Content/Old/Rock.uasset        redirects to Meshes/Rock
//	DLC/Winter/Content/Maps/Frost.umap imports /Game/Meshes/Rock
type project struct {
	cfg    *domain.Config
	index  *content.Index
	logger *mocks.MockLogger
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func setupProject(t *testing.T) *project {
	t.Helper()

	root := t.TempDir()
	c := filepath.Join(root, "Content")
	writeFile(t, filepath.Join(c, "Maps", "Arena.umap"), "imports: [/Game/Meshes/Rock, /Game/Sky]\npayload: arena\n")
	writeFile(t, filepath.Join(c, "Meshes", "Rock.uasset"), "class: StaticMesh\nimports: [/Game/Materials/M_Rock]\npayload: rock\n")
	writeFile(t, filepath.Join(c, "Materials", "M_Rock.uasset"), "class: Material\nimports: [/Game/Textures/T_Rock]\n")
	writeFile(t, filepath.Join(c, "Textures", "T_Rock.uasset"), "class: Texture2D\npayload: pixels\n")
	writeFile(t, filepath.Join(c, "Sky.uasset"), "class: SkyAtmosphere\nimports: [/Game/Maps/Arena]\n")
	writeFile(t, filepath.Join(c, "Old", "Rock.uasset"), "redirect: /Game/Meshes/Rock\n")
	writeFile(t, filepath.Join(root, "DLC", "Winter", "Content", "Maps", "Frost.umap"), "imports: [/Game/Meshes/Rock]\n")

	cfg := domain.DefaultConfig()
	cfg.Root = root
	cfg.ContentRoot = c
	cfg.ContentMount = "/Game"

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	return &project{
		cfg:    &cfg,
		index:  content.NewIndex(fs.NewWalker(), content.MountsFor(&cfg)...),
		logger: logger,
	}
}

func ids(paths ...string) []domain.PackageID {
	return domain.NewPackageIDs(paths)
}
