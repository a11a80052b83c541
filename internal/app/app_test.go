package app_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/adapters/config"
	"go.trai.ch/cook/internal/adapters/fs"
	"go.trai.ch/cook/internal/adapters/gc"
	"go.trai.ch/cook/internal/adapters/metrics"
	"go.trai.ch/cook/internal/adapters/process"
	"go.trai.ch/cook/internal/adapters/sandbox"
	"go.trai.ch/cook/internal/adapters/server"
	"go.trai.ch/cook/internal/app"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var win64 = domain.NewPlatformID("Win64")

type harness struct {
	app    *app.App
	root   string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(body), domain.PrivateFilePerm))
}

// newHarness lays out a project with one map importing one mesh.
func newHarness(t *testing.T, cfg string) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), cfg)
	writeFile(t, filepath.Join(root, "Content", "Maps", "Arena.umap"), "imports: [/Game/Meshes/Rock]\npayload: arena\n")
	writeFile(t, filepath.Join(root, "Content", "Meshes", "Rock.uasset"), "class: StaticMesh\npayload: rock\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	h := &harness{root: root, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.app = app.New(
		config.NewLoader(log),
		log,
		fs.NewWalker(),
		sandbox.NewSerializer(),
		gc.NewProbe(0),
		metrics.New(prometheus.NewRegistry()),
		nil,
	).WithOutput(h.stdout, h.stderr)
	return h
}

const projectConfig = `
platforms: [Win64]
telemetry: none
`

func (h *harness) artifactExists(pkg string) bool {
	sb := sandbox.New(filepath.Join(h.root, domain.DefaultSandboxDir))
	return sb.Exists(domain.NewPackageID(pkg), win64)
}

func TestApp_Book(t *testing.T) {
	h := newHarness(t, projectConfig)
	ctx := context.Background()

	err := h.app.Book(ctx, app.BookOptions{
		Root:       h.root,
		OutputMode: "linear",
		Book:       domain.BookOptions{Filter: domain.AssetFilter{AllMaps: true}},
	})
	require.NoError(t, err)

	assert.Contains(t, h.stdout.String(), "Cook session book_")
	assert.Contains(t, h.stdout.String(), "2 packages attempted")
	assert.Contains(t, h.stdout.String(), ": success")
	assert.True(t, h.artifactExists("/Game/Maps/Arena"))
	assert.True(t, h.artifactExists("/Game/Meshes/Rock"))

	h.stdout.Reset()
	err = h.app.Book(ctx, app.BookOptions{
		Root:       h.root,
		OutputMode: "linear",
		Book:       domain.BookOptions{Filter: domain.AssetFilter{AllMaps: true}, Iterative: true},
	})
	require.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "2 kept from previous cook")
}

func TestApp_BookInProcessChildren(t *testing.T) {
	h := newHarness(t, projectConfig+"child_mode: inprocess\n")

	err := h.app.Book(context.Background(), app.BookOptions{
		Root:       h.root,
		OutputMode: "linear",
		Children:   2,
		Book:       domain.BookOptions{Filter: domain.AssetFilter{AllMaps: true}},
	})
	require.NoError(t, err)

	assert.Contains(t, h.stdout.String(), ": success")
	assert.True(t, h.artifactExists("/Game/Maps/Arena"))
	assert.True(t, h.artifactExists("/Game/Meshes/Rock"))
}

func TestApp_BookErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     string
		mode    string
		wantErr string
	}{
		{"invalid output mode", projectConfig, "fancy", "invalid configuration"},
		{"no platforms", "telemetry: none\n", "linear", domain.ErrNoPlatforms.Error()},
		{"unknown telemetry backend", "platforms: [Win64]\ntelemetry: jaeger\n", "linear", "invalid configuration"},
		{"unknown child mode", projectConfig + "child_mode: threads\n", "linear", "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.cfg)
			err := h.app.Book(context.Background(), app.BookOptions{
				Root:       h.root,
				OutputMode: tt.mode,
				Book:       domain.BookOptions{Filter: domain.AssetFilter{AllMaps: true}},
			})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestApp_Child(t *testing.T) {
	h := newHarness(t, projectConfig)
	dir := t.TempDir()
	response := filepath.Join(dir, "child.response.json")
	result := filepath.Join(dir, "child.result.json")

	require.NoError(t, process.WriteJSON(response, domain.WorkerResponse{
		Packages:  []domain.PackageID{domain.NewPackageID("/Game/Meshes/Rock")},
		Platforms: []string{"Win64"},
	}))

	err := h.app.Child(context.Background(), app.ChildOptions{
		Root:         h.root,
		ResponseFile: response,
		ResultFile:   result,
	})
	require.NoError(t, err)

	var res domain.WorkerResult
	require.NoError(t, process.ReadJSON(result, &res))
	require.Len(t, res.Records, 1)
	assert.Equal(t, "/game/meshes/rock", res.Records[0].Package.String())
	assert.True(t, res.Records[0].Success)
	assert.NotEmpty(t, res.Records[0].Hash)
	assert.Contains(t, h.stdout.String(), "cooking 1 packages")
}

func TestApp_ChildMissingResponse(t *testing.T) {
	h := newHarness(t, projectConfig)
	err := h.app.Child(context.Background(), app.ChildOptions{
		Root:         h.root,
		ResponseFile: filepath.Join(t.TempDir(), "missing.json"),
		ResultFile:   filepath.Join(t.TempDir(), "result.json"),
	})
	assert.ErrorContains(t, err, "failed to read child cooker file")
}

func TestApp_Clean(t *testing.T) {
	h := newHarness(t, projectConfig)
	ctx := context.Background()

	require.NoError(t, h.app.Book(ctx, app.BookOptions{
		Root:       h.root,
		OutputMode: "linear",
		Book:       domain.BookOptions{Filter: domain.AssetFilter{AllMaps: true}},
	}))
	require.True(t, h.artifactExists("/Game/Maps/Arena"))

	require.NoError(t, h.app.Clean(ctx, app.CleanOptions{Root: h.root}))
	assert.False(t, h.artifactExists("/Game/Maps/Arena"))
	assert.DirExists(t, domain.DefaultCookPath(h.root))

	require.NoError(t, h.app.Clean(ctx, app.CleanOptions{Root: h.root, State: true}))
	assert.NoDirExists(t, domain.DefaultCookPath(h.root))
}

func newRemote(t *testing.T) (*harness, app.RemoteOptions, *mocks.MockCookService) {
	t.Helper()
	h := newHarness(t, projectConfig)
	svc := mocks.NewMockCookService(gomock.NewController(t))
	ts := httptest.NewServer(server.NewRouter(svc, server.Options{}))
	t.Cleanup(ts.Close)
	return h, app.RemoteOptions{Root: h.root, Addr: ts.URL}, svc
}

func TestApp_Status(t *testing.T) {
	h, opts, svc := newRemote(t)
	svc.EXPECT().Status().Return(domain.Status{Pending: 2, State: domain.StateCooking, Session: "book_1"})

	require.NoError(t, h.app.Status(context.Background(), opts))
	assert.Equal(t, "state:   cooking\npending: 2\nerrors:  no\nsession: book_1\n", h.stdout.String())
}

func TestApp_Manifest(t *testing.T) {
	h, opts, svc := newRemote(t)
	svc.EXPECT().CookedManifestFor(win64).Return([]domain.PackageID{
		domain.NewPackageID("/Game/A"),
		domain.NewPackageID("/Game/B"),
	})

	require.NoError(t, h.app.Manifest(context.Background(), opts, "Win64"))
	assert.Equal(t, "/game/a\n/game/b\n", h.stdout.String())
}

func TestApp_Request(t *testing.T) {
	h, opts, svc := newRemote(t)
	svc.EXPECT().HandleFileRequest(gomock.Any(), "/Game/Maps/Arena", win64).Return(&domain.FileResponse{
		Package:  domain.NewPackageID("/Game/Maps/Arena"),
		Platform: win64,
		Data:     []byte("cooked"),
	}, nil).Times(2)

	ctx := context.Background()
	req := app.RequestOptions{RemoteOptions: opts, Platform: "Win64", Path: "/Game/Maps/Arena"}
	require.NoError(t, h.app.Request(ctx, req))
	assert.Equal(t, "cooked", h.stdout.String())

	req.Out = filepath.Join(t.TempDir(), "arena.bin")
	require.NoError(t, h.app.Request(ctx, req))
	data, err := os.ReadFile(req.Out)
	require.NoError(t, err)
	assert.Equal(t, "cooked", string(data))
}

func TestApp_RequestFailed(t *testing.T) {
	h, opts, svc := newRemote(t)
	svc.EXPECT().HandleFileRequest(gomock.Any(), "/Game/Broken", win64).Return(&domain.FileResponse{
		Package:  domain.NewPackageID("/Game/Broken"),
		Platform: win64,
	}, domain.ErrCookFailed)

	err := h.app.Request(context.Background(), app.RequestOptions{RemoteOptions: opts, Platform: "Win64", Path: "/Game/Broken"})
	require.ErrorIs(t, err, domain.ErrCookFailed)
	assert.Empty(t, h.stdout.String())
}

func TestApp_Dirty(t *testing.T) {
	h, opts, svc := newRemote(t)
	svc.EXPECT().MarkPackageDirty(gomock.Any(), domain.NewPackageID("/Game/A"))

	require.NoError(t, h.app.Dirty(context.Background(), opts, []string{"/Game/A"}))
}

func TestApp_RemoteBook(t *testing.T) {
	h, opts, svc := newRemote(t)
	gomock.InOrder(
		svc.EXPECT().StartCookByTheBook(gomock.Any(), gomock.Any()).Return("book_1", nil),
		svc.EXPECT().IsRunning("book_1").Return(false),
		svc.EXPECT().Status().Return(domain.Status{HasErrors: true}),
	)

	err := h.app.RemoteBook(context.Background(), opts, cookv1.BookRequest{Platforms: []string{"Win64"}, AllMaps: true})
	assert.ErrorContains(t, err, domain.ErrCookSessionFailed.Error())
}
