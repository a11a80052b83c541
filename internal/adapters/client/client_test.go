package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/adapters/client"
	"go.trai.ch/cook/internal/adapters/server"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var windows = domain.NewPlatformID("Windows")

func setup(t *testing.T) (*client.Client, *mocks.MockCookService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCookService(ctrl)
	ts := httptest.NewServer(server.NewRouter(svc, server.Options{}))
	t.Cleanup(ts.Close)
	return client.New(ts.URL), svc
}

func TestClient_Health(t *testing.T) {
	c, _ := setup(t)
	require.NoError(t, c.Health(context.Background()))
}

func TestClient_HealthUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.Listener.Addr().String()
	ts.Close()

	err := client.New(addr).Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
}

func TestClient_Status(t *testing.T) {
	c, svc := setup(t)
	svc.EXPECT().Status().Return(domain.Status{Pending: 2, State: domain.StateIdle})

	st, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Pending)
	assert.Equal(t, "idle", st.State)
}

func TestClient_RequestPackage(t *testing.T) {
	c, svc := setup(t)
	arena := domain.NewPackageID("/Game/Maps/Arena")
	rock := domain.NewPackageID("/Game/Meshes/Rock")

	svc.EXPECT().HandleFileRequest(gomock.Any(), "/Game/Maps/Arena", windows).Return(&domain.FileResponse{
		Package:     arena,
		Platform:    windows,
		Data:        []byte("cooked"),
		Unsolicited: []domain.PackageID{rock},
	}, nil)

	resp, err := c.RequestPackage(context.Background(), "Windows", "/Game/Maps/Arena")
	require.NoError(t, err)
	assert.Equal(t, arena, resp.Package)
	assert.Equal(t, windows, resp.Platform)
	assert.Equal(t, []byte("cooked"), resp.Data)
	assert.Equal(t, []domain.PackageID{rock}, resp.Unsolicited)
}

func TestClient_RequestPackageFailed(t *testing.T) {
	c, svc := setup(t)
	sky := domain.NewPackageID("/Game/Sky")

	svc.EXPECT().HandleFileRequest(gomock.Any(), "/Game/Broken", windows).Return(&domain.FileResponse{
		Package:     domain.NewPackageID("/Game/Broken"),
		Platform:    windows,
		Unsolicited: []domain.PackageID{sky},
	}, domain.ErrCookFailed)

	resp, err := c.RequestPackage(context.Background(), "Windows", "Game/Broken")
	require.ErrorIs(t, err, domain.ErrCookFailed)
	require.NotNil(t, resp)
	assert.Equal(t, []domain.PackageID{sky}, resp.Unsolicited)
	assert.Empty(t, resp.Data)
}

func TestClient_RequestPackageServerError(t *testing.T) {
	c, svc := setup(t)
	svc.EXPECT().HandleFileRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk on fire"))

	_, err := c.RequestPackage(context.Background(), "Windows", "/Game/A")
	require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
	assert.ErrorContains(t, err, "disk on fire")
}

func TestClient_BookLifecycle(t *testing.T) {
	c, svc := setup(t)
	ctx := context.Background()

	svc.EXPECT().StartCookByTheBook(gomock.Any(), gomock.Cond(func(o domain.BookOptions) bool {
		return o.DLCName == "Winter" && o.Filter.AllMaps
	})).Return("book_1", nil)
	svc.EXPECT().IsRunning("book_1").Return(true)
	svc.EXPECT().Cancel("book_1").Return(nil)
	svc.EXPECT().Cancel("book_1").Return(domain.ErrSessionNotFound)

	id, err := c.StartBook(ctx, cookv1.BookRequest{DLC: "Winter", AllMaps: true})
	require.NoError(t, err)
	assert.Equal(t, "book_1", id)

	running, err := c.Session(ctx, id)
	require.NoError(t, err)
	assert.True(t, running)

	require.NoError(t, c.Cancel(ctx, id))
	err = c.Cancel(ctx, id)
	require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
	assert.ErrorContains(t, err, domain.ErrSessionNotFound.Error())
}

func TestClient_ManifestAndDirty(t *testing.T) {
	c, svc := setup(t)
	ctx := context.Background()

	svc.EXPECT().CookedManifestFor(windows).Return([]domain.PackageID{domain.NewPackageID("/Game/A")})
	svc.EXPECT().MarkPackageDirty(gomock.Any(), domain.NewPackageID("/Game/A"))

	pkgs, err := c.Manifest(ctx, "Windows")
	require.NoError(t, err)
	assert.Equal(t, []string{"/game/a"}, pkgs)

	n, err := c.MarkDirty(ctx, []string{"/Game/A"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolveAddr(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, "127.0.0.1:1", client.ResolveAddr(root, "127.0.0.1:1"))

	path := domain.DefaultServerAddrPath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("127.0.0.1:4242\n"), domain.PrivateFilePerm))
	assert.Equal(t, "127.0.0.1:4242", client.ResolveAddr(root, "127.0.0.1:1"))
}
