package sandbox_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/sandbox"
	"go.trai.ch/cook/internal/core/domain"
)

var win = domain.NewPlatformID("Windows")

func rockPackage() *domain.LoadedPackage {
	return &domain.LoadedPackage{
		ID:      domain.NewPackageID("/Game/Meshes/Rock"),
		Class:   "StaticMesh",
		Imports: domain.NewPackageIDs([]string{"/Game/Materials/M_Rock", "/Game/Textures/T_Rock"}),
		Payload: []byte("vertices\n"),
	}
}

func TestSandbox_Layout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sb := sandbox.New(dir)
	pkg := domain.NewPackageID("/Game/Meshes/Rock")

	assert.Equal(t, filepath.Join(dir, "Windows", "game", "meshes", "rock.cooked"), sb.OutputPath(pkg, win))
	assert.Equal(t, filepath.Join(dir, "Windows"), sb.PlatformDir(win))

	require.NoError(t, sb.Prepare(win))
	assert.DirExists(t, filepath.Join(dir, "Windows"))
	assert.False(t, sb.Exists(pkg, win))
	require.NoError(t, sb.Remove(pkg, win), "removing a missing artifact is not an error")
}

func TestSandbox_SaveReadRemove(t *testing.T) {
	t.Parallel()

	sb := sandbox.New(t.TempDir())
	ser := sandbox.NewSerializer()
	pkg := rockPackage()
	out := sb.OutputPath(pkg.ID, win)
	ctx := context.Background()

	status, err := ser.Save(ctx, pkg, win, out)
	require.NoError(t, err)
	assert.Equal(t, domain.SaveSuccess, status)
	assert.True(t, sb.Exists(pkg.ID, win))

	status, err = ser.Save(ctx, pkg, win, out)
	require.NoError(t, err)
	assert.Equal(t, domain.SaveUpToDate, status)

	pkg.Payload = []byte("more vertices\n")
	status, err = ser.Save(ctx, pkg, win, out)
	require.NoError(t, err)
	assert.Equal(t, domain.SaveSuccess, status)

	data, err := sb.Read(pkg.ID, win)
	require.NoError(t, err)
	assert.Equal(t, sandbox.Encode(pkg, win), data)

	require.NoError(t, sb.Remove(pkg.ID, win))
	assert.False(t, sb.Exists(pkg.ID, win))
}

func TestSandbox_ReadCorrupt(t *testing.T) {
	t.Parallel()

	sb := sandbox.New(t.TempDir())
	pkg := rockPackage()
	out := sb.OutputPath(pkg.ID, win)
	_, err := sandbox.NewSerializer().Save(context.Background(), pkg, win, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff
	require.NoError(t, os.WriteFile(out, data, 0o600))

	_, err = sb.Read(pkg.ID, win)
	require.Error(t, err)
	assert.ErrorContains(t, err, "artifact checksum mismatch")

	_, err = sb.Read(domain.NewPackageID("/Game/Missing"), win)
	require.Error(t, err)
}

func TestSandbox_WipeAndWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sb := sandbox.New(dir)
	ps5 := domain.NewPlatformID("PS5")
	pkg := rockPackage()
	ser := sandbox.NewSerializer()

	for _, p := range []domain.PlatformID{win, ps5} {
		_, err := ser.Save(context.Background(), pkg, p, sb.OutputPath(pkg.ID, p))
		require.NoError(t, err)
	}
	require.NoError(t, sb.WriteFile(win, domain.DependencyGraphFile, []byte("{}")))
	assert.FileExists(t, filepath.Join(dir, "Windows", domain.DependencyGraphFile))

	require.NoError(t, sb.Wipe(win))
	assert.NoDirExists(t, filepath.Join(dir, "Windows"))
	assert.True(t, sb.Exists(pkg.ID, ps5))

	require.Error(t, sb.Wipe(domain.PlatformID{}))
	require.Error(t, sb.WriteFile(win, "../escape.json", nil))
}

func TestSerializer_Errors(t *testing.T) {
	t.Parallel()

	ser := sandbox.NewSerializer()
	out := filepath.Join(t.TempDir(), "a.cooked")

	status, err := ser.Save(context.Background(), nil, win, out)
	require.Error(t, err)
	assert.Equal(t, domain.SaveError, status)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	status, err = ser.Save(ctx, rockPackage(), win, out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.SaveError, status)
}

func TestEncode_Golden(t *testing.T) {
	t.Parallel()

	data := sandbox.Encode(rockPackage(), win)
	require.NoError(t, sandbox.Verify(data))

	g := goldie.New(t)
	g.Assert(t, "rock_windows", data[:len(data)-8])
}

func TestVerify(t *testing.T) {
	t.Parallel()

	assert.Error(t, sandbox.Verify(nil))
	assert.Error(t, sandbox.Verify([]byte("plain text that is long enough")))
}
