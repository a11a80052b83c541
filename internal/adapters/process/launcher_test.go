package process_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/process"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
)

const childModeEnv = "COOK_TEST_CHILD_MODE"

// TestMain lets the test binary act as a child cooker when launched by the
// tests below.
func TestMain(m *testing.M) {
	if mode := os.Getenv(childModeEnv); mode != "" {
		os.Exit(runChild(mode, os.Args[1:]))
	}
	os.Exit(m.Run())
}

func runChild(mode string, args []string) int {
	flags := map[string]string{}
	for i := 1; i+1 < len(args); i += 2 {
		flags[args[i]] = args[i+1]
	}

	switch mode {
	case "fail":
		fmt.Println("out of memory")
		return 3
	case "hang":
		time.Sleep(time.Minute)
		return 0
	}

	spec, err := process.ReadResponse(flags[process.ResponseFileFlag])
	if err != nil {
		fmt.Println(err)
		return 1
	}
	fmt.Printf("cooking %d packages for %s\n", len(spec.Packages), spec.Platforms)

	var res domain.WorkerResult
	for _, pkg := range spec.Packages {
		for _, p := range spec.Platforms.Sorted() {
			res.Records = append(res.Records, domain.WorkerRecord{Package: pkg, Platform: p, Success: true})
		}
	}
	if mode == "ok" {
		if err := process.WriteJSON(flags[process.ResultFileFlag], res); err != nil {
			fmt.Println(err)
			return 1
		}
	}
	return 0
}

func spec() domain.WorkerSpec {
	return domain.WorkerSpec{
		Index:     2,
		Packages:  domain.NewPackageIDs([]string{"/Game/Rock", "/Game/Sky"}),
		Platforms: domain.NewPlatformSet(domain.NewPlatformID("Windows")),
		ExtraArgs: []string{"--verbose"},
	}
}

func waitExited(t *testing.T, w ports.Worker) int {
	t.Helper()
	var code int
	require.Eventually(t, func() bool {
		var done bool
		code, done = w.Exited()
		return done
	}, 10*time.Second, 10*time.Millisecond)
	return code
}

func newLauncher(t *testing.T, mode string, opts ...process.Option) (*process.Launcher, string) {
	t.Helper()
	exe, err := os.Executable()
	require.NoError(t, err)
	dir := t.TempDir()
	opts = append(opts, process.WithEnv(childModeEnv+"="+mode))
	return process.NewLauncher(exe, t.TempDir(), dir, opts...), dir
}

func TestLauncher_Success(t *testing.T) {
	t.Parallel()

	l, dir := newLauncher(t, "ok")
	w, err := l.Launch(context.Background(), spec())
	require.NoError(t, err)
	assert.Equal(t, 2, w.Index())

	assert.Equal(t, 0, waitExited(t, w))
	assert.Equal(t, []string{"cooking 2 packages for Windows"}, w.Output())
	assert.Empty(t, w.Output(), "output is handed out once")

	res, err := w.Result()
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "/game/rock", res.Records[0].Package.String())
	assert.True(t, res.Records[1].Success)

	require.NoError(t, w.Release())
	require.NoError(t, w.Release())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "release removes the exchange files")
}

func TestLauncher_Failure(t *testing.T) {
	t.Parallel()

	l, _ := newLauncher(t, "fail")
	w, err := l.Launch(context.Background(), spec())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Release() })

	assert.Equal(t, 3, waitExited(t, w))
	assert.Equal(t, []string{"out of memory"}, w.Output())

	_, err = w.Result()
	require.ErrorIs(t, err, domain.ErrWorkerResultReadFailed)
}

func TestLauncher_MissingResult(t *testing.T) {
	t.Parallel()

	l, _ := newLauncher(t, "noresult")
	w, err := l.Launch(context.Background(), spec())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Release() })

	assert.Equal(t, 0, waitExited(t, w))
	_, err = w.Result()
	require.ErrorIs(t, err, domain.ErrWorkerResultReadFailed)
}

func TestLauncher_ReleaseKillsRunningChild(t *testing.T) {
	t.Parallel()

	l, _ := newLauncher(t, "hang")
	w, err := l.Launch(context.Background(), spec())
	require.NoError(t, err)

	_, done := w.Exited()
	assert.False(t, done)
	_, err = w.Result()
	require.Error(t, err)

	require.NoError(t, w.Release())
	code, done := w.Exited()
	assert.True(t, done)
	assert.NotEqual(t, 0, code)
}

func TestLauncher_PTY(t *testing.T) {
	t.Parallel()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	_ = ptmx.Close()
	_ = tty.Close()

	l, _ := newLauncher(t, "ok", process.WithPTY(true))
	w, err := l.Launch(context.Background(), spec())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Release() })

	assert.Equal(t, 0, waitExited(t, w))
	assert.Contains(t, w.Output(), "cooking 2 packages for Windows")
}

func TestLauncher_StartFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := process.NewLauncher("/nonexistent/cook", t.TempDir(), dir)
	_, err := l.Launch(context.Background(), spec())
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadResponse(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/resp.json"
	require.NoError(t, process.WriteJSON(path, domain.WorkerResponse{
		Packages:  domain.NewPackageIDs([]string{"/Game/Rock"}),
		Platforms: []string{"PS5", "Windows"},
	}))

	got, err := process.ReadResponse(path)
	require.NoError(t, err)
	assert.Equal(t, domain.NewPackageIDs([]string{"/game/rock"}), got.Packages)
	assert.Equal(t, "PS5,Windows", got.Platforms.String())

	_, err = process.ReadResponse(t.TempDir() + "/missing.json")
	require.Error(t, err)
}
