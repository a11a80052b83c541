package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/cmd/cook/commands"
	"go.trai.ch/cook/internal/app"
	"go.trai.ch/cook/internal/build"
	"go.trai.ch/cook/internal/core/domain"
)

type mockApp struct {
	calls []string
	err   error

	serve    app.ServeOptions
	book     app.BookOptions
	remote   app.RemoteOptions
	request  cookv1.BookRequest
	child    app.ChildOptions
	clean    app.CleanOptions
	platform string
	fetch    app.RequestOptions
	dirty    []string
}

func (m *mockApp) Serve(_ context.Context, opts app.ServeOptions) error {
	m.calls = append(m.calls, "serve")
	m.serve = opts
	return m.err
}

func (m *mockApp) Book(_ context.Context, opts app.BookOptions) error {
	m.calls = append(m.calls, "book")
	m.book = opts
	return m.err
}

func (m *mockApp) RemoteBook(_ context.Context, opts app.RemoteOptions, req cookv1.BookRequest) error {
	m.calls = append(m.calls, "remote-book")
	m.remote = opts
	m.request = req
	return m.err
}

func (m *mockApp) Child(_ context.Context, opts app.ChildOptions) error {
	m.calls = append(m.calls, "child")
	m.child = opts
	return m.err
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.calls = append(m.calls, "clean")
	m.clean = opts
	return m.err
}

func (m *mockApp) Status(_ context.Context, opts app.RemoteOptions) error {
	m.calls = append(m.calls, "status")
	m.remote = opts
	return m.err
}

func (m *mockApp) Manifest(_ context.Context, opts app.RemoteOptions, platform string) error {
	m.calls = append(m.calls, "manifest")
	m.remote = opts
	m.platform = platform
	return m.err
}

func (m *mockApp) Request(_ context.Context, opts app.RequestOptions) error {
	m.calls = append(m.calls, "request")
	m.fetch = opts
	return m.err
}

func (m *mockApp) Dirty(_ context.Context, opts app.RemoteOptions, packages []string) error {
	m.calls = append(m.calls, "dirty")
	m.remote = opts
	m.dirty = packages
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Book(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "book", "-C", "/proj",
			"-p", "Win64", "-p", "PS5",
			"-m", "Arena", "--dir", "/Game/UI", "--package", "/Game/Core/Mode",
			"--dlc", "Winter", "--based-on-release", "1.0",
			"-i", "--children", "3", "--ci", "--map-dependency-graph")
		require.NoError(t, err)

		require.Equal(t, []string{"book"}, m.calls)
		assert.Equal(t, "/proj", m.book.Root)
		assert.Equal(t, "linear", m.book.OutputMode)
		assert.Equal(t, 3, m.book.Children)
		assert.Equal(t, []domain.PlatformID{domain.NewPlatformID("Win64"), domain.NewPlatformID("PS5")}, m.book.Book.Platforms)
		assert.Equal(t, domain.AssetFilter{
			Maps:        []string{"Arena"},
			Directories: []string{"/Game/UI"},
			Packages:    []string{"/Game/Core/Mode"},
		}, m.book.Book.Filter)
		assert.Equal(t, "Winter", m.book.Book.DLCName)
		assert.Equal(t, "1.0", m.book.Book.BasedOnRelease)
		assert.True(t, m.book.Book.Iterative)
		assert.True(t, m.book.Book.MapDependencyGraph)
	})

	t.Run("defaults", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "book", "--all-maps")
		require.NoError(t, err)
		assert.Equal(t, ".", m.book.Root)
		assert.Equal(t, "auto", m.book.OutputMode)
		assert.Equal(t, -1, m.book.Children)
		assert.True(t, m.book.Book.Filter.AllMaps)
		assert.Nil(t, m.book.Book.Platforms)
	})

	t.Run("remote", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "book", "--remote", "--addr", "10.0.0.1:41899", "--all-maps", "-p", "Win64")
		require.NoError(t, err)
		require.Equal(t, []string{"remote-book"}, m.calls)
		assert.Equal(t, "10.0.0.1:41899", m.remote.Addr)
		assert.Equal(t, []string{"Win64"}, m.request.Platforms)
		assert.True(t, m.request.AllMaps)
		assert.Zero(t, m.request.Children)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "book", "--all-maps")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Serve(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "serve", "--addr", "127.0.0.1:0", "--watch=false", "--root", "/proj")
	require.NoError(t, err)
	assert.Equal(t, app.ServeOptions{Root: "/proj", Addr: "127.0.0.1:0", Watch: false}, m.serve)
}

func TestCommands_Child(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "child", "--response-file", "in.json", "--result-file", "out.json", "--root", "/proj")
	require.NoError(t, err)
	assert.Equal(t, app.ChildOptions{Root: "/proj", ResponseFile: "in.json", ResultFile: "out.json"}, m.child)

	_, err = execute(t, &mockApp{}, "child")
	require.Error(t, err)
}

func TestCommands_Clean(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "clean", "-p", "Win64", "--all")
	require.NoError(t, err)
	assert.Equal(t, []domain.PlatformID{domain.NewPlatformID("Win64")}, m.clean.Platforms)
	assert.True(t, m.clean.State)
}

func TestCommands_Remote(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		call  string
		check func(t *testing.T, m *mockApp)
	}{
		{
			name: "status",
			args: []string{"status", "--addr", "host:1"},
			call: "status",
			check: func(t *testing.T, m *mockApp) {
				t.Helper()
				assert.Equal(t, app.RemoteOptions{Root: ".", Addr: "host:1"}, m.remote)
			},
		},
		{
			name: "manifest",
			args: []string{"manifest", "Win64"},
			call: "manifest",
			check: func(t *testing.T, m *mockApp) {
				t.Helper()
				assert.Equal(t, "Win64", m.platform)
			},
		},
		{
			name: "request",
			args: []string{"request", "Win64", "/Game/Maps/Arena", "-o", "arena.bin"},
			call: "request",
			check: func(t *testing.T, m *mockApp) {
				t.Helper()
				assert.Equal(t, "Win64", m.fetch.Platform)
				assert.Equal(t, "/Game/Maps/Arena", m.fetch.Path)
				assert.Equal(t, "arena.bin", m.fetch.Out)
			},
		},
		{
			name: "dirty",
			args: []string{"dirty", "/Game/A", "/Game/B"},
			call: "dirty",
			check: func(t *testing.T, m *mockApp) {
				t.Helper()
				assert.Equal(t, []string{"/Game/A", "/Game/B"}, m.dirty)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			require.Equal(t, []string{tt.call}, m.calls)
			tt.check(t, m)
		})
	}
}

func TestCommands_ArgumentErrors(t *testing.T) {
	for _, args := range [][]string{
		{"request", "Win64"},
		{"dirty"},
		{"manifest"},
		{"book", "extra"},
	} {
		m := &mockApp{}
		_, err := execute(t, m, args...)
		require.Error(t, err, args)
		assert.Empty(t, m.calls)
	}
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "cook version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "cook version "+build.Version)
}
