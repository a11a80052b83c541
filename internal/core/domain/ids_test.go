package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/core/domain"
)

func TestStandardizePackagePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already standard", in: "/game/maps/foo", want: "/game/maps/foo"},
		{name: "mixed case", in: "/Game/Maps/Foo", want: "/game/maps/foo"},
		{name: "backslashes", in: `\Game\Maps\Foo`, want: "/game/maps/foo"},
		{name: "map extension", in: "/Game/Maps/Foo.umap", want: "/game/maps/foo"},
		{name: "asset extension upper case", in: "/Game/Props/Bar.UASSET", want: "/game/props/bar"},
		{name: "missing leading slash", in: "Game/Props/Bar", want: "/game/props/bar"},
		{name: "trailing slash and spaces", in: "  /Game/Props/  ", want: "/game/props"},
		{name: "dot segments", in: "/Game/Props/../Maps/Foo", want: "/game/maps/foo"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.StandardizePackagePath(tt.in))
		})
	}
}

func TestPackageID_CaseInsensitiveEquality(t *testing.T) {
	a := domain.NewPackageID("/Game/Maps/MapA")
	b := domain.NewPackageID("/game/maps/mapa.umap")

	assert.Equal(t, a, b)

	m := map[domain.PackageID]int{a: 1}
	m[b]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[a])
}

func TestPackageID_Zero(t *testing.T) {
	var zero domain.PackageID
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
	assert.True(t, domain.NewPackageID("").IsZero())
	assert.False(t, domain.NewPackageID("/Game/A").IsZero())
}

func TestPackageID_JSONKeys(t *testing.T) {
	in := map[domain.PackageID]bool{domain.NewPackageID("/Game/A"): true}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"/game/a": true}`, string(data))

	var out map[domain.PackageID]bool
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
