// Package content reads source packages from the content directories of a
// project: the package index, the loader and the asset registry.
package content

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Source package extensions. Map packages use MapExt.
const (
	AssetExt = ".uasset"
	MapExt   = ".umap"
)

// mapClass is the class of a map package that names none.
const mapClass = "World"

// Header is the YAML document stored in a source package file.
type Header struct {
	// Class is the asset class of the primary object.
	Class string `yaml:"class"`
	// Imports lists the package paths referenced by this package.
	Imports []string `yaml:"imports,omitempty"`
	// Redirect turns the package into a redirector to another package path.
	Redirect string `yaml:"redirect,omitempty"`
	// Payload is the opaque body carried into cooked artifacts.
	Payload string `yaml:"payload,omitempty"`
}

// ReadHeader decodes the source package at path. An empty file is a package
// with no class, imports or payload.
func ReadHeader(path string) (*Header, error) {
	//nolint:gosec // Path comes from the content index
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package source"), "path", path)
	}

	var h Header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode package source"), "path", path)
	}
	return &h, nil
}
