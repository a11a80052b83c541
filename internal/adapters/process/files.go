package process

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
)

// WriteJSON writes v to path through a temporary file.
func WriteJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return zerr.Wrap(err, "failed to encode child cooker file")
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write child cooker file"), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write child cooker file"), "path", path)
	}
	return nil
}

// ReadJSON decodes the file at path into v.
func ReadJSON(path string, v any) error {
	//nolint:gosec // Path is handed over by the parent cooker
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read child cooker file"), "path", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode child cooker file"), "path", path)
	}
	return nil
}

// ReadResponse reads the partition a parent handed to a child cooker.
func ReadResponse(path string) (domain.WorkerSpec, error) {
	var resp domain.WorkerResponse
	if err := ReadJSON(path, &resp); err != nil {
		return domain.WorkerSpec{}, err
	}
	platforms := domain.NewPlatformSet()
	for _, p := range resp.Platforms {
		platforms.Add(domain.NewPlatformID(p))
	}
	return domain.WorkerSpec{Packages: resp.Packages, Platforms: platforms}, nil
}
