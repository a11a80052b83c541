package scheduler

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
)

// HandleFileRequest cooks path for platform at the front of the queue and
// blocks until the cook terminates. A package that failed before is cooked
// again unless a book session is running, in which case the failure stands.
func (s *Scheduler) HandleFileRequest(
	ctx context.Context,
	path string,
	platform domain.PlatformID,
) (*domain.FileResponse, error) {
	path = strings.TrimSpace(path)
	if path == "" || platform.String() == "" {
		return nil, domain.ErrInvalidPackagePath
	}
	pkg := domain.NewPackageID(path)
	if pkg.IsZero() {
		return nil, domain.ErrInvalidPackagePath
	}

	rec, ok := s.registry.Record(pkg)
	if ok && rec.Attempted(platform) && !rec.Succeeded(platform) {
		if s.currentSession() != nil {
			return s.failedResponse(pkg, platform)
		}
		s.registry.Unmark(pkg, platform)
	}

	ch, stop := s.registry.Watch(pkg, platform)
	defer stop()
	var success bool
	select {
	case success = <-ch:
	default:
		s.RequestCook(pkg, domain.NewPlatformSet(platform), true)
		select {
		case success = <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if !success {
		return s.failedResponse(pkg, platform)
	}

	data, err := s.host.Sandbox.Read(pkg, platform)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrArtifactReadFailed, err), "package", pkg.String())
	}
	return &domain.FileResponse{
		Package:     pkg,
		Platform:    platform,
		Data:        data,
		Unsolicited: s.unsolicited.Take(platform),
	}, nil
}

func (s *Scheduler) failedResponse(pkg domain.PackageID, platform domain.PlatformID) (*domain.FileResponse, error) {
	resp := &domain.FileResponse{
		Package:     pkg,
		Platform:    platform,
		Unsolicited: s.unsolicited.Take(platform),
	}
	return resp, domain.ErrCookFailed
}
