package scheduler

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanSandbox prepares the sandbox of platforms for a new cook.
//
// A full clean wipes every artifact and forgets the cooked state of the
// platforms. An iterative clean keeps artifacts whose manifest hash still
// matches the current package hash, marks them cooked and removes the rest.
// A missing manifest or a settings version change falls back to a full clean.
// It returns the number of artifacts kept.
func (s *Scheduler) CleanSandbox(
	ctx context.Context,
	platforms domain.PlatformSet,
	iterative bool,
	dlc string,
) (int, error) {
	s.cookMu.Lock()
	defer s.cookMu.Unlock()
	return s.cleanSandbox(ctx, platforms, iterative, dlc)
}

func (s *Scheduler) cleanSandbox(
	ctx context.Context,
	platforms domain.PlatformSet,
	iterative bool,
	dlc string,
) (int, error) {
	kept := 0
	for _, p := range platforms.Sorted() {
		if !iterative {
			if err := s.wipe(p); err != nil {
				return kept, err
			}
			continue
		}

		n, err := s.cleanIterative(ctx, p, dlc)
		if err != nil {
			return kept, err
		}
		kept += n
	}
	return kept, nil
}

func (s *Scheduler) wipe(p domain.PlatformID) error {
	if err := s.host.Sandbox.Wipe(p); err != nil {
		return zerr.With(errors.Join(domain.ErrSandboxCleanFailed, err), "platform", p.String())
	}
	s.ClearPlatformCookedData(p)
	return nil
}

func (s *Scheduler) cleanIterative(ctx context.Context, p domain.PlatformID, dlc string) (int, error) {
	m, err := s.host.Manifests.Get(ctx, domain.ManifestKey{Platform: p, DLC: dlc})
	if err != nil {
		s.host.Logger.Warn(fmt.Sprintf("failed to read manifest for %s, cooking from scratch: %v", p, err))
		return 0, s.wipe(p)
	}
	if m == nil {
		return 0, s.wipe(p)
	}
	if m.SettingsVersion != s.host.Config.SettingsVersion {
		s.host.Logger.Info(fmt.Sprintf("settings version of %s changed from %q to %q, cooking from scratch",
			p, m.SettingsVersion, s.host.Config.SettingsVersion))
		return 0, s.wipe(p)
	}

	s.ClearPlatformCookedData(p)

	kept := 0
	for _, entry := range m.Entries {
		keep := entry.Success && entry.Hash != "" && s.host.Sandbox.Exists(entry.Package, p)
		if keep {
			hash, err := s.host.Hasher.Hash(ctx, entry.Package, s.host.Config.SettingsVersion)
			keep = err == nil && hash == entry.Hash
		}
		if keep {
			s.registry.MarkCooked(entry.Package, p, true)
			kept++
			continue
		}
		if err := s.host.Sandbox.Remove(entry.Package, p); err != nil {
			return kept, zerr.With(errors.Join(domain.ErrSandboxCleanFailed, err), "package", entry.Package.String())
		}
	}
	return kept, nil
}
