// Package config loads cook.yaml or cook.toml into a validated domain.Config.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	toml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest cook.yaml or cook.toml at or above cwd and returns
// the validated configuration. Unset fields take their defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Cookfile
	if err := readAndUnmarshal(configPath, &file); err != nil {
		return nil, err
	}
	return l.build(configPath, &file)
}

// findConfiguration walks up from cwd. cook.yaml wins over cook.toml in the same directory.
func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		for _, name := range []string{domain.ConfigFileName, domain.ConfigFileNameTOML} {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// readAndUnmarshal decodes the file by its extension.
func readAndUnmarshal(configPath string, target *Cookfile) error {
	// #nosec G304 -- configPath is found by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if filepath.Ext(configPath) == ".toml" {
		err = toml.Unmarshal(data, target)
	} else {
		err = yaml.Unmarshal(data, target)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", configPath)
	}
	return nil
}

func (l *Loader) build(configPath string, file *Cookfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Root = resolvePath(filepath.Dir(configPath), file.Root)
	cfg.ContentRoot = resolvePath(cfg.Root, orDefault(file.Content, domain.DefaultContentDir))
	cfg.SandboxDir = resolvePath(cfg.Root, orDefault(file.Sandbox, domain.DefaultSandboxDir))
	cfg.ContentMount = domain.StandardizePackagePath(orDefault(file.Mount, domain.DefaultContentMount))
	cfg.SettingsVersion = orDefault(file.SettingsVersion, cfg.SettingsVersion)
	cfg.ManifestBackend = orDefault(file.Manifests, cfg.ManifestBackend)
	cfg.Telemetry = orDefault(file.Telemetry, cfg.Telemetry)
	cfg.ChildMode = orDefault(file.ChildMode, cfg.ChildMode)
	cfg.Server.Addr = orDefault(file.Server.Addr, cfg.Server.Addr)
	cfg.Server.CORSOrigins = file.Server.CORSOrigins
	cfg.Server.AccessLog = domain.DefaultAccessLogPath(cfg.Root)
	if file.Server.AccessLog != "" {
		cfg.Server.AccessLog = resolvePath(cfg.Root, file.Server.AccessLog)
	}

	seen := make(map[string]bool, len(file.Platforms))
	for _, name := range file.Platforms {
		p := domain.NewPlatformID(name)
		if p.String() == "" {
			return nil, invalid("platforms", name)
		}
		if seen[p.String()] {
			l.Logger.Warn("platform " + p.String() + " is listed twice in " + filepath.Base(configPath))
			continue
		}
		seen[p.String()] = true
		cfg.Platforms = append(cfg.Platforms, p)
	}
	for _, path := range file.AlwaysCook {
		pkg := domain.NewPackageID(path)
		if pkg.IsZero() {
			return nil, invalid("always_cook", path)
		}
		cfg.AlwaysCook = append(cfg.AlwaysCook, pkg)
	}

	if file.Children != nil {
		if *file.Children < 0 {
			return nil, invalid("children", *file.Children)
		}
		cfg.Children = *file.Children
	}

	if err := applyMemory(&cfg.Memory, &file.Memory); err != nil {
		return nil, err
	}
	if err := applyTick(&cfg.Tick, &file.Tick); err != nil {
		return nil, err
	}

	if !slices.Contains([]string{domain.ManifestBackendJSON, domain.ManifestBackendSQLite}, cfg.ManifestBackend) {
		return nil, invalid("manifests", cfg.ManifestBackend)
	}
	if !slices.Contains(
		[]string{domain.TelemetryNone, domain.TelemetryOTel, domain.TelemetryProgrock},
		cfg.Telemetry,
	) {
		return nil, invalid("telemetry", cfg.Telemetry)
	}
	if !slices.Contains([]string{domain.ChildModeProcess, domain.ChildModeInProcess}, cfg.ChildMode) {
		return nil, invalid("child_mode", cfg.ChildMode)
	}
	return &cfg, nil
}

func applyMemory(dst *domain.MemorySettings, src *MemoryDTO) error {
	if src.PackagesPerGC != nil {
		if *src.PackagesPerGC < 0 {
			return invalid("memory.packages_per_gc", *src.PackagesPerGC)
		}
		dst.PackagesPerGC = *src.PackagesPerGC
	}
	if src.IdleTimeToGC != "" {
		d, err := parseDuration("memory.idle_time_to_gc", src.IdleTimeToGC)
		if err != nil {
			return err
		}
		dst.IdleTimeToGC = d
	}
	if src.MaxMemory != "" {
		n, err := humanize.ParseBytes(src.MaxMemory)
		if err != nil {
			return zerr.With(invalid("memory.max_memory", src.MaxMemory), "reason", err.Error())
		}
		dst.MaxMemoryAllowance = n
	}
	if src.FullGCAssetTags != nil {
		dst.FullGCAssetTags = src.FullGCAssetTags
	}
	return nil
}

func applyTick(dst *domain.TickSettings, src *TickDTO) error {
	if src.TimeSlice != "" {
		d, err := parseDuration("tick.time_slice", src.TimeSlice)
		if err != nil {
			return err
		}
		if d == 0 {
			return invalid("tick.time_slice", src.TimeSlice)
		}
		dst.TimeSlice = d
	}
	if src.MaxPackagesPerTick != nil {
		if *src.MaxPackagesPerTick < 0 {
			return invalid("tick.max_packages_per_tick", *src.MaxPackagesPerTick)
		}
		dst.MaxPackagesPerTick = *src.MaxPackagesPerTick
	}
	return nil
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, invalid(field, value)
	}
	return d, nil
}

func invalid(field string, value any) error {
	return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", field), "value", value)
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// resolvePath makes path absolute relative to base.
func resolvePath(base, path string) string {
	if path == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}
