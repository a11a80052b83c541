package domain

import "time"

const (
	// DefaultPackagesPerGC is the number of saved packages that triggers a collection.
	DefaultPackagesPerGC = 50
	// DefaultIdleTimeToGC is the idle time after which a collection runs.
	DefaultIdleTimeToGC = 20 * time.Second
	// DefaultMaxMemoryAllowance is the memory ceiling that forces a collection (8 GB).
	DefaultMaxMemoryAllowance uint64 = 8 << 30
	// DefaultFullGCAssetTag is the class tag whose presence triggers a full collection.
	DefaultFullGCAssetTag = "World"
	// DefaultTimeSlice bounds the work done by one scheduler tick.
	DefaultTimeSlice = 100 * time.Millisecond
	// DefaultMaxPackagesPerTick bounds the number of saves done by one tick.
	DefaultMaxPackagesPerTick = 30
	// DefaultContentMount is the package path prefix of the content root.
	DefaultContentMount = "/Game"
	// DefaultServerAddr is the listen address of the network file server.
	DefaultServerAddr = "127.0.0.1:41899"
	// DefaultSettingsVersion is used when the configuration names none.
	DefaultSettingsVersion = "1"
)

// Manifest store backends.
const (
	ManifestBackendJSON   = "json"
	ManifestBackendSQLite = "sqlite"
)

// Child cooker modes.
const (
	ChildModeProcess   = "process"
	ChildModeInProcess = "inprocess"
)

// Telemetry backends.
const (
	TelemetryNone     = "none"
	TelemetryOTel     = "otel"
	TelemetryProgrock = "progrock"
)

// MemorySettings configures the memory pressure monitor. Zero values disable a trigger.
type MemorySettings struct {
	PackagesPerGC      int
	IdleTimeToGC       time.Duration
	MaxMemoryAllowance uint64
	FullGCAssetTags    []string
}

// TickSettings bounds a single scheduler tick.
type TickSettings struct {
	TimeSlice          time.Duration
	MaxPackagesPerTick int
}

// ServerSettings configures the network file server.
type ServerSettings struct {
	Addr        string
	CORSOrigins []string
	AccessLog   string
}

// Config is the validated project configuration.
type Config struct {
	// Root is the absolute project root.
	Root string
	// ContentRoot is the absolute directory holding source packages.
	ContentRoot string
	// ContentMount is the package path prefix that maps to ContentRoot.
	ContentMount string
	// SandboxDir is the absolute directory receiving cooked artifacts.
	SandboxDir string
	// Platforms are the default cook targets.
	Platforms []PlatformID
	// SettingsVersion invalidates every cooked artifact when it changes.
	SettingsVersion string
	// AlwaysCook lists packages added to every book session.
	AlwaysCook []PackageID
	// Children is the default number of child cookers for book sessions.
	Children        int
	Memory          MemorySettings
	Tick            TickSettings
	Server          ServerSettings
	ManifestBackend string
	Telemetry       string
	// ChildMode selects separate processes or goroutines for child cookers.
	ChildMode string
}

// DefaultConfig returns the configuration used for every unset field.
func DefaultConfig() Config {
	return Config{
		ContentMount:    DefaultContentMount,
		SettingsVersion: DefaultSettingsVersion,
		Memory: MemorySettings{
			PackagesPerGC:      DefaultPackagesPerGC,
			IdleTimeToGC:       DefaultIdleTimeToGC,
			MaxMemoryAllowance: DefaultMaxMemoryAllowance,
			FullGCAssetTags:    []string{DefaultFullGCAssetTag},
		},
		Tick: TickSettings{
			TimeSlice:          DefaultTimeSlice,
			MaxPackagesPerTick: DefaultMaxPackagesPerTick,
		},
		Server: ServerSettings{
			Addr: DefaultServerAddr,
		},
		ManifestBackend: ManifestBackendJSON,
		Telemetry:       TelemetryOTel,
		ChildMode:       ChildModeProcess,
	}
}

// PlatformSet returns the default cook targets as a set.
func (c *Config) PlatformSet() PlatformSet {
	return NewPlatformSet(c.Platforms...)
}
