package config

// Cookfile is the structure of cook.yaml and cook.toml.
type Cookfile struct {
	Version         string    `yaml:"version" toml:"version"`
	Root            string    `yaml:"root" toml:"root"`
	Content         string    `yaml:"content" toml:"content"`
	Mount           string    `yaml:"mount" toml:"mount"`
	Sandbox         string    `yaml:"sandbox" toml:"sandbox"`
	Platforms       []string  `yaml:"platforms" toml:"platforms"`
	SettingsVersion string    `yaml:"settings_version" toml:"settings_version"`
	AlwaysCook      []string  `yaml:"always_cook" toml:"always_cook"`
	Children        *int      `yaml:"children" toml:"children"`
	Memory          MemoryDTO `yaml:"memory" toml:"memory"`
	Tick            TickDTO   `yaml:"tick" toml:"tick"`
	Server          ServerDTO `yaml:"server" toml:"server"`
	Manifests       string    `yaml:"manifests" toml:"manifests"`
	Telemetry       string    `yaml:"telemetry" toml:"telemetry"`
	ChildMode       string    `yaml:"child_mode" toml:"child_mode"`
}

// MemoryDTO configures garbage collection triggers. Sizes accept units ("8GB").
type MemoryDTO struct {
	PackagesPerGC   *int     `yaml:"packages_per_gc" toml:"packages_per_gc"`
	IdleTimeToGC    string   `yaml:"idle_time_to_gc" toml:"idle_time_to_gc"`
	MaxMemory       string   `yaml:"max_memory" toml:"max_memory"`
	FullGCAssetTags []string `yaml:"full_gc_asset_tags" toml:"full_gc_asset_tags"`
}

// TickDTO bounds a scheduler tick.
type TickDTO struct {
	TimeSlice          string `yaml:"time_slice" toml:"time_slice"`
	MaxPackagesPerTick *int   `yaml:"max_packages_per_tick" toml:"max_packages_per_tick"`
}

// ServerDTO configures the network file server.
type ServerDTO struct {
	Addr        string   `yaml:"addr" toml:"addr"`
	CORSOrigins []string `yaml:"cors_origins" toml:"cors_origins"`
	AccessLog   string   `yaml:"access_log" toml:"access_log"`
}
