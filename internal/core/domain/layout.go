package domain

import "path/filepath"

const (
	// CookDirName is the name of the internal state directory.
	CookDirName = ".cook"

	// ManifestsDirName is the directory of the JSON manifest store.
	ManifestsDirName = "manifests"

	// ManifestsDBName is the file of the SQLite manifest store.
	ManifestsDBName = "manifests.db"

	// ChildrenDirName holds child cooker response and result files.
	ChildrenDirName = "children"

	// AccessLogFile is the default HTTP access log file.
	AccessLogFile = "access.log"

	// ServerAddrFile records the listen address of a running cook server.
	ServerAddrFile = "server.addr"

	// ConfigFileName is the YAML project configuration file.
	ConfigFileName = "cook.yaml"

	// ConfigFileNameTOML is the TOML project configuration file.
	ConfigFileNameTOML = "cook.toml"

	// DependencyGraphFile is written into each platform sandbox when requested.
	DependencyGraphFile = "MapDependencyGraph.json"

	// DefaultSandboxDir is the sandbox directory relative to the project root.
	DefaultSandboxDir = "Saved/Cooked"

	// DefaultContentDir is the content directory relative to the project root.
	DefaultContentDir = "Content"

	// DLCDirName holds one directory per DLC, each with its own Content directory.
	DLCDirName = "DLC"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCookPath returns the internal state directory under root.
func DefaultCookPath(root string) string {
	return filepath.Join(root, CookDirName)
}

// DefaultManifestsPath returns the JSON manifest store directory under root.
func DefaultManifestsPath(root string) string {
	return filepath.Join(root, CookDirName, ManifestsDirName)
}

// DefaultManifestsDBPath returns the SQLite manifest database under root.
func DefaultManifestsDBPath(root string) string {
	return filepath.Join(root, CookDirName, ManifestsDBName)
}

// DefaultChildrenPath returns the child cooker scratch directory under root.
func DefaultChildrenPath(root string) string {
	return filepath.Join(root, CookDirName, ChildrenDirName)
}

// DefaultAccessLogPath returns the HTTP access log under root.
func DefaultAccessLogPath(root string) string {
	return filepath.Join(root, CookDirName, AccessLogFile)
}

// DLCContentPath returns the content directory of the named DLC under root.
func DLCContentPath(root, name string) string {
	return filepath.Join(root, DLCDirName, name, DefaultContentDir)
}

// DefaultServerAddrPath returns the server address file under root.
func DefaultServerAddrPath(root string) string {
	return filepath.Join(root, CookDirName, ServerAddrFile)
}
