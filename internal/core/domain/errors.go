package domain

import "go.trai.ch/zerr"

var (
	// ErrLoadFailed is recorded when a source package cannot be read or decoded.
	ErrLoadFailed = zerr.New("failed to load package")

	// ErrSaveFailed is recorded when a platform serializer fails for a package.
	ErrSaveFailed = zerr.New("failed to save cooked package")

	// ErrChildProcessFailed is recorded when a child cooker exits with a non-zero code.
	ErrChildProcessFailed = zerr.New("child cooker failed")

	// ErrChildSpawnFailed is returned when no child cooker could be started at all.
	ErrChildSpawnFailed = zerr.New("failed to spawn child cookers")

	// ErrResourceExhaustion marks a collection forced by the memory ceiling.
	ErrResourceExhaustion = zerr.New("memory ceiling exceeded")

	// ErrCancellationRequested marks a book session torn down on request.
	ErrCancellationRequested = zerr.New("cook cancelled")

	// ErrCookFailed is returned to network clients when a requested cook failed.
	ErrCookFailed = zerr.New("package cook failed")

	// ErrPackageNotFound is returned when a package path does not resolve to source content.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrInvalidPackagePath is returned for an empty or malformed package path.
	ErrInvalidPackagePath = zerr.New("invalid package path")

	// ErrNoPlatforms is returned when a cook is requested without target platforms.
	ErrNoPlatforms = zerr.New("no target platforms specified")

	// ErrSessionRunning is returned when a book session is started while another one runs.
	ErrSessionRunning = zerr.New("a cook by the book session is already running")

	// ErrSessionNotFound is returned for an unknown session handle.
	ErrSessionNotFound = zerr.New("cook session not found")

	// ErrSandboxCreateFailed is returned when the output sandbox cannot be created.
	ErrSandboxCreateFailed = zerr.New("failed to create cook sandbox")

	// ErrSandboxCleanFailed is returned when cooked output cannot be removed.
	ErrSandboxCleanFailed = zerr.New("failed to clean cook sandbox")

	// ErrArtifactReadFailed is returned when a cooked artifact cannot be read back.
	ErrArtifactReadFailed = zerr.New("failed to read cooked artifact")

	// ErrEnumerationFailed is returned when the package set of a book session cannot be collected.
	ErrEnumerationFailed = zerr.New("failed to collect files to cook")

	// ErrDependencyResolutionFailed is returned when the asset registry cannot answer a query.
	ErrDependencyResolutionFailed = zerr.New("failed to resolve package dependencies")

	// ErrHashFailed is returned when a package content hash cannot be computed.
	ErrHashFailed = zerr.New("failed to hash package")

	// ErrManifestReadFailed is returned when a manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read cook manifest")

	// ErrManifestWriteFailed is returned when a manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write cook manifest")

	// ErrManifestUnmarshalFailed is returned when a manifest cannot be decoded.
	ErrManifestUnmarshalFailed = zerr.New("failed to unmarshal cook manifest")

	// ErrManifestMarshalFailed is returned when a manifest cannot be encoded.
	ErrManifestMarshalFailed = zerr.New("failed to marshal cook manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file exists in the project root.
	ErrConfigNotFound = zerr.New("could not find cook.yaml or cook.toml")

	// ErrInvalidConfig is returned when a config value fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrWorkerResultReadFailed is returned when a child cooker result cannot be read.
	ErrWorkerResultReadFailed = zerr.New("failed to read child cooker result")

	// ErrWorkerResponseWriteFailed is returned when a child cooker response file cannot be written.
	ErrWorkerResponseWriteFailed = zerr.New("failed to write child cooker response file")

	// ErrServerFailed is returned when the network file server stops unexpectedly.
	ErrServerFailed = zerr.New("network file server failed")

	// ErrRemoteRequestFailed is returned when a request to a running cook server fails.
	ErrRemoteRequestFailed = zerr.New("cook server request failed")

	// ErrCookSessionFailed is returned when a book session finished with failures.
	ErrCookSessionFailed = zerr.New("cook by the book finished with failures")
)
