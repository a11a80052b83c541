package domain

// FilePlatformRequest asks for one package to be cooked for a set of platforms.
// A request with an empty platform set is void and is never stored.
type FilePlatformRequest struct {
	Package   PackageID
	Platforms PlatformSet
}

// NewFilePlatformRequest builds a request for pkg on the given platforms.
func NewFilePlatformRequest(pkg PackageID, platforms ...PlatformID) FilePlatformRequest {
	return FilePlatformRequest{
		Package:   pkg,
		Platforms: NewPlatformSet(platforms...),
	}
}

// IsValid reports whether the request names a package and at least one platform.
func (r FilePlatformRequest) IsValid() bool {
	return !r.Package.IsZero() && r.Platforms.Len() > 0
}

// FileResponse is returned to a network client for a cooked package.
type FileResponse struct {
	Package  PackageID
	Platform PlatformID
	Data     []byte
	// Unsolicited lists packages cooked for the platform since the previous
	// response, which the client has not asked for yet.
	Unsolicited []PackageID
}

// CookRecord holds the terminal cook results of one package.
// A platform entry exists only after an attempt for that pair terminated.
type CookRecord struct {
	Package   PackageID
	Platforms map[PlatformID]bool
}

// Succeeded reports whether the record holds a successful entry for p.
func (r CookRecord) Succeeded(p PlatformID) bool {
	return r.Platforms[p]
}

// Attempted reports whether the record holds any entry for p.
func (r CookRecord) Attempted(p PlatformID) bool {
	_, ok := r.Platforms[p]
	return ok
}

// SaveStatus is the outcome reported by a platform serializer.
type SaveStatus uint8

const (
	// SaveSuccess indicates the artifact was written.
	SaveSuccess SaveStatus = iota
	// SaveUpToDate indicates an existing artifact was already current.
	SaveUpToDate
	// SaveError indicates the artifact could not be written.
	SaveError
)

// String returns the status name.
func (s SaveStatus) String() string {
	switch s {
	case SaveSuccess:
		return "success"
	case SaveUpToDate:
		return "up_to_date"
	case SaveError:
		return "error"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the status leaves a valid artifact behind.
func (s SaveStatus) Succeeded() bool {
	return s == SaveSuccess || s == SaveUpToDate
}
