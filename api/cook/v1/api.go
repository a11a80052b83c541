// Package cookv1 defines the JSON messages of the cook server HTTP API.
package cookv1

const (
	// PackageHeader carries the standardized path of a served package.
	PackageHeader = "X-Cook-Package"
	// UnsolicitedHeader is repeated once per package cooked for the platform
	// since the previous response.
	UnsolicitedHeader = "X-Cook-Unsolicited"
)

// StatusResponse is returned by GET /v1/status.
type StatusResponse struct {
	Pending   int    `json:"pending"`
	HasErrors bool   `json:"has_errors"`
	State     string `json:"state"`
	Session   string `json:"session,omitempty"`
}

// ManifestResponse is returned by GET /v1/manifest/{platform}.
type ManifestResponse struct {
	Platform string   `json:"platform"`
	Packages []string `json:"packages"`
}

// BookRequest is the body of POST /v1/book.
type BookRequest struct {
	Platforms          []string `json:"platforms,omitempty"`
	Maps               []string `json:"maps,omitempty"`
	AllMaps            bool     `json:"all_maps,omitempty"`
	Directories        []string `json:"directories,omitempty"`
	Packages           []string `json:"packages,omitempty"`
	DLC                string   `json:"dlc,omitempty"`
	BasedOnRelease     string   `json:"based_on_release,omitempty"`
	CreateRelease      string   `json:"create_release,omitempty"`
	Iterative          bool     `json:"iterative,omitempty"`
	Children           int      `json:"children,omitempty"`
	MapDependencyGraph bool     `json:"map_dependency_graph,omitempty"`
}

// BookResponse is returned by POST /v1/book.
type BookResponse struct {
	Session string `json:"session"`
}

// SessionResponse is returned by GET /v1/book/{id}.
type SessionResponse struct {
	Session string `json:"session"`
	Running bool   `json:"running"`
}

// DirtyRequest is the body of POST /v1/dirty.
type DirtyRequest struct {
	Packages []string `json:"packages"`
}

// DirtyResponse is returned by POST /v1/dirty.
type DirtyResponse struct {
	Marked int `json:"marked"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
