package domain

// WorkerSpec describes the partition handed to one child cooker.
type WorkerSpec struct {
	Index     int
	Packages  []PackageID
	Platforms PlatformSet
	ExtraArgs []string
}

// WorkerRecord is one terminal (package, platform) result reported by a child cooker.
type WorkerRecord struct {
	Package  PackageID  `json:"package"`
	Platform PlatformID `json:"platform"`
	Success  bool       `json:"success"`
	Hash     string     `json:"hash,omitempty"`
	UpToDate bool       `json:"up_to_date,omitempty"`
	IsMap    bool       `json:"is_map,omitempty"`
}

// WorkerResult is the full report of one child cooker.
type WorkerResult struct {
	Records []WorkerRecord `json:"records"`
}

// WorkerResponse is the request file content read by a child cooker.
type WorkerResponse struct {
	Packages  []PackageID `json:"packages"`
	Platforms []string    `json:"platforms"`
}
