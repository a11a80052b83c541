package domain

// CookReport summarizes a cook-by-the-book session.
type CookReport struct {
	Session string
	// Attempted counts packages for which a save was attempted.
	Attempted int
	// Failed lists packages with at least one failed platform, sorted.
	Failed []PackageID
	// SkippedUpToDate counts packages that needed no work.
	SkippedUpToDate int
	// KeptFromPreviousCook counts artifacts reused by an iterative cook.
	KeptFromPreviousCook int
	// ChildFailures lists the indices of child cookers that exited non-zero.
	ChildFailures []int
	// Cancelled is set when the session was torn down before finishing.
	Cancelled bool
}

// Succeeded reports whether the session finished without failures.
func (r CookReport) Succeeded() bool {
	return len(r.Failed) == 0 && len(r.ChildFailures) == 0 && !r.Cancelled
}

// Status is the scheduler state reported to network clients.
type Status struct {
	Pending   int
	HasErrors bool
	State     SchedulerState
	// Session is the handle of the running book session, if any.
	Session string
}
