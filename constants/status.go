package constants

// JobStatus is the canonical status for a document extraction job.
type JobStatus string

// Stable values (these exact strings appear in batch reports).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // waiting for a worker
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusExtracted JobStatus = "EXTRACTED" // fields extracted
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)
