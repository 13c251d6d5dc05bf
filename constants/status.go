package constants

// JobStatus is the canonical status for rows in generation_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // queued, waiting for the worker
	JobStatusProcessing JobStatus = "processing" // claimed by the worker
	JobStatusCompleted  JobStatus = "completed"  // terminal success
	JobStatusFailed     JobStatus = "failed"     // terminal failure
)

// JobStatuses holds the allowed values for the status field in GenerationJob.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// IsTerminal reports whether a job in this status will never transition again.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Course and lesson row statuses. New courses stay inactive until an editor
// reviews the generated content; lessons are active immediately.
const (
	CourseStatusInactive = "inactive"
	CourseStatusActive   = "active"
	LessonStatusActive   = "active"
)
