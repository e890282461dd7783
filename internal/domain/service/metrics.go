package service

import "time"

// MetricsRecorder records service level counters.
type MetricsRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordAnnouncementPosted()
	RecordCommentAdded()
	RecordProfileSaved(withPicture bool)
	RecordCleanupFailure(operation string)
	RecordEventConsumed(eventType, outcome string)
}
