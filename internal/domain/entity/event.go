package entity

import "time"

// CommunityEventType names an event published after a community write.
type CommunityEventType string

const (
	EventAnnouncementPosted CommunityEventType = "announcement.posted"
	EventCommentAdded       CommunityEventType = "comment.added"
)

// Known reports whether t is one of the published event types.
func (t CommunityEventType) Known() bool {
	switch t {
	case EventAnnouncementPosted, EventCommentAdded:
		return true
	default:
		return false
	}
}

// CommunityEvent is published best-effort after announcements and comments
// are persisted.
type CommunityEvent struct {
	RequestID      string             `json:"request_id,omitempty"`
	Type           CommunityEventType `json:"type"`
	AnnouncementID string             `json:"announcement_id"`
	Title          string             `json:"title,omitempty"`
	Author         string             `json:"author"`
	AuthorUID      string             `json:"author_uid"`
	OccurredAt     time.Time          `json:"occurred_at"`
}
