package usecase

import (
	"context"
	"time"

	"beerhaus/internal/domain/entity"
)

// AnnouncementUsecase defines the announcement feed and its comments.
type AnnouncementUsecase interface {
	// ListRecent returns the newest announcements first. A non-positive limit uses the configured default.
	ListRecent(ctx context.Context, limit int) ([]*entity.Announcement, error)
	// CreateAnnouncement validates and stores a new announcement and returns its id.
	CreateAnnouncement(ctx context.Context, input *CreateAnnouncementInput, author *entity.Identity) (string, error)
	// AddComment appends a comment to an existing announcement.
	AddComment(ctx context.Context, announcementID string, input *AddCommentInput, author *entity.Identity) (*entity.Comment, error)
}

// --- Input DTOs ---

// CreateAnnouncementInput defines the data required to post an announcement.
type CreateAnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AddCommentInput defines the data required to comment on an announcement.
type AddCommentInput struct {
	Text string `json:"text"`
}

// --- Views ---

// AnnouncementView is an announcement as shown to clients.
type AnnouncementView struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Author       string         `json:"author"`
	Timestamp    time.Time      `json:"timestamp"`
	CommentCount int            `json:"comment_count"`
	Comments     []*CommentView `json:"comments"`
}

// CommentView is a comment as shown to clients.
type CommentView struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	AuthorPic string    `json:"author_pic"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAnnouncementView converts an announcement for display, oldest comment first.
func NewAnnouncementView(announcement *entity.Announcement) *AnnouncementView {
	comments := make([]*CommentView, 0, len(announcement.Comments))
	for _, c := range announcement.Comments {
		comments = append(comments, NewCommentView(c))
	}

	return &AnnouncementView{
		ID:           announcement.ID,
		Title:        announcement.Title,
		Content:      announcement.Content,
		Author:       announcement.Author,
		Timestamp:    announcement.Timestamp,
		CommentCount: len(comments),
		Comments:     comments,
	}
}

// NewAnnouncementViews converts a feed page.
func NewAnnouncementViews(announcements []*entity.Announcement) []*AnnouncementView {
	views := make([]*AnnouncementView, 0, len(announcements))
	for _, a := range announcements {
		views = append(views, NewAnnouncementView(a))
	}

	return views
}

// NewCommentView converts a comment for display.
func NewCommentView(comment *entity.Comment) *CommentView {
	return &CommentView{
		Text:      comment.Text,
		Author:    comment.Author,
		AuthorPic: comment.AuthorPic,
		Timestamp: comment.Timestamp,
	}
}
