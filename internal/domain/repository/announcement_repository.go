package repository

import (
	"context"
	"errors"

	"beerhaus/internal/domain/entity"
)

// ErrAnnouncementNotFound is returned when an announcement id does not exist.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository defines the operations on the announcements collection.
type AnnouncementRepository interface {
	// Create stores a new announcement and returns its generated id.
	Create(ctx context.Context, announcement *entity.Announcement) (string, error)

	// FindByID retrieves a single announcement with its comments.
	FindByID(ctx context.Context, id string) (*entity.Announcement, error)

	// ListRecent returns at most limit announcements, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Announcement, error)

	// ReplaceComments overwrites the comment list of an announcement.
	ReplaceComments(ctx context.Context, id string, comments []*entity.Comment) error
}
