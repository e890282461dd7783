package firestoredb

import (
	"context"

	"beerhaus/internal/domain/entity"
	"beerhaus/internal/domain/repository"
	"beerhaus/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// announcementRepository implements the domain.AnnouncementRepository interface using Firestore.
type announcementRepository struct {
	client *firestore.Client
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(client *firestore.Client) repository.AnnouncementRepository {
	return &announcementRepository{client: client}
}

func (repo *announcementRepository) announcements() *firestore.CollectionRef {
	return repo.client.Collection(model.AnnouncementsCollection)
}

// Create adds a document with a generated id.
func (repo *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) (string, error) {
	ref, _, err := repo.announcements().Add(ctx, fromAnnouncementDomain(announcement))
	if err != nil {
		return "", errors.Wrap(err, "failed to create announcement")
	}

	return ref.ID, nil
}

// FindByID retrieves a single announcement.
func (repo *announcementRepository) FindByID(ctx context.Context, id string) (*entity.Announcement, error) {
	snapshot, err := repo.announcements().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to find announcement by id")
	}

	return decodeAnnouncement(snapshot)
}

// ListRecent returns the newest announcements first.
func (repo *announcementRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	iter := repo.announcements().
		OrderBy(model.AnnouncementFieldTimestamp, firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	announcements := make([]*entity.Announcement, 0, limit)
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list announcements")
		}

		announcement, err := decodeAnnouncement(snapshot)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, announcement)
	}

	return announcements, nil
}

// ReplaceComments overwrites the whole comments array. The update fails with
// NotFound when the document does not exist.
func (repo *announcementRepository) ReplaceComments(ctx context.Context, id string, comments []*entity.Comment) error {
	_, err := repo.announcements().Doc(id).Update(ctx, []firestore.Update{
		{Path: model.AnnouncementFieldComments, Value: fromCommentsDomain(comments)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrAnnouncementNotFound
		}

		return errors.Wrap(err, "failed to update comments")
	}

	return nil
}

func decodeAnnouncement(snapshot *firestore.DocumentSnapshot) (*entity.Announcement, error) {
	announcementM := new(model.AnnouncementModel)
	if err := snapshot.DataTo(announcementM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode announcement %s", snapshot.Ref.ID)
	}
	announcementM.ID = snapshot.Ref.ID

	return toAnnouncementDomain(announcementM), nil
}

func toAnnouncementDomain(data *model.AnnouncementModel) *entity.Announcement {
	if data == nil {
		return nil
	}

	comments := make([]*entity.Comment, 0, len(data.Comments))
	for _, c := range data.Comments {
		comments = append(comments, &entity.Comment{
			Text:      c.Text,
			Author:    c.Author,
			AuthorPic: c.AuthorPic,
			Timestamp: c.Timestamp,
		})
	}

	return &entity.Announcement{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Author:    data.Author,
		Timestamp: data.Timestamp,
		Comments:  comments,
	}
}

func fromAnnouncementDomain(data *entity.Announcement) *model.AnnouncementModel {
	if data == nil {
		return nil
	}

	return &model.AnnouncementModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Author:    data.Author,
		Timestamp: data.Timestamp,
		Comments:  fromCommentsDomain(data.Comments),
	}
}

// fromCommentsDomain never returns nil so an empty list is stored as an empty array.
func fromCommentsDomain(comments []*entity.Comment) []model.CommentModel {
	result := make([]model.CommentModel, 0, len(comments))
	for _, c := range comments {
		if c == nil {
			continue
		}
		result = append(result, model.CommentModel{
			Text:      c.Text,
			Author:    c.Author,
			AuthorPic: c.AuthorPic,
			Timestamp: c.Timestamp,
		})
	}

	return result
}
