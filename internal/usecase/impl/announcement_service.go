package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"beerhaus/config"
	deliverycontext "beerhaus/internal/delivery/context"
	"beerhaus/internal/domain/entity"
	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/domain/repository"
	"beerhaus/internal/domain/service"
	"beerhaus/internal/errors"
	"beerhaus/internal/usecase"

	"go.uber.org/fx"
)

// MaxTitleLength is the longest accepted announcement title, in characters.
const MaxTitleLength = 100

// announcementService implements the AnnouncementUsecase interface.
type announcementService struct {
	announcementRepo   repository.AnnouncementRepository
	userRepo           repository.UserRepository
	sanitizer          service.ContentSanitizer
	publisher          service.EventPublisher
	metrics            service.MetricsRecorder
	defaultLimit       int
	maxLimit           int
	placeholderBaseURL string
	logger             *slog.Logger
	now                func() time.Time
}

// AnnouncementServiceParams holds dependencies for AnnouncementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	AnnouncementRepo repository.AnnouncementRepository
	UserRepo         repository.UserRepository
	Sanitizer        service.ContentSanitizer
	Publisher        service.EventPublisher
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAnnouncementService is the constructor for announcementService.
func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	return &announcementService{
		announcementRepo:   params.AnnouncementRepo,
		userRepo:           params.UserRepo,
		sanitizer:          params.Sanitizer,
		publisher:          params.Publisher,
		metrics:            params.Metrics,
		defaultLimit:       params.Config.Feed.DefaultLimit,
		maxLimit:           params.Config.Feed.MaxLimit,
		placeholderBaseURL: params.Config.Avatar.PlaceholderBaseURL,
		logger:             params.Logger,
		now:                time.Now,
	}
}

func (srv *announcementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecent returns at most limit announcements, newest first.
func (srv *announcementService) ListRecent(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if srv.maxLimit > 0 && limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	announcements, err := srv.announcementRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}
	if announcements == nil {
		announcements = []*entity.Announcement{}
	}

	return announcements, nil
}

// CreateAnnouncement stores a new announcement attributed to author.
func (srv *announcementService) CreateAnnouncement(ctx context.Context, input *usecase.CreateAnnouncementInput, author *entity.Identity) (string, error) {
	if author == nil {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "post announcement without identity")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title and content are required"), "empty announcement")
	}

	title := srv.sanitizer.Sanitize(input.Title)
	content := srv.sanitizer.Sanitize(input.Content)
	if title == "" || content == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title and content are required"), "empty announcement after sanitizing")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title must be at most 100 characters"), "title too long")
	}

	name, _ := srv.resolveAuthor(ctx, author)

	announcement := &entity.Announcement{
		Title:     title,
		Content:   content,
		Author:    name,
		Timestamp: srv.now().UTC(),
		Comments:  []*entity.Comment{},
	}

	id, err := srv.announcementRepo.Create(ctx, announcement)
	if err != nil {
		return "", errors.Wrap(err, "failed to create announcement")
	}

	srv.metrics.RecordAnnouncementPosted()
	srv.log(ctx).Info("Announcement posted", slog.String("announcement_id", id), slog.String("author_uid", author.UID))

	srv.publish(ctx, &entity.CommunityEvent{
		Type:           entity.EventAnnouncementPosted,
		AnnouncementID: id,
		Title:          title,
		Author:         name,
		AuthorUID:      author.UID,
		OccurredAt:     announcement.Timestamp,
	})

	return id, nil
}

// AddComment reads the current comments, appends one and writes the list back.
// Two concurrent calls that read the same list keep only the later write.
func (srv *announcementService) AddComment(ctx context.Context, announcementID string, input *usecase.AddCommentInput, author *entity.Identity) (*entity.Comment, error) {
	if author == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "comment without identity")
	}
	if announcementID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("announcement id is required"), "empty announcement id")
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("comment text is required"), "empty comment")
	}

	text := srv.sanitizer.Sanitize(input.Text)
	if text == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("comment text is required"), "empty comment after sanitizing")
	}

	announcement, err := srv.announcementRepo.FindByID(ctx, announcementID)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAnnouncementNotFound, announcementID)
		}

		return nil, errors.Wrap(err, "failed to load announcement")
	}

	name, avatar := srv.resolveAuthor(ctx, author)
	comment := &entity.Comment{
		Text:      text,
		Author:    name,
		AuthorPic: avatar,
		Timestamp: srv.now().UTC(),
	}

	comments := make([]*entity.Comment, 0, len(announcement.Comments)+1)
	comments = append(comments, announcement.Comments...)
	comments = append(comments, comment)

	if err := srv.announcementRepo.ReplaceComments(ctx, announcementID, comments); err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAnnouncementNotFound, announcementID)
		}

		return nil, errors.Wrap(err, "failed to append comment")
	}

	srv.metrics.RecordCommentAdded()
	srv.log(ctx).Info("Comment added",
		slog.String("announcement_id", announcementID),
		slog.String("author_uid", author.UID),
		slog.Int("comment_count", len(comments)),
	)

	srv.publish(ctx, &entity.CommunityEvent{
		Type:           entity.EventCommentAdded,
		AnnouncementID: announcementID,
		Title:          announcement.Title,
		Author:         name,
		AuthorUID:      author.UID,
		OccurredAt:     comment.Timestamp,
	})

	return comment, nil
}

// resolveAuthor looks up the author's stored profile. Lookup failures fall back
// to the identity alone.
func (srv *announcementService) resolveAuthor(ctx context.Context, author *entity.Identity) (name, avatar string) {
	user, err := srv.userRepo.FindByID(ctx, author.UID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Failed to load author profile", slog.String("user_id", author.UID), slog.Any("error", err))
		}
		user = nil
	}

	return entity.ResolveDisplayIdentity(user, author, srv.placeholderBaseURL)
}

func (srv *announcementService) publish(ctx context.Context, event *entity.CommunityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishCommunityEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish community event",
			slog.String("type", string(event.Type)),
			slog.String("announcement_id", event.AnnouncementID),
			slog.Any("error", err),
		)
	}
}
