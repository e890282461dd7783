package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	pictures *pictureStore
	metrics  service.MetricsRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ObjectStore service.ObjectStore
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		pictures: newPictureStore(params.ObjectStore, params.Metrics, params.Config),
		metrics:  params.Metrics,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the user document for userID.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*usecase.ProfileResult, error) {
	if userID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("user id is required"), "empty user id")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.ProfileResult{Exists: false}, nil
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return &usecase.ProfileResult{Exists: true, User: user}, nil
}

// SaveProfile merges input into the owner's document.
//
// A new picture is uploaded and signed before the merge. When the merge fails the
// new object is removed and the stored URL stays untouched; when it succeeds the
// superseded object is removed. Neither cleanup failure is returned.
func (srv *profileService) SaveProfile(ctx context.Context, owner *entity.Identity, input *usecase.SaveProfileInput) (*entity.User, error) {
	if owner == nil || owner.UID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "save profile without identity")
	}
	if err := srv.pictures.validate(input.Picture); err != nil {
		return nil, err
	}

	patch := buildUserPatch(owner, input, srv.now().UTC())

	var (
		current     *entity.User
		previousURL string
		newKey      string
	)
	if input.Picture != nil {
		loaded, err := srv.userRepo.FindByID(ctx, owner.UID)
		switch {
		case err == nil:
			current = loaded
			previousURL = current.PictureURL()
		case errors.Is(err, repository.ErrUserNotFound):
		default:
			return nil, errors.Wrap(err, "failed to load current profile")
		}

		key, signedURL, err := srv.pictures.upload(ctx, owner.UID, input.Picture, srv.log(ctx))
		if err != nil {
			return nil, err
		}
		newKey = key
		patch.ProfilePicURL = &signedURL
	}

	if err := srv.userRepo.Merge(ctx, owner.UID, patch); err != nil {
		srv.log(ctx).Error("Failed to save profile", slog.String("user_id", owner.UID), slog.Any("error", err))
		if newKey != "" {
			srv.pictures.remove(ctx, newKey, "orphan_picture", srv.log(ctx))
		}

		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	if newKey != "" {
		srv.pictures.removeSuperseded(ctx, previousURL, newKey, srv.log(ctx))
	}
	srv.metrics.RecordProfileSaved(newKey != "")

	saved, err := srv.userRepo.FindByID(ctx, owner.UID)
	if err != nil {
		// The merge is committed; answer with what was written.
		srv.log(ctx).Warn("Failed to reload saved profile", slog.String("user_id", owner.UID), slog.Any("error", err))
		saved = savedFromPatch(owner, current, patch)
	}

	srv.log(ctx).Info("Profile saved", slog.String("user_id", owner.UID), slog.Bool("picture_replaced", newKey != ""))

	return saved, nil
}

// buildUserPatch converts the form input into a merge patch. The account email
// always comes from the identity.
func buildUserPatch(owner *entity.Identity, input *usecase.SaveProfileInput, now time.Time) *entity.UserPatch {
	email := owner.Email
	patch := &entity.UserPatch{
		Email:       &email,
		FirstName:   trimmed(input.FirstName),
		LastName:    trimmed(input.LastName),
		Company:     trimmed(input.Company),
		Position:    trimmed(input.Position),
		Phone:       trimmed(input.Phone),
		Bio:         trimmed(input.Bio),
		LastUpdated: now,
	}
	if input.Skills != nil {
		patch.Skills = entity.ParseSkills(*input.Skills)
	}
	if !input.Address.IsEmpty() {
		patch.Address = &entity.AddressPatch{
			Street:  trimmed(input.Address.Street),
			City:    trimmed(input.Address.City),
			State:   trimmed(input.Address.State),
			ZipCode: trimmed(input.Address.ZipCode),
			Country: trimmed(input.Address.Country),
		}
	}

	return patch
}

// savedFromPatch rebuilds the saved document from the pre-save copy, if any,
// and the patch that was merged into it.
func savedFromPatch(owner *entity.Identity, current *entity.User, patch *entity.UserPatch) *entity.User {
	user := &entity.User{ID: owner.UID, Email: owner.Email}
	if current != nil {
		copied := *current
		user = &copied
	}
	patch.ApplyTo(user)

	return user
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
