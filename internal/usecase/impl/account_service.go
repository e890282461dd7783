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

// accountService implements the AccountUsecase interface.
type accountService struct {
	identity service.IdentityProvider
	userRepo repository.UserRepository
	pictures *pictureStore
	logger   *slog.Logger
	now      func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Identity    service.IdentityProvider
	UserRepo    repository.UserRepository
	ObjectStore service.ObjectStore
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		identity: params.Identity,
		userRepo: params.UserRepo,
		pictures: newPictureStore(params.ObjectStore, params.Metrics, params.Config),
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers the identity, stores an optional picture and writes the
// initial user document with every submitted profile field. A failed picture
// upload does not fail the signup; the member can add a picture from the
// profile page.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email and password are required"), "incomplete signup")
	}
	if err := srv.pictures.validate(input.Picture); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	user := newSignUpUser(email, input)

	uid, err := srv.identity.CreateAccount(ctx, service.CreateAccountInput{
		Email:       email,
		Password:    input.Password,
		DisplayName: user.FullName(),
	})
	if err != nil {
		if errors.Is(err, service.ErrIdentityExists) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, email)
		}

		return nil, errors.Wrap(err, "failed to create identity")
	}

	user.ID = uid
	user.CreatedAt = srv.now().UTC()

	if input.Picture != nil {
		_, signedURL, err := srv.pictures.upload(ctx, uid, input.Picture, srv.log(ctx))
		if err != nil {
			srv.log(ctx).Warn("Profile picture upload failed during signup", slog.String("user_id", uid), slog.Any("error", err))
		} else {
			user.ProfilePicURL = &signedURL
		}
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user document", slog.String("user_id", uid), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	srv.log(ctx).Info("Signup completed", slog.String("user_id", uid))

	return user, nil
}

// newSignUpUser builds the initial document from the trimmed form fields.
func newSignUpUser(email string, input *usecase.SignUpInput) *entity.User {
	return &entity.User{
		Email:     email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Company:   strings.TrimSpace(input.Company),
		Position:  strings.TrimSpace(input.Position),
		Phone:     strings.TrimSpace(input.Phone),
		Bio:       strings.TrimSpace(input.Bio),
		Skills:    entity.ParseSkills(input.Skills),
		Address: entity.Address{
			Street:  strings.TrimSpace(input.Address.Street),
			City:    strings.TrimSpace(input.Address.City),
			State:   strings.TrimSpace(input.Address.State),
			ZipCode: strings.TrimSpace(input.Address.ZipCode),
			Country: strings.TrimSpace(input.Address.Country),
		},
		Role: entity.RoleUser,
	}
}

// Login resolves the account registered with email.
func (srv *accountService) Login(ctx context.Context, email string) (*entity.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email is required"), "empty email")
	}

	identity, err := srv.identity.LookupByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			srv.log(ctx).Info("Login for unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, email)
		}

		return nil, errors.Wrap(err, "failed to look up identity")
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", identity.UID))

	return identity, nil
}

// LoginWithIDToken resolves the account behind a client-issued ID token.
func (srv *accountService) LoginWithIDToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("id_token is required"), "empty ID token")
	}

	identity, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject")
		}
		srv.log(ctx).Warn("ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidIDToken, err.Error())
	}

	return identity, nil
}
