package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"beerhaus/internal/domain/entity"
	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/domain/service"
	mockRepo "beerhaus/internal/mocks/repository"
	mockSvc "beerhaus/internal/mocks/service"
	"beerhaus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	identity    *mockSvc.MockIdentityProvider
	userRepo    *mockRepo.MockUserRepository
	objectStore *mockSvc.MockObjectStore
	metrics     *mockSvc.MockMetricsRecorder
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	identity := mockSvc.NewMockIdentityProvider(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	objectStore := mockSvc.NewMockObjectStore(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewAccountService(AccountServiceParams{
		Identity:    identity,
		UserRepo:    userRepo,
		ObjectStore: objectStore,
		Metrics:     metrics,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	svc.(*accountService).now = func() time.Time { return fixedNow }

	return accountServiceFixtures{
		service:     svc,
		identity:    identity,
		userRepo:    userRepo,
		objectStore: objectStore,
		metrics:     metrics,
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().
		CreateAccount(ctx, service.CreateAccountInput{Email: "ada@example.com", Password: "secret1", DisplayName: "Ada Lovelace"}).
		Return("uid-1", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "uid-1" && u.Role == entity.RoleUser && u.CreatedAt.Equal(fixedNow) && u.ProfilePicURL == nil
		})).
		Return(nil)

	user, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:     " ada@example.com ",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.FullName())
}

func TestAccountService_SignUp_WithPicture(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, mock.Anything).Return("uid-1", nil)
	fx.objectStore.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "profile_pics/uid-1_") }), []byte("png"), "image/png").
		Return(nil)
	fx.objectStore.EXPECT().
		SignedURL(ctx, mock.AnythingOfType("string"), 365*24*time.Hour).
		Return("https://signed.example.com/pic", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.PictureURL() == "https://signed.example.com/pic"
		})).
		Return(nil)

	user, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Picture:   &usecase.PictureUpload{Data: []byte("png"), ContentType: "image/png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/pic", user.PictureURL())
}

func TestAccountService_SignUp_PictureUploadFailureIsNotFatal(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, mock.Anything).Return("uid-1", nil)
	fx.objectStore.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket offline"))
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.ProfilePicURL == nil })).
		Return(nil)

	user, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Picture:   &usecase.PictureUpload{Data: []byte("jpg"), ContentType: "image/jpeg"},
	})

	require.NoError(t, err)
	assert.Nil(t, user.ProfilePicURL)
}

func TestAccountService_SignUp_RejectsUnsupportedPictureBeforeCreatingAccount(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Picture:   &usecase.PictureUpload{Data: []byte("gif"), ContentType: "image/gif"},
	})

	require.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)
}

func TestAccountService_SignUp_StoresFullProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().
		CreateAccount(ctx, service.CreateAccountInput{Email: "ada@example.com", Password: "secret1", DisplayName: "Ada Lovelace"}).
		Return("uid-1", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "uid-1" &&
				u.Company == "Analytical Engines" &&
				u.Position == "Programmer" &&
				u.Phone == "+44 20 0000" &&
				u.Bio == "Poet of numbers" &&
				assert.ObjectsAreEqual([]string{"math", "poetry"}, u.Skills) &&
				u.Address == entity.Address{Street: "12 St James's Sq", City: "London", ZipCode: "SW1Y", Country: "UK"} &&
				u.Role == entity.RoleUser
		})).
		Return(nil)

	user, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Company:   " Analytical Engines ",
		Position:  "Programmer",
		Phone:     "+44 20 0000",
		Bio:       "Poet of numbers",
		Skills:    "math, , poetry ",
		Address:   entity.Address{Street: "12 St James's Sq", City: " London", ZipCode: "SW1Y", Country: "UK"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Analytical Engines", user.Company)
}

func TestAccountService_SignUp_NamesAreOptional(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().
		CreateAccount(ctx, service.CreateAccountInput{Email: "ada@example.com", Password: "secret1", DisplayName: ""}).
		Return("uid-1", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "uid-1" && u.FirstName == "" && u.LastName == ""
		})).
		Return(nil)

	user, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "ada@example.com", Password: "secret1", FirstName: "  "})

	require.NoError(t, err)
	assert.Empty(t, user.FullName())
}

func TestAccountService_SignUp_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SignUpInput
	}{
		{name: "email", input: &usecase.SignUpInput{Email: "  ", Password: "secret1", FirstName: "Ada"}},
		{name: "password", input: &usecase.SignUpInput{Email: "ada@example.com", FirstName: "Ada"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			_, err := fx.service.SignUp(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAccountService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, mock.Anything).Return("", service.ErrIdentityExists)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_SignUp_DocumentWriteFails(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, mock.Anything).Return("uid-1", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("unavailable"))

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
}

func TestAccountService_Login(t *testing.T) {
	t.Run("known email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		identity := &entity.Identity{UID: "uid-1", Email: "ada@example.com"}

		fx.identity.EXPECT().LookupByEmail(ctx, "ada@example.com").Return(identity, nil)

		got, err := fx.service.Login(ctx, "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, identity, got)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.identity.EXPECT().LookupByEmail(ctx, "nobody@example.com").Return(nil, service.ErrIdentityNotFound)

		_, err := fx.service.Login(ctx, "nobody@example.com")

		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("provider failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		providerErr := errors.New("timeout")

		fx.identity.EXPECT().LookupByEmail(ctx, "ada@example.com").Return(nil, providerErr)

		_, err := fx.service.Login(ctx, "ada@example.com")

		require.ErrorIs(t, err, providerErr)
		assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("blank email", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Login(context.Background(), "   ")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAccountService_LoginWithIDToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		identity := &entity.Identity{UID: "uid-1", Email: "ada@example.com"}

		fx.identity.EXPECT().VerifyIDToken(ctx, "token").Return(identity, nil)

		got, err := fx.service.LoginWithIDToken(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, "uid-1", got.UID)
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.identity.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("signature invalid"))

		_, err := fx.service.LoginWithIDToken(ctx, "bad")

		require.ErrorIs(t, err, domainerrors.ErrInvalidIDToken)
	})
}
