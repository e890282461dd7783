package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"beerhaus/internal/domain/entity"
	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/domain/repository"
	mockRepo "beerhaus/internal/mocks/repository"
	mockSvc "beerhaus/internal/mocks/service"
	"beerhaus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	userRepo    *mockRepo.MockUserRepository
	objectStore *mockSvc.MockObjectStore
	metrics     *mockSvc.MockMetricsRecorder
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	objectStore := mockSvc.NewMockObjectStore(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewProfileService(ProfileServiceParams{
		UserRepo:    userRepo,
		ObjectStore: objectStore,
		Metrics:     metrics,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	svc.(*profileService).now = func() time.Time { return fixedNow }

	return profileServiceFixtures{
		service:     svc,
		userRepo:    userRepo,
		objectStore: objectStore,
		metrics:     metrics,
	}
}

func testOwner() *entity.Identity {
	return &entity.Identity{UID: "uid-1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
}

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("existing document", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		user := &entity.User{ID: "uid-1", Email: "ada@example.com"}

		fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(user, nil)

		result, err := fx.service.GetProfile(ctx, "uid-1")

		require.NoError(t, err)
		assert.True(t, result.Exists)
		assert.Equal(t, user, result.User)
	})

	t.Run("no document yet", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)

		result, err := fx.service.GetProfile(ctx, "uid-1")

		require.NoError(t, err)
		assert.False(t, result.Exists)
		assert.Nil(t, result.User)
	})

	t.Run("store unavailable", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, errors.New("unavailable"))

		_, err := fx.service.GetProfile(ctx, "uid-1")

		require.Error(t, err)
	})
}

func TestProfileService_SaveProfile_WithoutPictureKeepsPictureURL(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	saved := &entity.User{ID: "uid-1", Company: "Analytical Engines", ProfilePicURL: stringPtr("https://signed/old")}

	fx.userRepo.EXPECT().
		Merge(ctx, "uid-1", mock.MatchedBy(func(p *entity.UserPatch) bool {
			return p.ProfilePicURL == nil &&
				*p.Email == "ada@example.com" &&
				*p.Company == "Analytical Engines" &&
				p.FirstName == nil &&
				p.LastUpdated.Equal(fixedNow)
		})).
		Return(nil)
	fx.metrics.EXPECT().RecordProfileSaved(false).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(saved, nil)

	user, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{Company: stringPtr(" Analytical Engines ")})

	require.NoError(t, err)
	assert.Equal(t, "https://signed/old", user.PictureURL())
}

func TestProfileService_SaveProfile_ParsesSkills(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Merge(ctx, "uid-1", mock.MatchedBy(func(p *entity.UserPatch) bool {
			return assert.ObjectsAreEqual([]string{"a", "b", "c"}, p.Skills)
		})).
		Return(nil)
	fx.metrics.EXPECT().RecordProfileSaved(false).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1", Skills: []string{"a", "b", "c"}}, nil)

	user, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{Skills: stringPtr("a, b ,c")})

	require.NoError(t, err)
	assert.Equal(t, "a, b, c", entity.FormatSkills(user.Skills))
}

func TestProfileService_SaveProfile_PartialAddressSendsOnlySubmittedLines(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Merge(ctx, "uid-1", mock.MatchedBy(func(p *entity.UserPatch) bool {
			return p.Address != nil &&
				p.Address.City != nil && *p.Address.City == "London" &&
				p.Address.Street == nil && p.Address.State == nil &&
				p.Address.ZipCode == nil && p.Address.Country == nil
		})).
		Return(nil)
	fx.metrics.EXPECT().RecordProfileSaved(false).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").
		Return(&entity.User{ID: "uid-1", Address: entity.Address{Street: "1 Main St", City: "London", Country: "UK"}}, nil)

	user, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{
		Address: &entity.AddressPatch{City: stringPtr(" London ")},
	})

	require.NoError(t, err)
	assert.Equal(t, "1 Main St", user.Address.Street)
}

func TestProfileService_SaveProfile_ReloadFailureReturnsMergedFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().Merge(ctx, "uid-1", mock.Anything).Return(nil)
	fx.metrics.EXPECT().RecordProfileSaved(false).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, errors.New("deadline exceeded"))

	user, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{
		Company: stringPtr("Analytical Engines"),
		Skills:  stringPtr("math, poetry"),
		Address: &entity.AddressPatch{City: stringPtr("London")},
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Analytical Engines", user.Company)
	assert.Equal(t, []string{"math", "poetry"}, user.Skills)
	assert.Equal(t, "London", user.Address.City)
	assert.Equal(t, fixedNow, user.LastUpdated)
}

func TestProfileService_SaveProfile_ReloadFailureKeepsLoadedFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	current := &entity.User{ID: "uid-1", Email: "ada@example.com", Bio: "Poet of numbers", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(current, nil).Once()
	fx.objectStore.EXPECT().Upload(ctx, mock.Anything, []byte("png"), "image/png").Return(nil)
	fx.objectStore.EXPECT().SignedURL(ctx, mock.AnythingOfType("string"), 365*24*time.Hour).Return("https://signed/new", nil)
	fx.userRepo.EXPECT().Merge(ctx, "uid-1", mock.Anything).Return(nil)
	fx.metrics.EXPECT().RecordProfileSaved(true).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, errors.New("deadline exceeded")).Once()

	user, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{
		Picture: &usecase.PictureUpload{Data: []byte("png"), ContentType: "image/png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Poet of numbers", user.Bio)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "https://signed/new", user.PictureURL())
	assert.Nil(t, current.ProfilePicURL)
}

func TestProfileService_SaveProfile_ReplacesPicture(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	oldURL := "https://signed/profile_pics/uid-1_old"
	var newKey string

	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1", ProfilePicURL: &oldURL}, nil).Once()
	fx.objectStore.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "profile_pics/uid-1_") }), []byte("png"), "image/png").
		Run(func(_ context.Context, key string, _ []byte, _ string) { newKey = key }).
		Return(nil)
	fx.objectStore.EXPECT().SignedURL(ctx, mock.AnythingOfType("string"), 365*24*time.Hour).Return("https://signed/new", nil)
	fx.userRepo.EXPECT().
		Merge(ctx, "uid-1", mock.MatchedBy(func(p *entity.UserPatch) bool {
			return p.ProfilePicURL != nil && *p.ProfilePicURL == "https://signed/new"
		})).
		Return(nil)
	fx.objectStore.EXPECT().KeyFromURL(oldURL).Return("profile_pics/uid-1_old", true)
	fx.objectStore.EXPECT().Exists(ctx, "profile_pics/uid-1_old").Return(true, nil)
	fx.objectStore.EXPECT().Delete(ctx, "profile_pics/uid-1_old").Return(nil)
	fx.metrics.EXPECT().RecordProfileSaved(true).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1", ProfilePicURL: stringPtr("https://signed/new")}, nil).Once()

	user, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{
		Picture: &usecase.PictureUpload{Data: []byte("png"), ContentType: "image/png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://signed/new", user.PictureURL())
	assert.NotEqual(t, "profile_pics/uid-1_old", newKey)
}

func TestProfileService_SaveProfile_OldPictureCleanupFailureIsLogged(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	oldURL := "https://signed/profile_pics/uid-1_old"

	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1", ProfilePicURL: &oldURL}, nil).Once()
	fx.objectStore.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.objectStore.EXPECT().SignedURL(ctx, mock.Anything, mock.Anything).Return("https://signed/new", nil)
	fx.userRepo.EXPECT().Merge(ctx, "uid-1", mock.Anything).Return(nil)
	fx.objectStore.EXPECT().KeyFromURL(oldURL).Return("profile_pics/uid-1_old", true)
	fx.objectStore.EXPECT().Exists(ctx, "profile_pics/uid-1_old").Return(true, nil)
	fx.objectStore.EXPECT().Delete(ctx, "profile_pics/uid-1_old").Return(errors.New("permission denied"))
	fx.metrics.EXPECT().RecordCleanupFailure("old_picture").Return()
	fx.metrics.EXPECT().RecordProfileSaved(true).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1"}, nil).Once()

	_, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{
		Picture: &usecase.PictureUpload{Data: []byte("jpg"), ContentType: "image/jpeg"},
	})

	require.NoError(t, err)
}

func TestProfileService_SaveProfile_MergeFailureRemovesNewPicture(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	var newKey string

	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)
	fx.objectStore.EXPECT().
		Upload(ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, key string, _ []byte, _ string) { newKey = key }).
		Return(nil)
	fx.objectStore.EXPECT().SignedURL(ctx, mock.Anything, mock.Anything).Return("https://signed/new", nil)
	fx.userRepo.EXPECT().Merge(ctx, "uid-1", mock.Anything).Return(errors.New("unavailable"))
	fx.objectStore.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool { return key == newKey })).
		Return(nil)

	_, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{
		Picture: &usecase.PictureUpload{Data: []byte("png"), ContentType: "image/png"},
	})

	require.ErrorIs(t, err, domainerrors.ErrUserUpdateFailed)
}

func TestProfileService_SaveProfile_IgnoresForeignPreviousURL(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	oldURL := "https://avatars.example.com/api/?name=Ada"

	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1", ProfilePicURL: &oldURL}, nil).Once()
	fx.objectStore.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.objectStore.EXPECT().SignedURL(ctx, mock.Anything, mock.Anything).Return("https://signed/new", nil)
	fx.userRepo.EXPECT().Merge(ctx, "uid-1", mock.Anything).Return(nil)
	fx.objectStore.EXPECT().KeyFromURL(oldURL).Return("", false)
	fx.metrics.EXPECT().RecordProfileSaved(true).Return()
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(&entity.User{ID: "uid-1"}, nil).Once()

	_, err := fx.service.SaveProfile(ctx, testOwner(), &usecase.SaveProfileInput{
		Picture: &usecase.PictureUpload{Data: []byte("png"), ContentType: "image/png"},
	})

	require.NoError(t, err)
}

func TestProfileService_SaveProfile_PictureValidation(t *testing.T) {
	tests := []struct {
		name    string
		picture *usecase.PictureUpload
		wantErr error
	}{
		{
			name:    "unsupported type",
			picture: &usecase.PictureUpload{Data: []byte("gif"), ContentType: "image/gif"},
			wantErr: domainerrors.ErrUnsupportedMedia,
		},
		{
			name:    "too large",
			picture: &usecase.PictureUpload{Data: make([]byte, 2<<10), ContentType: "image/png"},
			wantErr: domainerrors.ErrPayloadTooLarge,
		},
		{
			name:    "empty",
			picture: &usecase.PictureUpload{ContentType: "image/png"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.SaveProfile(context.Background(), testOwner(), &usecase.SaveProfileInput{Picture: tt.picture})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_SaveProfile_TooLargeNamesLimit(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.SaveProfile(context.Background(), testOwner(), &usecase.SaveProfileInput{
		Picture: &usecase.PictureUpload{Data: make([]byte, 2<<10), ContentType: "image/png"},
	})

	var baseErr *domainerrors.BaseError
	require.True(t, errors.As(err, &baseErr))
	assert.Equal(t, "picture must be at most 1.0 KB", baseErr.Details())
}

func TestProfileService_SaveProfile_RequiresIdentity(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.SaveProfile(context.Background(), nil, &usecase.SaveProfileInput{})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNewProfileView_Defaults(t *testing.T) {
	view := usecase.NewProfileView(&usecase.ProfileResult{Exists: false}, testOwner(), testPlaceholderBaseURL)

	assert.False(t, view.Exists)
	assert.Equal(t, "ada@example.com", view.Email)
	assert.Equal(t, "Ada", view.FirstName)
	assert.Equal(t, entity.MissingValue, view.Company)
	assert.Equal(t, entity.MissingValue, view.SkillsText)
	assert.Empty(t, view.Skills)
	assert.Equal(t, entity.MissingValue, view.Address.City)
	assert.Contains(t, view.PictureURL, testPlaceholderBaseURL)
}
