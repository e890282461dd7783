package firestoredb

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"beerhaus/internal/domain/entity"
	"beerhaus/internal/domain/repository"
	"beerhaus/internal/errors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator or skips the test.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "beerhaus-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestUserRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewUserRepository(client)
	ctx := context.Background()
	id := "uid-" + uuid.NewString()

	_, err := repo.FindByID(ctx, id)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	pic := "https://example.com/old.png"
	require.NoError(t, repo.Create(ctx, &entity.User{
		ID:            id,
		Email:         "ada@example.com",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Company:       "Engines",
		Address:       entity.Address{Street: "1 Main St", City: "Ghent", ZipCode: "9000", Country: "BE"},
		ProfilePicURL: &pic,
		Role:          entity.RoleUser,
		CreatedAt:     time.Now().UTC(),
	}))

	bio := "Brews stouts"
	city := "London"
	require.NoError(t, repo.Merge(ctx, id, &entity.UserPatch{
		Bio:         &bio,
		Skills:      []string{"stout", "ipa"},
		Address:     &entity.AddressPatch{City: &city},
		LastUpdated: time.Now().UTC(),
	}))

	user, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Engines", user.Company)
	assert.Equal(t, bio, user.Bio)
	assert.Equal(t, []string{"stout", "ipa"}, user.Skills)
	assert.Equal(t, entity.Address{Street: "1 Main St", City: "London", ZipCode: "9000", Country: "BE"}, user.Address)
	require.NotNil(t, user.ProfilePicURL)
	assert.Equal(t, pic, *user.ProfilePicURL)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, users)
}

func TestAnnouncementRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewAnnouncementRepository(client)
	ctx := context.Background()

	base := time.Now().UTC().Add(time.Hour)
	var ids []string
	for i := range 3 {
		id, err := repo.Create(ctx, &entity.Announcement{
			Title:     "Batch " + uuid.NewString(),
			Content:   "content",
			Author:    "Ada",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[2], recent[0].ID)
	assert.False(t, recent[0].Timestamp.Before(recent[1].Timestamp))

	comment := &entity.Comment{Text: "Cheers", Author: "Grace", Timestamp: time.Now().UTC()}
	require.NoError(t, repo.ReplaceComments(ctx, ids[0], []*entity.Comment{comment}))

	found, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, found.Comments, 1)
	assert.Equal(t, "Cheers", found.Comments[0].Text)

	err = repo.ReplaceComments(ctx, "missing-"+uuid.NewString(), nil)
	assert.True(t, errors.Is(err, repository.ErrAnnouncementNotFound))
}

// Two writers that read the same snapshot both write back their own list, so
// one of the comments is lost.
func TestAnnouncementRepository_Emulator_ConcurrentAppendLosesComment(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewAnnouncementRepository(client)
	ctx := context.Background()

	id, err := repo.Create(ctx, &entity.Announcement{Title: "Race", Content: "c", Author: "Ada", Timestamp: time.Now().UTC()})
	require.NoError(t, err)

	snapshot, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, text := range []string{"first", "second"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comments := append(append([]*entity.Comment{}, snapshot.Comments...), &entity.Comment{Text: text})
			assert.NoError(t, repo.ReplaceComments(ctx, id, comments))
		}()
	}
	wg.Wait()

	final, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, final.Comments, 1)
}
