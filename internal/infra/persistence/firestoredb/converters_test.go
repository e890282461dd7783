package firestoredb

import (
	"testing"
	"time"

	"beerhaus/internal/domain/entity"
	"beerhaus/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserPatchToMap_OnlyPresentFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	patch := &entity.UserPatch{
		Email:       strPtr("ada@example.com"),
		FirstName:   strPtr("Ada"),
		Skills:      []string{"brewing", "go"},
		LastUpdated: now,
	}

	data := userPatchToMap(patch)

	assert.Equal(t, map[string]any{
		model.UserFieldEmail:       "ada@example.com",
		model.UserFieldFirstName:   "Ada",
		model.UserFieldSkills:      []string{"brewing", "go"},
		model.UserFieldLastUpdated: now,
	}, data)
	assert.NotContains(t, data, model.UserFieldProfilePicURL)
}

func TestUserPatchToMap_AddressAndPicture(t *testing.T) {
	data := userPatchToMap(&entity.UserPatch{
		Address:       &entity.AddressPatch{City: strPtr("Ghent"), ZipCode: strPtr("9000")},
		ProfilePicURL: strPtr("https://example.com/p.png"),
	})

	require.Contains(t, data, model.UserFieldAddress)
	address := data[model.UserFieldAddress].(map[string]any)
	assert.Equal(t, "Ghent", address[model.AddressFieldCity])
	assert.Equal(t, "9000", address[model.AddressFieldZipCode])
	assert.Equal(t, "https://example.com/p.png", data[model.UserFieldProfilePicURL])
}

func TestUserPatchToMap_PartialAddressKeepsOtherLines(t *testing.T) {
	data := userPatchToMap(&entity.UserPatch{
		Address: &entity.AddressPatch{City: strPtr("London")},
	})

	assert.Equal(t, map[string]any{
		model.UserFieldAddress: map[string]any{model.AddressFieldCity: "London"},
	}, data)
}

func TestUserPatchToMap_EmptyAddressPatchIsSkipped(t *testing.T) {
	data := userPatchToMap(&entity.UserPatch{Address: &entity.AddressPatch{}})

	assert.NotContains(t, data, model.UserFieldAddress)
}

func TestUserPatchToMap_Nil(t *testing.T) {
	assert.Empty(t, userPatchToMap(nil))
}

func TestUserModelRoundTrip(t *testing.T) {
	pic := "https://example.com/p.png"
	user := &entity.User{
		ID:            "uid-1",
		Email:         "ada@example.com",
		FirstName:     "Ada",
		Skills:        []string{"a"},
		Address:       entity.Address{Country: "BE"},
		ProfilePicURL: &pic,
		Role:          entity.RoleUser,
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
}

func TestToUserDomain_DefaultsRole(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   entity.Role
	}{
		{name: "missing", stored: "", want: entity.RoleUser},
		{name: "unknown", stored: "superuser", want: entity.RoleUser},
		{name: "admin", stored: "admin", want: entity.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := toUserDomain(&model.UserModel{ID: "uid-1", Role: tt.stored})
			assert.Equal(t, tt.want, user.Role)
		})
	}
}

func TestFromCommentsDomain_NeverNil(t *testing.T) {
	comments := fromCommentsDomain(nil)
	require.NotNil(t, comments)
	assert.Empty(t, comments)

	announcement := toAnnouncementDomain(&model.AnnouncementModel{ID: "a1"})
	require.NotNil(t, announcement.Comments)
	assert.Equal(t, 0, announcement.CommentCount())
}
