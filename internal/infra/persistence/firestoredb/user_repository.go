// Package firestoredb contains the concrete implementation of the persistence layer using Cloud Firestore.
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

// userRepository implements the domain.UserRepository interface using Firestore.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(model.UsersCollection)
}

// FindByID retrieves the user document keyed by id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snapshot, err := repo.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	userM := new(model.UserModel)
	if err := snapshot.DataTo(userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}
	userM.ID = snapshot.Ref.ID

	return toUserDomain(userM), nil
}

// Create writes the initial user document with a plain set.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if _, err := repo.users().Doc(user.ID).Set(ctx, userM); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// Merge writes only the fields present in patch using a merge set, so the
// document is created if missing and untouched fields survive. MergeAll
// merges nested maps leaf by leaf, so unsent address lines survive too.
func (repo *userRepository) Merge(ctx context.Context, id string, patch *entity.UserPatch) error {
	data := userPatchToMap(patch)
	if len(data) == 0 {
		return nil
	}

	if _, err := repo.users().Doc(id).Set(ctx, data, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to merge user")
	}

	return nil
}

// List returns all user documents in store order.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	iter := repo.users().Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list users")
		}

		userM := new(model.UserModel)
		if err := snapshot.DataTo(userM); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", snapshot.Ref.ID)
		}
		userM.ID = snapshot.Ref.ID
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	role := entity.Role(data.Role)
	if !role.IsValid() {
		role = entity.RoleUser
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Company:       data.Company,
		Position:      data.Position,
		Phone:         data.Phone,
		Bio:           data.Bio,
		Skills:        data.Skills,
		Address:       toAddressDomain(data.Address),
		ProfilePicURL: data.ProfilePicURL,
		Role:          role,
		CreatedAt:     data.CreatedAt,
		LastUpdated:   data.LastUpdated,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Email:         data.Email,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Company:       data.Company,
		Position:      data.Position,
		Phone:         data.Phone,
		Bio:           data.Bio,
		Skills:        data.Skills,
		Address:       fromAddressDomain(data.Address),
		ProfilePicURL: data.ProfilePicURL,
		Role:          data.Role.String(),
		CreatedAt:     data.CreatedAt,
		LastUpdated:   data.LastUpdated,
	}
}

func toAddressDomain(data model.AddressModel) entity.Address {
	return entity.Address{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
		Country: data.Country,
	}
}

func fromAddressDomain(data entity.Address) model.AddressModel {
	return model.AddressModel{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
		Country: data.Country,
	}
}

// userPatchToMap converts the non-nil fields of patch into a merge payload.
func userPatchToMap(patch *entity.UserPatch) map[string]any {
	data := make(map[string]any)
	if patch == nil {
		return data
	}

	setString(data, model.UserFieldEmail, patch.Email)
	setString(data, model.UserFieldFirstName, patch.FirstName)
	setString(data, model.UserFieldLastName, patch.LastName)
	setString(data, model.UserFieldCompany, patch.Company)
	setString(data, model.UserFieldPosition, patch.Position)
	setString(data, model.UserFieldPhone, patch.Phone)
	setString(data, model.UserFieldBio, patch.Bio)
	setString(data, model.UserFieldProfilePicURL, patch.ProfilePicURL)

	if patch.Skills != nil {
		data[model.UserFieldSkills] = patch.Skills
	}
	if address := addressPatchToMap(patch.Address); len(address) > 0 {
		data[model.UserFieldAddress] = address
	}
	if !patch.LastUpdated.IsZero() {
		data[model.UserFieldLastUpdated] = patch.LastUpdated
	}

	return data
}

// addressPatchToMap keeps only the submitted address lines.
func addressPatchToMap(patch *entity.AddressPatch) map[string]any {
	data := make(map[string]any)
	if patch == nil {
		return data
	}

	setString(data, model.AddressFieldStreet, patch.Street)
	setString(data, model.AddressFieldCity, patch.City)
	setString(data, model.AddressFieldState, patch.State)
	setString(data, model.AddressFieldZipCode, patch.ZipCode)
	setString(data, model.AddressFieldCountry, patch.Country)

	return data
}

func setString(data map[string]any, field string, value *string) {
	if value != nil {
		data[field] = *value
	}
}
