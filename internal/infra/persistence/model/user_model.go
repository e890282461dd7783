// Package model holds the document shapes stored in Firestore.
package model

import (
	"time"
)

// UsersCollection is the Firestore collection holding member documents.
const UsersCollection = "users"

// UserModel mirrors a document in the 'users' collection. The document id is
// the identity provider's user id and is not stored as a field.
type UserModel struct {
	ID            string       `firestore:"-"`
	Email         string       `firestore:"email"`
	FirstName     string       `firestore:"first_name"`
	LastName      string       `firestore:"last_name"`
	Company       string       `firestore:"company,omitempty"`
	Position      string       `firestore:"position,omitempty"`
	Phone         string       `firestore:"phone,omitempty"`
	Bio           string       `firestore:"bio,omitempty"`
	Skills        []string     `firestore:"skills,omitempty"`
	Address       AddressModel `firestore:"address"`
	ProfilePicURL *string      `firestore:"profile_pic_url"`
	Role          string       `firestore:"role"`
	CreatedAt     time.Time    `firestore:"created_at"`
	LastUpdated   time.Time    `firestore:"last_updated,omitempty"`
}

// AddressModel mirrors the embedded 'address' map of a user document.
type AddressModel struct {
	Street  string `firestore:"street"`
	City    string `firestore:"city"`
	State   string `firestore:"state"`
	ZipCode string `firestore:"zip_code"`
	Country string `firestore:"country"`
}

// Field paths used for partial updates.
const (
	UserFieldEmail         = "email"
	UserFieldFirstName     = "first_name"
	UserFieldLastName      = "last_name"
	UserFieldCompany       = "company"
	UserFieldPosition      = "position"
	UserFieldPhone         = "phone"
	UserFieldBio           = "bio"
	UserFieldSkills        = "skills"
	UserFieldAddress       = "address"
	UserFieldProfilePicURL = "profile_pic_url"
	UserFieldLastUpdated   = "last_updated"
)

// Keys of the embedded 'address' map.
const (
	AddressFieldStreet  = "street"
	AddressFieldCity    = "city"
	AddressFieldState   = "state"
	AddressFieldZipCode = "zip_code"
	AddressFieldCountry = "country"
)
