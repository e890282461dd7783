// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is the member document keyed by the identity provider's user id.
// It is created once on signup and merge-updated by its owner afterwards.
type User struct {
	ID            string    // Opaque user id assigned by the identity provider.
	Email         string    // The account email, copied from the identity provider.
	FirstName     string    // The member's given name.
	LastName      string    // The member's family name.
	Company       string    // Employer or organisation.
	Position      string    // Job title.
	Phone         string    // Contact phone number.
	Bio           string    // Free-form biography.
	Skills        []string  // Ordered list of skills, trimmed and non-empty.
	Address       Address   // Postal address.
	ProfilePicURL *string   // Signed URL of the current profile picture; nil when none was uploaded.
	Role          Role      // Directory role, "user" unless promoted out of band.
	CreatedAt     time.Time // Timestamp of signup.
	LastUpdated   time.Time // Timestamp of the last profile save.
}

// FullName joins first and last name, ignoring empty parts.
func (u *User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}

// PictureURL returns the stored picture URL or an empty string.
func (u *User) PictureURL() string {
	if u.ProfilePicURL == nil {
		return ""
	}

	return *u.ProfilePicURL
}

// UserPatch carries the fields of a profile save. Nil fields are left untouched
// in the stored document.
type UserPatch struct {
	Email         *string
	FirstName     *string
	LastName      *string
	Company       *string
	Position      *string
	Phone         *string
	Bio           *string
	Skills        []string // nil means unchanged; an empty slice clears the list.
	Address       *AddressPatch
	ProfilePicURL *string
	LastUpdated   time.Time
}

// ApplyTo copies the present fields of the patch onto u.
func (p *UserPatch) ApplyTo(u *User) {
	if p == nil {
		return
	}

	applyString(&u.Email, p.Email)
	applyString(&u.FirstName, p.FirstName)
	applyString(&u.LastName, p.LastName)
	applyString(&u.Company, p.Company)
	applyString(&u.Position, p.Position)
	applyString(&u.Phone, p.Phone)
	applyString(&u.Bio, p.Bio)
	if p.Skills != nil {
		u.Skills = p.Skills
	}
	p.Address.ApplyTo(&u.Address)
	if p.ProfilePicURL != nil {
		u.ProfilePicURL = p.ProfilePicURL
	}
	if !p.LastUpdated.IsZero() {
		u.LastUpdated = p.LastUpdated
	}
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
