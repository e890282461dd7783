package entity

import "strings"

// Identity is an account as seen by the identity provider.
type Identity struct {
	UID       string
	Email     string
	FirstName string
	LastName  string
}

// FullName joins first and last name, ignoring empty parts.
func (i *Identity) FullName() string {
	return joinName(i.FirstName, i.LastName)
}

// EmailLocalPart returns the part of the email before '@'.
func (i *Identity) EmailLocalPart() string {
	local, _, _ := strings.Cut(i.Email, "@")

	return local
}

// SplitDisplayName splits a provider display name into first and last name.
// Everything after the first space is treated as the last name.
func SplitDisplayName(displayName string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(displayName), " ")

	return first, strings.TrimSpace(last)
}
