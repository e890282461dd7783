package usecase

import (
	"context"
)

// MemberUsecase defines the member directory.
type MemberUsecase interface {
	// ListMembers returns every member in store order.
	ListMembers(ctx context.Context) ([]*MemberCard, error)
	// ContactQRCode renders the member's contact details as a PNG QR code.
	ContactQRCode(ctx context.Context, userID string) ([]byte, error)
}

// MemberCard is one directory entry. Missing fields hold entity.MissingValue.
type MemberCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Skills   string `json:"skills"`
	Bio      string `json:"bio"`
}
