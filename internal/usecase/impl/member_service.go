package impl

import (
	"context"
	"log/slog"

	"beerhaus/config"
	deliverycontext "beerhaus/internal/delivery/context"
	"beerhaus/internal/domain/entity"
	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/domain/repository"
	"beerhaus/internal/domain/service"
	"beerhaus/internal/errors"
	"beerhaus/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	userRepo           repository.UserRepository
	qrCode             service.QRCodeService
	placeholderBaseURL string
	titleCaser         cases.Caser
	logger             *slog.Logger
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	QRCode   service.QRCodeService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		userRepo:           params.UserRepo,
		qrCode:             params.QRCode,
		placeholderBaseURL: params.Config.Avatar.PlaceholderBaseURL,
		titleCaser:         cases.Title(language.English),
		logger:             params.Logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMembers projects every stored user into a directory card.
func (srv *memberService) ListMembers(ctx context.Context) ([]*usecase.MemberCard, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	cards := make([]*usecase.MemberCard, 0, len(users))
	for _, user := range users {
		cards = append(cards, srv.memberCard(user))
	}

	srv.log(ctx).Debug("Listed members", slog.Int("count", len(cards)))

	return cards, nil
}

func (srv *memberService) memberCard(user *entity.User) *usecase.MemberCard {
	name, avatar := entity.ResolveDisplayIdentity(user, &entity.Identity{UID: user.ID, Email: user.Email}, srv.placeholderBaseURL)

	return &usecase.MemberCard{
		ID:       user.ID,
		Name:     name,
		Avatar:   avatar,
		Role:     entity.OrMissing(srv.titleCaser.String(user.Role.String())),
		Email:    entity.OrMissing(user.Email),
		Position: entity.OrMissing(user.Position),
		Company:  entity.OrMissing(user.Company),
		Phone:    entity.OrMissing(user.Phone),
		City:     entity.OrMissing(user.Address.City),
		Country:  entity.OrMissing(user.Address.Country),
		Skills:   entity.OrMissing(entity.FormatSkills(user.Skills)),
		Bio:      entity.OrMissing(entity.TruncateBio(user.Bio)),
	}
}

// ContactQRCode renders the member's contact card as a PNG QR code.
func (srv *memberService) ContactQRCode(ctx context.Context, userID string) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound.WithDetails("member not found"), userID)
		}

		return nil, errors.Wrap(err, "failed to load member")
	}

	png, err := srv.qrCode.GenerateContactQR(&service.ContactCard{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Company:   user.Company,
		Position:  user.Position,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact QR code")
	}

	return png, nil
}
