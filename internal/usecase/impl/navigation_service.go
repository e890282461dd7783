package impl

import (
	"context"
	"log/slog"

	"beerhaus/config"
	deliverycontext "beerhaus/internal/delivery/context"
	"beerhaus/internal/domain/entity"
	"beerhaus/internal/errors"
	"beerhaus/internal/usecase"

	"go.uber.org/fx"
)

// navigationService implements the NavigationUsecase interface by delegating
// to the page's service.
type navigationService struct {
	profiles           usecase.ProfileUsecase
	announcements      usecase.AnnouncementUsecase
	members            usecase.MemberUsecase
	placeholderBaseURL string
	logger             *slog.Logger
}

// NavigationServiceParams holds dependencies for NavigationService, injected by Fx.
type NavigationServiceParams struct {
	fx.In

	Profiles      usecase.ProfileUsecase
	Announcements usecase.AnnouncementUsecase
	Members       usecase.MemberUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	return &navigationService{
		profiles:           params.Profiles,
		announcements:      params.Announcements,
		members:            params.Members,
		placeholderBaseURL: params.Config.Avatar.PlaceholderBaseURL,
		logger:             params.Logger,
	}
}

func (srv *navigationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// View normalizes the session and builds the data for its page.
func (srv *navigationService) View(ctx context.Context, session *entity.Session) (*usecase.PageView, error) {
	if session == nil {
		session = entity.NewSession()
	}
	session.Normalize()

	view := &usecase.PageView{
		Page:          session.Page,
		Authenticated: session.IsAuthenticated(),
		User:          usecase.NewIdentityView(session.User),
	}

	switch session.Page {
	case entity.PageHome:
		view.Home = &usecase.HomeView{Greeting: "Welcome, " + session.User.EmailLocalPart() + "!"}
	case entity.PageAnnouncements:
		announcements, err := srv.announcements.ListRecent(ctx, 0)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render announcements page")
		}
		view.Announcements = usecase.NewAnnouncementViews(announcements)
	case entity.PageProfile:
		result, err := srv.profiles.GetProfile(ctx, session.User.UID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render profile page")
		}
		view.Profile = usecase.NewProfileView(result, session.User, srv.placeholderBaseURL)
	case entity.PageMembers:
		members, err := srv.members.ListMembers(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render members page")
		}
		view.Members = members
	case entity.PageLogin, entity.PageSignUp:
	}

	srv.log(ctx).Debug("Rendered page", slog.String("page", session.Page.String()))

	return view, nil
}
