package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beerhaus/config"
	apimiddleware "beerhaus/internal/delivery/api/middleware"
	"beerhaus/internal/delivery/api/router"
	"beerhaus/internal/delivery/api/router/handler"
	"beerhaus/internal/domain/entity"
	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/domain/service"
	"beerhaus/internal/errors"
	"beerhaus/internal/infra/auth"
	"beerhaus/internal/infra/metrics"
	mockUsecase "beerhaus/internal/mocks/usecase"
	"beerhaus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "beerhaus_session"

// apiFixtures holds the echo instance and the usecase mocks behind it.
type apiFixtures struct {
	e             *echo.Echo
	tokens        service.SessionTokenService
	account       *mockUsecase.MockAccountUsecase
	profiles      *mockUsecase.MockProfileUsecase
	announcements *mockUsecase.MockAnnouncementUsecase
	members       *mockUsecase.MockMemberUsecase
	navigation    *mockUsecase.MockNavigationUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			Secret:     "test_session_secret_key_very_long_for_testing",
			CookieName: testCookieName,
			TTL:        time.Hour,
		},
		Profile:   &config.ProfileConfig{MaxPictureBytes: 1 << 20},
		Avatar:    &config.AvatarConfig{PlaceholderBaseURL: "https://avatars.example.com/api/"},
		RateLimit: &config.RateLimitConfig{AuthPerSecond: 100, AuthBurst: 100},
	}
	cfg.HTTP.MaxRequestBodySize = "6MB"

	return cfg
}

func createTestAPI(t *testing.T, cfg *config.Config) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewSessionTokenService(cfg)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	fx := apiFixtures{
		tokens:        tokens,
		account:       mockUsecase.NewMockAccountUsecase(t),
		profiles:      mockUsecase.NewMockProfileUsecase(t),
		announcements: mockUsecase.NewMockAnnouncementUsecase(t),
		members:       mockUsecase.NewMockMemberUsecase(t),
		navigation:    mockUsecase.NewMockNavigationUsecase(t),
	}

	sessions := apimiddleware.NewSessionMiddleware(tokens, cfg, logger)

	fx.e = NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: collector,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AccountUC: fx.account, SessionMiddleware: sessions, Config: cfg, Logger: logger,
			}),
			SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
				NavigationUC: fx.navigation, SessionMiddleware: sessions, Logger: logger,
			}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
				ProfileUC: fx.profiles, Config: cfg, Logger: logger,
			}),
			AnnouncementHandler: handler.NewAnnouncementHandler(handler.AnnouncementHandlerParams{
				AnnouncementUC: fx.announcements, Logger: logger,
			}),
			MemberHandler: handler.NewMemberHandler(handler.MemberHandlerParams{
				MemberUC: fx.members, Logger: logger,
			}),
			FileHandler:       handler.NewFileHandler(handler.FileHandlerParams{Logger: logger}),
			SessionMiddleware: sessions,
			Gatherer:          registry,
			Config:            cfg,
		},
	})

	return fx
}

func testIdentity() *entity.Identity {
	return &entity.Identity{UID: "uid-1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
}

func (fx apiFixtures) sessionCookie(t *testing.T, session *entity.Session) *http.Cookie {
	token, err := fx.tokens.Encode(session)
	require.NoError(t, err)

	return &http.Cookie{Name: testCookieName, Value: token}
}

func (fx apiFixtures) loggedInCookie(t *testing.T) *http.Cookie {
	return fx.sessionCookie(t, &entity.Session{Page: entity.PageHome, User: testIdentity()})
}

func (fx apiFixtures) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func responseCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}

	return nil
}

func TestAPI_HealthCheck(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAPI_MetricsExposesRequestCounter(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())

	fx.serve(httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `beerhaus_http_requests_total{method="GET",route="/health",status_code="200"} 1`)
}

func TestAPI_ProtectedRoutesRequireLogin(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/api/v1/members", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestAPI_TamperedCookieIsAnonymous(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "not-a-token"})
	rec := fx.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"page":"login","authenticated":false}`, string(decodeEnvelope(t, rec).Data))
}

func TestAPI_Login(t *testing.T) {
	t.Run("known email moves to home", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())
		fx.account.EXPECT().Login(mock.Anything, "ada@example.com").Return(testIdentity(), nil)

		rec := fx.serve(jsonRequest(http.MethodPost, "/auth/login", `{"email":"ada@example.com"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		cookie := responseCookie(rec)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		session, err := fx.tokens.Decode(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, entity.PageHome, session.Page)
		assert.Equal(t, "uid-1", session.User.UID)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())
		fx.account.EXPECT().Login(mock.Anything, "nobody@example.com").
			Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "nobody@example.com"))

		rec := fx.serve(jsonRequest(http.MethodPost, "/auth/login", `{"email":"nobody@example.com"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
		assert.Equal(t, "No account is registered with this email", env.Error.Message)
		assert.Nil(t, responseCookie(rec))
	})

	t.Run("invalid email", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())

		rec := fx.serve(jsonRequest(http.MethodPost, "/auth/login", `{"email":"nope"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAPI_SignUpStaysLoggedOut(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())
	fx.account.EXPECT().
		SignUp(mock.Anything, mock.MatchedBy(func(in *usecase.SignUpInput) bool {
			return in.Email == "ada@example.com" && in.FirstName == "Ada" && in.Picture == nil &&
				in.Company == "Analytical Engines" && in.Skills == "math, poetry" &&
				in.Address.City == "London" && in.Address.Street == ""
		})).
		Return(&entity.User{ID: "uid-1", Email: "ada@example.com"}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("email", "ada@example.com"))
	require.NoError(t, writer.WriteField("password", "secret1"))
	require.NoError(t, writer.WriteField("first_name", "Ada"))
	require.NoError(t, writer.WriteField("last_name", "Lovelace"))
	require.NoError(t, writer.WriteField("company", "Analytical Engines"))
	require.NoError(t, writer.WriteField("skills", "math, poetry"))
	require.NoError(t, writer.WriteField("city", "London"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := fx.serve(req)

	require.Equal(t, http.StatusCreated, rec.Code)
	session, err := fx.tokens.Decode(responseCookie(rec).Value)
	require.NoError(t, err)
	assert.Equal(t, entity.PageLogin, session.Page)
	assert.False(t, session.IsAuthenticated())
}

func TestAPI_SignUpWithoutNames(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())
	fx.account.EXPECT().
		SignUp(mock.Anything, mock.MatchedBy(func(in *usecase.SignUpInput) bool {
			return in.Email == "ada@example.com" && in.FirstName == "" && in.LastName == ""
		})).
		Return(&entity.User{ID: "uid-1", Email: "ada@example.com"}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("email", "ada@example.com"))
	require.NoError(t, writer.WriteField("password", "secret1"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := fx.serve(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_Logout(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(fx.loggedInCookie(t))
	rec := fx.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	session, err := fx.tokens.Decode(responseCookie(rec).Value)
	require.NoError(t, err)
	assert.Equal(t, entity.PageLogin, session.Page)
	assert.Nil(t, session.User)
}

func TestAPI_Navigate(t *testing.T) {
	tests := []struct {
		name     string
		session  *entity.Session
		target   string
		wantPage string
	}{
		{name: "member page while logged in", session: &entity.Session{Page: entity.PageHome, User: testIdentity()}, target: "Members", wantPage: "members"},
		{name: "member page while anonymous", session: entity.NewSession(), target: "members", wantPage: "login"},
		{name: "unknown page while logged in", session: &entity.Session{Page: entity.PageHome, User: testIdentity()}, target: "settings", wantPage: "home"},
		{name: "signup while anonymous", session: entity.NewSession(), target: "signup", wantPage: "signup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t, newTestConfig())

			req := jsonRequest(http.MethodPost, "/session/navigate", `{"page":"`+tt.target+`"}`)
			req.AddCookie(fx.sessionCookie(t, tt.session))
			rec := fx.serve(req)

			require.Equal(t, http.StatusOK, rec.Code)
			var got handler.SessionResponse
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
			assert.Equal(t, tt.wantPage, got.Page)
		})
	}
}

func TestAPI_SessionView(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())
	fx.navigation.EXPECT().View(mock.Anything, mock.AnythingOfType("*entity.Session")).
		Return(&usecase.PageView{Page: entity.PageHome, Authenticated: true, Home: &usecase.HomeView{Greeting: "Welcome, ada!"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/session/view", nil)
	req.AddCookie(fx.loggedInCookie(t))
	rec := fx.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "Welcome, ada!")
}

func TestAPI_Announcements(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())
		fx.announcements.EXPECT().ListRecent(mock.Anything, 5).
			Return([]*entity.Announcement{{ID: "a1", Title: "Meetup", Comments: []*entity.Comment{}}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/announcements?limit=5", nil)
		req.AddCookie(fx.loggedInCookie(t))
		rec := fx.serve(req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []*usecase.AnnouncementView
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Meetup", got[0].Title)
	})

	t.Run("invalid limit", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/announcements?limit=abc", nil)
		req.AddCookie(fx.loggedInCookie(t))
		rec := fx.serve(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create rejected", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())
		fx.announcements.EXPECT().CreateAnnouncement(mock.Anything, &usecase.CreateAnnouncementInput{Title: " ", Content: "body"}, testIdentity()).
			Return("", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title and content are required"), "empty"))

		req := jsonRequest(http.MethodPost, "/api/v1/announcements", `{"title":" ","content":"body"}`)
		req.AddCookie(fx.loggedInCookie(t))
		rec := fx.serve(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "title and content are required", env.Error.Details)
	})

	t.Run("comment", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())
		fx.announcements.EXPECT().AddComment(mock.Anything, "a1", &usecase.AddCommentInput{Text: "see you"}, testIdentity()).
			Return(&entity.Comment{Text: "see you", Author: "Ada Lovelace"}, nil)

		req := jsonRequest(http.MethodPost, "/api/v1/announcements/a1/comments", `{"text":"see you"}`)
		req.AddCookie(fx.loggedInCookie(t))
		rec := fx.serve(req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), "Ada Lovelace")
	})

	t.Run("comment on unknown announcement", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig())
		fx.announcements.EXPECT().AddComment(mock.Anything, "gone", mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrAnnouncementNotFound, "gone"))

		req := jsonRequest(http.MethodPost, "/api/v1/announcements/gone/comments", `{"text":"hi"}`)
		req.AddCookie(fx.loggedInCookie(t))
		rec := fx.serve(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_SaveProfileWithPicture(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())
	pngHeader := []byte("\x89PNG\r\n\x1a\n0000")

	fx.profiles.EXPECT().
		SaveProfile(mock.Anything, testIdentity(), mock.MatchedBy(func(in *usecase.SaveProfileInput) bool {
			return in.Company != nil && *in.Company == "Analytical Engines" &&
				in.Skills != nil && *in.Skills == "math, poetry" &&
				in.FirstName == nil &&
				in.Address != nil && in.Address.City != nil && *in.Address.City == "London" &&
				in.Address.Street == nil && in.Address.State == nil &&
				in.Address.ZipCode == nil && in.Address.Country == nil &&
				in.Picture != nil && in.Picture.ContentType == "image/png" && bytes.Equal(in.Picture.Data, pngHeader)
		})).
		Return(&entity.User{ID: "uid-1", Email: "ada@example.com", Company: "Analytical Engines", Skills: []string{"math", "poetry"}}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("company", "Analytical Engines"))
	require.NoError(t, writer.WriteField("skills", "math, poetry"))
	require.NoError(t, writer.WriteField("city", "London"))
	part, err := writer.CreateFormFile("profile_pic", "me.png")
	require.NoError(t, err)
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.AddCookie(fx.loggedInCookie(t))
	rec := fx.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view usecase.ProfileView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, "math, poetry", view.SkillsText)
	assert.Equal(t, entity.MissingValue, view.Phone)
}

func TestAPI_GetProfileWithoutDocument(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())
	fx.profiles.EXPECT().GetProfile(mock.Anything, "uid-1").Return(&usecase.ProfileResult{Exists: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.AddCookie(fx.loggedInCookie(t))
	rec := fx.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view usecase.ProfileView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.False(t, view.Exists)
	assert.Equal(t, "ada@example.com", view.Email)
}

func TestAPI_Members(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())
	fx.members.EXPECT().ListMembers(mock.Anything).Return([]*usecase.MemberCard{{ID: "uid-1", Name: "Ada Lovelace"}}, nil)
	fx.members.EXPECT().ContactQRCode(mock.Anything, "uid-1").Return([]byte("png-bytes"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	req.AddCookie(fx.loggedInCookie(t))
	rec := fx.serve(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/members/uid-1/qr", nil)
	req.AddCookie(fx.loggedInCookie(t))
	rec = fx.serve(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestAPI_InternalErrorsAreHidden(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())
	fx.members.EXPECT().ListMembers(mock.Anything).Return(nil, errors.New("firestore: connection reset"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	req.AddCookie(fx.loggedInCookie(t))
	rec := fx.serve(req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestAPI_AuthRateLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.RateLimit = &config.RateLimitConfig{AuthPerSecond: 0.001, AuthBurst: 1}
	fx := createTestAPI(t, cfg)

	first := fx.serve(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	second := fx.serve(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestAPI_FilesDisabledWithoutReader(t *testing.T) {
	fx := createTestAPI(t, newTestConfig())

	rec := fx.serve(httptest.NewRequest(http.MethodGet, "/files?obj=x", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
