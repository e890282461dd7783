package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"beerhaus/config"
	deliverycontext "beerhaus/internal/delivery/context"
	"beerhaus/internal/domain/constants"
	"beerhaus/internal/domain/entity"
	"beerhaus/internal/domain/repository"
	"beerhaus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Outcome labels recorded for every consumed event
const (
	outcomeProcessed = "processed"
	outcomeDropped   = "dropped"
	outcomeRetry     = "retry"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes community events pushed by Pub/Sub.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verifyToken    func(req *http.Request, audience string) error
	logger         *slog.Logger
	announcements  repository.AnnouncementRepository
	metrics        service.MetricsRecorder
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	AnnouncementRepo repository.AnnouncementRepository
	Metrics          service.MetricsRecorder
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub pushes carry a signed token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal

	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		announcements:  params.AnnouncementRepo,
		metrics:        params.Metrics,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
//
// Malformed and obsolete events are acknowledged so Pub/Sub stops
// redelivering them. Store failures answer 503 to trigger a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request(), h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.CommunityEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse community event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processEvent(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process community event",
			slog.String("type", string(event.Type)),
			slog.String("announcement_id", event.AnnouncementID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			h.metrics.RecordEventConsumed(string(event.Type), outcomeRetry)

			return c.NoContent(http.StatusServiceUnavailable)
		}
		h.metrics.RecordEventConsumed(string(event.Type), outcomeDropped)

		return c.NoContent(http.StatusOK)
	}

	h.metrics.RecordEventConsumed(string(event.Type), outcomeProcessed)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the context
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.CommunityEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent confirms the announcement still exists and logs the activity.
func (h *PushHandler) processEvent(ctx context.Context, event *entity.CommunityEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if !event.Type.Known() {
		return errors.Errorf("unknown event type %q", event.Type)
	}
	if strings.TrimSpace(event.AnnouncementID) == "" {
		return errors.New("event without announcement id")
	}

	announcement, err := h.announcements.FindByID(ctx, event.AnnouncementID)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return errors.Wrapf(err, "announcement %s", event.AnnouncementID)
		}

		return newRetryableError(errors.WithStack(err))
	}

	logger.Info("[Worker] Community activity",
		slog.String("type", string(event.Type)),
		slog.String("announcement_id", announcement.ID),
		slog.String("title", announcement.Title),
		slog.String("author", event.Author),
		slog.Int("comment_count", announcement.CommentCount()),
		slog.Time("occurred_at", event.OccurredAt),
	)

	return nil
}

// verifyPubSubToken validates the OIDC token Pub/Sub attaches to push requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Default to the URL of this endpoint
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
