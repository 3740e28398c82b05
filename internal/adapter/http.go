package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/utils"
	"github.com/MKhiriev/internship-tracker/models"
)

const (
	pathRegister    = "/api/auth/register"
	pathLogin       = "/api/auth/login"
	pathVersion     = "/api/version"
	pathUser        = "/api/users/{id}"
	pathInternships = "/api/internships"
	pathInternship  = "/api/internships/{id}"
	pathLive        = "/api/internships/live"
)

type httpServerAdapter struct {
	// client carries the request timeout; stream has none so live queries
	// can stay open.
	client *utils.HTTPClient
	stream *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// for cfg.ServerAddress. A bare host:port is treated as http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	stream := utils.NewHTTPClient(baseURL, 0)
	stream.SetHeader("Accept", "text/event-stream")

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		stream: stream,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	return h.authenticate(ctx, pathRegister, reg)
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, pathLogin, creds)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var out struct {
		Version string `json:"version"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("%w: version: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Version, nil
}

// SubscribeInternships implements [DocumentStore]. The request is sent on
// the stream client, which has no timeout; ctx bounds the whole stream.
func (h *httpServerAdapter) SubscribeInternships(ctx context.Context, filter models.Filter) (SnapshotStream, error) {
	resp, err := h.authed(ctx, h.stream).
		SetQueryParam(filter.Field, filter.Value).
		SetDoNotParseResponse(true).
		Get(pathLive)
	if err != nil {
		return nil, fmt.Errorf("%w: subscribe: %w", ErrUnavailable, err)
	}

	body := resp.RawBody()
	if !resp.IsSuccess() {
		defer body.Close()
		payload, _ := io.ReadAll(io.LimitReader(body, 64*1024))
		return nil, mapStatus(resp.StatusCode(), payload)
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.SubscribeInternships").
		Str("filter", filter.Field).
		Msg("live query established")

	return newSSEStream(body), nil
}

func (h *httpServerAdapter) ListInternships(ctx context.Context, filter models.Filter) ([]models.Internship, error) {
	var out []models.Internship

	resp, err := h.authed(ctx, h.client).
		SetQueryParam(filter.Field, filter.Value).
		SetResult(&out).
		Get(pathInternships)
	if err != nil {
		return nil, fmt.Errorf("%w: list internships: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out, nil
}

func (h *httpServerAdapter) InsertInternship(ctx context.Context, rec models.Internship) (string, error) {
	var out models.Internship

	resp, err := h.authed(ctx, h.client).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		SetResult(&out).
		Post(pathInternships)
	if err != nil {
		return "", fmt.Errorf("%w: insert internship: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.ID, nil
}

func (h *httpServerAdapter) UpdateInternship(ctx context.Context, rec models.Internship) error {
	resp, err := h.authed(ctx, h.client).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", rec.ID).
		SetBody(rec).
		Put(pathInternship)
	if err != nil {
		return fmt.Errorf("%w: update internship: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteInternship(ctx context.Context, id string) error {
	resp, err := h.authed(ctx, h.client).
		SetPathParam("id", id).
		Delete(pathInternship)
	if err != nil {
		return fmt.Errorf("%w: delete internship: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetInternship(ctx context.Context, id string) (models.Internship, error) {
	var out models.Internship

	resp, err := h.authed(ctx, h.client).
		SetPathParam("id", id).
		SetResult(&out).
		Get(pathInternship)
	if err != nil {
		return models.Internship{}, fmt.Errorf("%w: get internship: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Internship{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var out models.User

	resp, err := h.authed(ctx, h.client).
		SetPathParam("id", id).
		SetResult(&out).
		Get(pathUser)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: get user: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return out, nil
}

// authed starts a request on c carrying the bearer token.
func (h *httpServerAdapter) authed(ctx context.Context, c *utils.HTTPClient) *resty.Request {
	return c.R().
		SetContext(ctx).
		SetAuthToken(h.Token())
}
