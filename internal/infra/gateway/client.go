// Package gateway implements service.Gateway over the shop's HTTP/JSON API.
// Every response is decoded into wire structs and validated before it becomes an entity.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/validator"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxResponseBytes = 10 << 20

	headerAuthorization = "Authorization"
	headerAccept        = "Accept"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

// TokenSource yields the current token pair; the credential repository satisfies it.
type TokenSource interface {
	Current() entity.Session
}

// Params holds dependencies for the gateway client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Tokens repository.CredentialRepository
}

// Client talks to the shop backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	validate   *validator.CustomValidator
	logger     *slog.Logger
}

// New creates the gateway client from configuration.
func New(params Params) service.Gateway {
	return NewClient(
		params.Config.Gateway.BaseURL,
		&http.Client{Timeout: params.Config.Gateway.Timeout},
		params.Tokens,
		params.Logger,
	)
}

// NewClient creates a client for baseURL (e.g. http://127.0.0.1:8000/api).
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		validate:   validator.New(),
		logger:     logger,
	}
}

var _ service.Gateway = (*Client)(nil)

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// response is a fully read HTTP response.
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= http.StatusOK && r.status < http.StatusMultipleChoices
}

// detail returns the server's {"detail": "..."} message, if any.
func (r *response) detail() string {
	var body domainerrors.DetailResponse
	if err := json.Unmarshal(r.body, &body); err != nil {
		return ""
	}

	return strings.TrimSpace(body.Detail)
}

// do sends one request with the bearer token (when present) and the request ID of ctx.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*response, error) {
	ctx, requestID := deliverycontext.EnsureRequestID(ctx)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set(headerAccept, contentTypeJSON)
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}
	if token := c.tokens.Current().AccessToken; token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx).Warn("Gateway request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	c.log(ctx).Debug("Gateway request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
		slog.String("request_id", requestID),
	)

	return &response{status: resp.StatusCode, body: data}, nil
}

// doJSON sends payload as a JSON body; a nil payload sends no body.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (*response, error) {
	if payload == nil {
		return c.do(ctx, method, path, nil, "")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return c.do(ctx, method, path, bytes.NewReader(data), contentTypeJSON)
}

// transportFailure converts a network-level error into a FetchError that keeps the cause as details.
func transportFailure(message string, err error) error {
	return errors.WithStack(domainerrors.NewFetchError(0, message).WithDetails(err.Error()))
}

// authFailure reports a rejected login/registration with the server's detail when present.
func authFailure(resp *response, fallback string) error {
	message := resp.detail()
	if message == "" {
		message = fallback
	}

	return errors.WithStack(domainerrors.NewAuthError(resp.status, message))
}

// fetchFailure reports a non-2xx response. Only some operations surface the server detail.
func fetchFailure(resp *response, fallback string, useDetail bool) error {
	message := fallback
	if useDetail {
		if detail := resp.detail(); detail != "" {
			message = detail
		}
	}

	return errors.WithStack(domainerrors.NewFetchError(resp.status, message))
}

// shapeFailure reports a 2xx response whose body could not be trusted.
func shapeFailure(what string, err error) error {
	return errors.WithStack(domainerrors.NewShapeError(fmt.Sprintf("%s: %v", what, err)))
}

// decodeValid unmarshals body into v and validates it.
func (c *Client) decodeValid(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return errors.WithStack(err)
	}

	return c.validate.Validate(v)
}

func idPath(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10) + "/"
}
