// Package account verifies bearer tokens against the external account
// service. Lookups are cached briefly and guarded by a circuit breaker so an
// account outage degrades reads instead of taking the API down.
package account

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sportarena/api/internal/domain/user"
	"github.com/sportarena/api/internal/platform/cache"
	"github.com/sportarena/api/internal/platform/logging"
	"github.com/sportarena/api/internal/platform/resilience"
	"github.com/sportarena/api/internal/usecase"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultCacheTTL = 30 * time.Second

	breakerFailureThreshold = 5
	breakerOpenTimeout      = 15 * time.Second
)

// errTransient marks failures that should count against the circuit breaker.
// Rejections (401, inactive token) do not.
var errTransient = errors.New("account service transient failure")

type Client struct {
	httpClient    *http.Client
	introspectURL string
	breaker       *resilience.CircuitBreaker
	verified      *cache.Store
	logger        *logging.Logger
}

func NewClient(baseURL, introspectPath string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		introspectURL: buildURL(baseURL, introspectPath),
		breaker:       resilience.NewCircuitBreaker(breakerFailureThreshold, breakerOpenTimeout),
		verified:      cache.NewStore(defaultCacheTTL),
		logger:        logger,
	}
}

// VerifyAccessToken resolves a bearer token to a principal, serving repeat
// lookups of the same token from the short-lived cache.
func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	cacheKey := hashToken(token)
	if cached, ok := c.verified.Get(ctx, cacheKey); ok {
		return cached.(user.Principal), nil
	}

	if err := c.breaker.Allow(); err != nil {
		return user.Principal{}, fmt.Errorf("%w: account service unavailable", usecase.ErrDependencyUnavailable)
	}

	principal, err := c.introspect(ctx, token)
	if err != nil {
		if errors.Is(err, errTransient) {
			c.breaker.ReportFailure()
		} else {
			c.breaker.ReportSuccess()
		}
		return user.Principal{}, err
	}
	c.breaker.ReportSuccess()

	c.verified.Set(ctx, cacheKey, principal)

	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, errors.Mark(errors.Wrap(err, "request introspection"), errTransient)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.WarnContext(ctx, "account introspection server error",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, errors.Mark(
			errors.Newf("introspection failed with status %d", resp.StatusCode),
			errTransient,
		)
	case resp.StatusCode != http.StatusOK:
		return user.Principal{}, errors.Newf("introspection failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, errors.Mark(errors.Wrap(err, "read introspect response"), errTransient)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, errors.Wrap(err, "unmarshal introspect response")
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, errors.New("invalid introspect response: user_id is empty")
	}

	role := strings.TrimSpace(decoded.Role)
	if role == "" {
		role = user.RoleUser
	}

	return user.Principal{
		UserID: decoded.UserID,
		Name:   decoded.Name,
		Role:   role,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Cache keys are hashes so raw tokens never sit in memory longer than the
// request that carried them.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
