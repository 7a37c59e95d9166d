// Package feishu implements the Bitable API adapter used to source articles.
package feishu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"bitablog/config"
	"bitablog/internal/domain/entity"
	domainerrors "bitablog/internal/domain/errors"
	"bitablog/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	tenantAccessTokenPath = "/open-apis/auth/v3/tenant_access_token/internal"
	bitableRecordsPath    = "/open-apis/bitable/v1/apps/%s/tables/%s/records"

	// maxResponseBytes caps how much of an upstream body is read.
	maxResponseBytes = 16 << 20
)

type tokenRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

type tokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	Expire            int64  `json:"expire"` // seconds
}

type recordsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Items []entity.RawRecord `json:"items"`
	} `json:"data"`
}

// client implements service.BitableClient over HTTP.
type client struct {
	host       string
	appID      string
	appSecret  string
	baseID     string
	tableID    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// Option customizes the client.
type Option func(*client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithClock injects the time source used to compute token expiry.
func WithClock(now func() time.Time) Option {
	return func(c *client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient creates a Bitable client for the configured app and table.
func NewClient(cfg *config.FeishuConfig, logger *slog.Logger, opts ...Option) service.BitableClient {
	c := &client{
		host:      cfg.Host,
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		baseID:    cfg.BaseID,
		tableID:   cfg.TableID,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClientFromConfig is the fx constructor for the Bitable client.
func NewClientFromConfig(cfg *config.Config, logger *slog.Logger) service.BitableClient {
	return NewClient(cfg.Feishu, logger)
}

// TenantAccessToken requests a tenant access token. The expiry is stamped with the local clock
// at the moment the response is decoded.
func (c *client) TenantAccessToken(ctx context.Context) (entity.Token, error) {
	body, err := json.Marshal(tokenRequest{AppID: c.appID, AppSecret: c.appSecret})
	if err != nil {
		return entity.Token{}, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+tenantAccessTokenPath, bytes.NewReader(body))
	if err != nil {
		return entity.Token{}, domainerrors.NewUpstreamError(domainerrors.AuthFailure, errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	var resp tokenResponse
	if err := c.do(req, &resp); err != nil {
		return entity.Token{}, domainerrors.NewUpstreamError(domainerrors.AuthFailure, err)
	}

	if resp.Code != 0 {
		return entity.Token{}, &domainerrors.UpstreamError{
			Kind: domainerrors.AuthFailure,
			Code: resp.Code,
			Msg:  resp.Msg,
		}
	}

	c.logger.Debug("Tenant access token obtained", slog.Int64("expire", resp.Expire))

	return entity.Token{
		Value:     resp.TenantAccessToken,
		ExpiresAt: c.now().Add(time.Duration(resp.Expire) * time.Second),
	}, nil
}

// ListRecords fetches the records of the configured table with a single GET.
func (c *client) ListRecords(ctx context.Context, token string) ([]entity.RawRecord, error) {
	endpoint := c.host + fmt.Sprintf(bitableRecordsPath, url.PathEscape(c.baseID), url.PathEscape(c.tableID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.FetchFailure, errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+token)

	var resp recordsResponse
	if err := c.do(req, &resp); err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.FetchFailure, err)
	}

	if resp.Code != 0 {
		return nil, &domainerrors.UpstreamError{
			Kind: domainerrors.FetchFailure,
			Code: resp.Code,
			Msg:  resp.Msg,
		}
	}

	if resp.Data.Items == nil {
		return []entity.RawRecord{}, nil
	}

	return resp.Data.Items, nil
}

// do sends req and decodes a JSON body into out. Non-2xx statuses are errors even when the
// body carries an upstream code.
func (c *client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "read upstream response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.Path}
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "decode upstream response")
	}

	return nil
}

// HTTPError represents a non-success HTTP status from upstream
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}
