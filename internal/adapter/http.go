package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, http is assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewServerClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *httpServerAdapter) GetSession(ctx context.Context) (models.SessionInfo, error) {
	var info models.SessionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/session")
	if err != nil {
		return models.SessionInfo{}, transportError("get session", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInfo{}, err
	}

	return info, nil
}

// Login implements [ServerAdapter]. The token from the Authorization response
// header replaces the stored one.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&account).
		Post("/api/session")
	if err != nil {
		return models.Account{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.Account{}, fmt.Errorf("login: %w", err)
	}
	return account, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(reg).
		SetResult(&account).
		Post("/api/accounts")
	if err != nil {
		return models.Account{}, transportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	if err = h.storeToken(resp); err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}
	return account, nil
}

// Logout implements [ServerAdapter]. The stored token is dropped when the
// server ended the session or no longer accepts the token.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/session")
	if err != nil {
		return transportError("logout", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.SetToken("")
		}
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Account, error) {
	var account models.Account

	resp, err := h.authedRequest(ctx).
		SetBody(patch).
		SetResult(&account).
		Patch("/api/profile")
	if err != nil {
		return models.Account{}, transportError("update profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	resp, err := h.authedRequest(ctx).
		SetBody(change).
		Put("/api/profile/password")
	if err != nil {
		return transportError("change password", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetTheme(ctx context.Context) (models.ThemeInfo, error) {
	return h.themeRequest(ctx, "get theme", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/api/theme")
	})
}

func (h *httpServerAdapter) SetTheme(ctx context.Context, theme models.Theme) (models.ThemeInfo, error) {
	return h.themeRequest(ctx, "set theme", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(models.ThemeInfo{Theme: theme}).Put("/api/theme")
	})
}

func (h *httpServerAdapter) ToggleTheme(ctx context.Context) (models.ThemeInfo, error) {
	return h.themeRequest(ctx, "toggle theme", func(req *resty.Request) (*resty.Response, error) {
		return req.Post("/api/theme/toggle")
	})
}

func (h *httpServerAdapter) GetReadings(ctx context.Context, r models.TimeRange) (models.ReadingsReport, error) {
	return h.readingsRequest(ctx, "get readings", func(req *resty.Request) (*resty.Response, error) {
		return req.SetQueryParam("range", string(r)).Get("/api/readings")
	})
}

func (h *httpServerAdapter) GetOverview(ctx context.Context) (models.ReadingsReport, error) {
	return h.readingsRequest(ctx, "get overview", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/api/readings/overview")
	})
}

func (h *httpServerAdapter) GetBuildInfo(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, transportError("get version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) themeRequest(ctx context.Context, op string, send func(*resty.Request) (*resty.Response, error)) (models.ThemeInfo, error) {
	var info models.ThemeInfo

	resp, err := send(h.client.R().SetContext(ctx).SetResult(&info))
	if err != nil {
		return models.ThemeInfo{}, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ThemeInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) readingsRequest(ctx context.Context, op string, send func(*resty.Request) (*resty.Response, error)) (models.ReadingsReport, error) {
	var report models.ReadingsReport

	resp, err := send(h.client.R().SetContext(ctx).SetResult(&report))
	if err != nil {
		return models.ReadingsReport{}, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReadingsReport{}, err
	}

	return report, nil
}

func (h *httpServerAdapter) storeToken(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
