package api

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// TokenStore persists the auth token between runs. The UI never touches
// storage directly; the client owns the token lifecycle.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Client wraps the marina backend REST API. It attaches the bearer token
// to every request when one is present and clears it on the first 401,
// firing the registered unauthorized callback once per authenticated
// session. There is no retry or request queuing.
type Client struct {
	http   *resty.Client
	logger *zap.Logger

	mu             sync.Mutex
	token          string
	store          TokenStore
	onUnauthorized func()
}

// New creates a client for the given base URL. A previously saved token is
// loaded from the store so a restart stays logged in.
func New(baseURL string, timeout time.Duration, store TokenStore, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		store:  store,
		logger: logger,
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok := c.Token(); tok != "" {
			req.SetAuthToken(tok)
		}
		return nil
	})

	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == 401 {
			c.handleUnauthorized(resp.Request.URL)
		}
		return nil
	})

	if store != nil {
		if tok, err := store.Load(); err == nil && tok != "" {
			c.token = tok
		}
	}

	return c
}

// Token returns the current bearer token, or "" when logged out
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// SetToken stores a new token and re-arms the unauthorized callback
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Save(token); err != nil {
			c.logger.Warn("failed to persist auth token", zap.Error(err))
		}
	}
}

// ClearToken forgets the token, locally and in the store
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Clear(); err != nil {
			c.logger.Warn("failed to clear auth token", zap.Error(err))
		}
	}
}

// OnUnauthorized registers the callback fired when a 401 ends the session
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// handleUnauthorized clears the token and fires the callback. A 401 while
// logged out (e.g. a failed login attempt) is left to the caller.
func (c *Client) handleUnauthorized(url string) {
	c.mu.Lock()
	if c.token == "" {
		c.mu.Unlock()
		return
	}
	c.token = ""
	fn := c.onUnauthorized
	c.mu.Unlock()

	c.logger.Info("session expired, clearing token", zap.String("url", url))
	if c.store != nil {
		if err := c.store.Clear(); err != nil {
			c.logger.Warn("failed to clear auth token", zap.Error(err))
		}
	}
	if fn != nil {
		fn()
	}
}

// request helpers - every resource method funnels through these so error
// conversion happens in exactly one place

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Get(path)
	return c.check(resp, err)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	return c.check(resp, err)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Patch(path)
	return c.check(resp, err)
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(path)
	return c.check(resp, err)
}

func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("request failed",
			zap.String("url", resp.Request.URL),
			zap.Error(err),
		)
		return err
	}
	if resp.IsError() {
		apiErr := newError(resp)
		c.logger.Warn("backend returned error",
			zap.String("url", resp.Request.URL),
			zap.Int("status", apiErr.Status),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}
	return nil
}
