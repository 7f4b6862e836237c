package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"exam_client/internal/config"
	"exam_client/pkg/logger"
	"exam_client/pkg/monitoring"
	"exam_client/pkg/tracing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

const headerRequestID = "X-Request-ID"

// Client 考试后端的 REST 客户端。后端使用 cookie 会话，
// 登录后的会话 cookie 保存在 cookie jar 中，之后的请求自动携带
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
	timeout atomic.Int64
}

type Option func(*Client)

// WithHTTPClient 替换底层 http.Client，未设置 Jar 时沿用默认 jar
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc.Jar == nil {
			hc.Jar = c.http.Jar
		}
		c.http = hc
	}
}

func New(cfg config.BackendConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse backend base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid backend base url %q", cfg.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	c := &Client{
		base: base,
		http: &http.Client{Jar: jar},
	}
	c.SetTimeout(cfg.Timeout())
	if cfg.RateLimitPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), 1)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetTimeout 单次请求超时，0 表示不设超时
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout.Store(int64(d))
}

func (c *Client) Timeout() time.Duration {
	return time.Duration(c.timeout.Load())
}

// BaseURL 后端地址
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// call 发送 JSON 请求，body 为 nil 时不带请求体
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: errors.Wrap(err, "encode request")}
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.endpoint(path, query), reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(ctx, op, req, out)
}

func (c *Client) send(ctx context.Context, op string, req *http.Request, out any) error {
	if timeout := c.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &TransportError{Op: op, Err: err}
		}
	}

	ctx, span := tracing.StartClientSpan(ctx, op, req)
	reqID := uuid.NewString()
	req.Header.Set(headerRequestID, reqID)
	req.Header.Set("Accept", "application/json")
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		monitoring.ObserveBackend(op, 0, time.Since(start))
		tracing.EndClientSpan(span, 0, err)
		logger.Log.Warn("backend request failed",
			zap.String("op", op), zap.String("request_id", reqID), zap.Error(err))
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	monitoring.ObserveBackend(op, resp.StatusCode, time.Since(start))
	logger.Log.Debug("backend request",
		zap.String("op", op),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID),
		zap.Duration("elapsed", time.Since(start)))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.EndClientSpan(span, resp.StatusCode, err)
		return &TransportError{Op: op, Err: errors.Wrap(err, "read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &ServiceError{Op: op, Status: resp.StatusCode, Message: errorMessage(data, op)}
		tracing.EndClientSpan(span, resp.StatusCode, se)
		return se
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			tracing.EndClientSpan(span, resp.StatusCode, err)
			return &TransportError{Op: op, Err: errors.Wrap(err, "decode response")}
		}
	}
	tracing.EndClientSpan(span, resp.StatusCode, nil)
	return nil
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorMessage 优先取后端的 error 字段，没有时使用该操作的默认提示
func errorMessage(data []byte, op string) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return defaultMessage(op)
}
