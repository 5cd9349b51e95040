package esi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvBaseUrl   = "ESI_URL"
	EnvRateLimit = "ESI_RATE_LIMIT"

	defaultBaseUrl   = "https://esi.evetech.net/latest"
	defaultRateLimit = 20
	userAgent        = "wizard-industry"
)

var (
	ErrForbidden = errors.New("esi forbidden")
	ErrNotFound  = errors.New("esi not found")
	ErrStatus    = errors.New("esi unexpected status")
)

type Client struct {
	baseUrl string
	hc      *http.Client
	limiter *rate.Limiter
}

type Configurator func(c *Client)

func SetHttpClient(hc *http.Client) Configurator {
	return func(c *Client) {
		c.hc = hc
	}
}

func SetLimiter(limiter *rate.Limiter) Configurator {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func NewClient(baseUrl string, configurators ...Configurator) *Client {
	c := &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateLimit*2),
	}
	for _, configurator := range configurators {
		configurator(c)
	}
	return c
}

func NewClientFromEnv() *Client {
	baseUrl := defaultBaseUrl
	if val, ok := os.LookupEnv(EnvBaseUrl); ok {
		baseUrl = val
	}
	limit := defaultRateLimit
	if val, ok := os.LookupEnv(EnvRateLimit); ok {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			limit = v
		}
	}
	return NewClient(baseUrl, SetLimiter(rate.NewLimiter(rate.Limit(limit), limit*2)))
}

type request struct {
	operation string
	method    string
	path      string
	token     string
	etag      string
	body      interface{}
}

type response struct {
	etag        string
	notModified bool
}

func do[T any](ctx context.Context, c *Client, r request) (T, response, error) {
	var result T

	span, ctx := opentracing.StartSpanFromContext(ctx, "esi."+r.operation)
	defer span.Finish()

	err := c.limiter.Wait(ctx)
	if err != nil {
		return result, response{}, err
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return result, response{}, err
		}
		body = bytes.NewReader(data)
	}

	url := c.baseUrl + r.path
	req, err := http.NewRequestWithContext(ctx, r.method, url, body)
	if err != nil {
		return result, response{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.etag != "" {
		req.Header.Set("If-None-Match", r.etag)
	}

	ext.HTTPMethod.Set(span, r.method)
	ext.HTTPUrl.Set(span, url)
	_ = opentracing.GlobalTracer().Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))

	resp, err := c.hc.Do(req)
	if err != nil {
		ext.Error.Set(span, true)
		return result, response{}, err
	}
	defer resp.Body.Close()
	ext.HTTPStatusCode.Set(span, uint16(resp.StatusCode))

	meta := response{etag: resp.Header.Get("ETag")}
	if resp.StatusCode == http.StatusNotModified {
		meta.notModified = true
		return result, meta, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ext.Error.Set(span, true)
		return result, meta, statusError(resp.StatusCode, r.path)
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return result, meta, fmt.Errorf("decoding %s: %w", r.path, err)
	}
	return result, meta, nil
}

func get[T any](ctx context.Context, c *Client, operation string, path string, token string) (T, error) {
	res, _, err := do[T](ctx, c, request{operation: operation, method: http.MethodGet, path: path, token: token})
	return res, err
}

func statusError(code int, path string) error {
	switch code {
	case http.StatusForbidden, http.StatusUnauthorized:
		return fmt.Errorf("%w: %s returned %d", ErrForbidden, path, code)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("%w: %s returned %d", ErrStatus, path, code)
}
