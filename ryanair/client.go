package ryanair

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultRoutesUrl    = "https://services-api.ryanair.com/locate/3/routes"
	DefaultSchedulesUrl = "https://services-api.ryanair.com/timtbl/3/schedules"
)

var (
	ErrRateLimit                    = errors.New("rate limit error")
	ErrRateLimitWouldExceedDeadline = errors.New("rate limit wait would deadline")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type responseStatusErr struct {
	StatusCode int
	Status     string
}

func (e responseStatusErr) Error() string {
	return e.Status
}

// StatusCode returns the http status of a failed request, or 0 if err did
// not originate from a non-200 response.
func StatusCode(err error) int {
	var statusErr responseStatusErr
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}

type Client struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	routesUrl    string
	schedulesUrl string
}

type ClientOption func(c *Client)

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithRoutesUrl(routesUrl string) ClientOption {
	return func(c *Client) {
		c.routesUrl = routesUrl
	}
}

func WithSchedulesUrl(schedulesUrl string) ClientOption {
	return func(c *Client) {
		c.schedulesUrl = strings.TrimSuffix(schedulesUrl, "/")
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = cmp.Or(c.httpClient, http.DefaultClient)
	c.routesUrl = cmp.Or(c.routesUrl, DefaultRoutesUrl)
	c.schedulesUrl = cmp.Or(c.schedulesUrl, DefaultSchedulesUrl)

	return c
}

func (c *Client) Routes(ctx context.Context) ([]Route, error) {
	routes, err := doRequest[[]Route](ctx, c, c.routesUrl, readJsonFunc[[]Route]())
	if err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}

	return routes, nil
}

func (c *Client) Schedule(ctx context.Context, departure, arrival string, year int, month time.Month) (Schedule, error) {
	surl := fmt.Sprintf(
		"%s/%s/%s/years/%d/months/%d",
		c.schedulesUrl,
		url.PathEscape(departure),
		url.PathEscape(arrival),
		year,
		int(month),
	)

	schedule, err := doRequest[Schedule](ctx, c, surl, readJsonFunc[Schedule]())
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule %s-%s %04d-%02d: %w", departure, arrival, year, month, err)
	}

	return schedule, nil
}

func (c *Client) doRequest(ctx context.Context, surl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, surl, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Referer", "https://www.ryanair.com")

	if c.limiter != nil {
		if err = c.limiter.Wait(ctx); err != nil {
			return nil, decorateLimiterErr(err)
		}
	}

	return c.httpClient.Do(req)
}

func doRequest[T any](ctx context.Context, c *Client, surl string, f func(r io.Reader) (T, error)) (T, error) {
	resp, err := c.doRequest(ctx, surl)
	if err != nil {
		var def T
		return def, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var def T
		return def, responseStatusErr{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return f(resp.Body)
}

func readJsonFunc[T any]() func(r io.Reader) (T, error) {
	return func(r io.Reader) (T, error) {
		var res T
		if err := json.NewDecoder(r).Decode(&res); err != nil {
			return res, fmt.Errorf("failed to parse response: %w", err)
		}

		return res, nil
	}
}

func decorateLimiterErr(err error) error {
	err = errors.Join(err, ErrRateLimit)

	if strings.Contains(err.Error(), "would exceed context deadline") {
		err = errors.Join(err, ErrRateLimitWouldExceedDeadline)
	}

	return err
}
