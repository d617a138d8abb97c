package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/aoc-2025/internal/middleware"
)

var Log = logrus.New()

const userAgent = "github.com/vancomm/aoc-2025"

var (
	ErrNoSession  = errors.New("no session token")
	ErrInvalidDay = errors.New("day must be between 1 and 25")
)

// FetchError reports a non-200 response from the puzzle site.
type FetchError struct {
	Day        int
	StatusCode int
	Status     string
}

// [FetchError] implements [error]
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching input for day %d: %s", e.Day, e.Status)
}

type Config struct {
	BaseURL string
	Year    int
	Session string
}

type Client struct {
	baseURL string
	year    int
	http    *http.Client
	cache   *Cache
}

type Option func(*Client)

// WithTransport replaces the base transport under the client middleware.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// WithCache makes [Client.CachedInput] read and fill cache.
func WithCache(cache *Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Session == "" {
		return nil, ErrNoSession
	}
	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		year:    cfg.Year,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Transport = middleware.Wrap(
		c.http.Transport,
		middleware.Logging(Log),
		middleware.Session(cfg.Session),
		middleware.UserAgent(userAgent),
	)
	return c, nil
}

// Input downloads the puzzle input for day.
func (c *Client) Input(ctx context.Context, day int) (string, error) {
	if day < 1 || day > 25 {
		return "", ErrInvalidDay
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, c.year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("unable to create request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("unable to fetch input for day %d: %w", day, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", &FetchError{Day: day, StatusCode: res.StatusCode, Status: res.Status}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("unable to read input for day %d: %w", day, err)
	}
	return string(body), nil
}

// CachedInput returns the cached input for day, fetching and storing it
// on a miss. Without a cache it is the same as [Client.Input].
func (c *Client) CachedInput(ctx context.Context, day int) (string, error) {
	if c.cache == nil {
		return c.Input(ctx, day)
	}

	input, err := c.cache.Load(c.year, day)
	if err == nil {
		Log.WithFields(logrus.Fields{"year": c.year, "day": day}).Debug("input cache hit")
		return input, nil
	}
	if !errors.Is(err, ErrNotCached) {
		return "", err
	}

	input, err = c.Input(ctx, day)
	if err != nil {
		return "", err
	}
	if err := c.cache.Store(c.year, day, input); err != nil {
		Log.WithError(err).Warn("unable to cache input")
	}
	return input, nil
}
