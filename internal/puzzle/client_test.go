package puzzle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

const input = ".S.\n.^.\n"

type fakeSite struct {
	*httptest.Server
	hits atomic.Int32
}

func newFakeSite(t *testing.T) *fakeSite {
	t.Helper()
	site := &fakeSite{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /2025/day/7/input", func(w http.ResponseWriter, r *http.Request) {
		site.hits.Add(1)
		c, err := r.Cookie("session")
		if err != nil || c.Value != "token" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Puzzle inputs differ by user.  Please log in to get your puzzle input.\n"))
			return
		}
		if r.UserAgent() != userAgent {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(input))
	})
	site.Server = httptest.NewServer(mux)
	t.Cleanup(site.Close)
	return site
}

func newTestClient(t *testing.T, site *fakeSite, session string, opts ...Option) *Client {
	t.Helper()
	c, err := NewClient(Config{BaseURL: site.URL + "/", Year: 2025, Session: session}, opts...)
	require.NoError(t, err)
	return c
}

func TestNewClientNoSession(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://localhost", Year: 2025})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestInput(t *testing.T) {
	site := newFakeSite(t)
	c := newTestClient(t, site, "token")

	got, err := c.Input(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestInputBadSession(t *testing.T) {
	site := newFakeSite(t)
	c := newTestClient(t, site, "wrong")

	_, err := c.Input(context.Background(), 7)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 7, fe.Day)
	assert.Equal(t, http.StatusBadRequest, fe.StatusCode)
}

func TestInputNotFound(t *testing.T) {
	site := newFakeSite(t)
	c := newTestClient(t, site, "token")

	_, err := c.Input(context.Background(), 8)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}

func TestInputInvalidDay(t *testing.T) {
	site := newFakeSite(t)
	c := newTestClient(t, site, "token")

	for _, day := range []int{0, 26, -1} {
		_, err := c.Input(context.Background(), day)
		assert.ErrorIs(t, err, ErrInvalidDay, "day %d", day)
	}
	assert.Zero(t, site.hits.Load())
}

func TestInputCanceled(t *testing.T) {
	site := newFakeSite(t)
	c := newTestClient(t, site, "token")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Input(ctx, 7)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCachedInput(t *testing.T) {
	site := newFakeSite(t)
	cache := NewCache(t.TempDir())
	c := newTestClient(t, site, "token", WithCache(cache))

	for range 3 {
		got, err := c.CachedInput(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, input, got)
	}
	assert.EqualValues(t, 1, site.hits.Load())

	cached, err := cache.Load(2025, 7)
	require.NoError(t, err)
	assert.Equal(t, input, cached)
}

func TestCachedInputWithoutCache(t *testing.T) {
	site := newFakeSite(t)
	c := newTestClient(t, site, "token")

	for range 2 {
		_, err := c.CachedInput(context.Background(), 7)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, site.hits.Load())
}

func TestCachedInputDoesNotStoreFailures(t *testing.T) {
	site := newFakeSite(t)
	cache := NewCache(t.TempDir())
	c := newTestClient(t, site, "wrong", WithCache(cache))

	_, err := c.CachedInput(context.Background(), 7)
	require.Error(t, err)

	_, err = cache.Load(2025, 7)
	assert.ErrorIs(t, err, ErrNotCached)
}
