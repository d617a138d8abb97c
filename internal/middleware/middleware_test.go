package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			w.Header().Set("X-Session", c.Value)
		}
		w.Header().Set("X-User-Agent", r.UserAgent())
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWrap(t *testing.T) {
	srv := echoServer(t)

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	client := &http.Client{Transport: Wrap(
		nil,
		Logging(logger),
		Session("secret"),
		UserAgent("test-agent"),
	)}

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/2025/day/7/input", nil)
	require.NoError(t, err)
	res, err := client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusTeapot, res.StatusCode)
	assert.Equal(t, "secret", res.Header.Get("X-Session"))
	assert.Equal(t, "test-agent", res.Header.Get("X-User-Agent"))
	assert.Empty(t, req.Header.Get("User-Agent"), "caller's request must not be modified")

	assert.Contains(t, buf.String(), "handled request")
	assert.Contains(t, buf.String(), "statusCode=418")
	assert.NotContains(t, buf.String(), "secret")
}

func TestLoggingError(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	failing := RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("boom")
	})
	client := &http.Client{Transport: Wrap(failing, Logging(logger))}

	_, err := client.Get("http://example.invalid/")
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), "boom")
}
