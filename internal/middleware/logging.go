package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func Logging(logger logrus.FieldLogger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			logger.Debug(r.Method + " " + r.URL.Redacted())
			start := time.Now()

			res, err := next.RoundTrip(r)

			fields := logrus.Fields{
				"method":        r.Method,
				"url":           r.URL.Redacted(),
				"duration (ms)": int64(time.Since(start) / time.Millisecond),
			}
			if err != nil {
				logger.WithFields(fields).WithError(err).Warn("request failed")
				return res, err
			}
			fields["statusCode"] = res.StatusCode
			logger.WithFields(fields).Info("handled request")
			return res, nil
		})
	}
}
