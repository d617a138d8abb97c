package middleware

import "net/http"

// Session attaches the puzzle site session cookie to every request.
func Session(token string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			r = r.Clone(r.Context())
			r.AddCookie(&http.Cookie{Name: "session", Value: token})
			return next.RoundTrip(r)
		})
	}
}
