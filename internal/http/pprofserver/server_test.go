package pprofserver

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func guardRequest(t *testing.T, cfg Config, remoteAddr, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := authOrLocalOnly(next, cfg)

	req := httptest.NewRequest(http.MethodGet, "http://example/debug/pprof/", nil)
	req.RemoteAddr = remoteAddr
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGuard_LoopbackBypassesAuth(t *testing.T) {
	rr := guardRequest(t, Config{}, "127.0.0.1:12345", "")
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestGuard_RemoteWithoutCredsConfigured(t *testing.T) {
	rr := guardRequest(t, Config{}, "8.8.8.8:54444", "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
}

func TestGuard_RemoteWrongPassword(t *testing.T) {
	rr := guardRequest(t, Config{User: "u", Pass: "p"}, "8.8.8.8:54444", basicAuth("u", "WRONG"))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGuard_RemoteCorrectCreds(t *testing.T) {
	rr := guardRequest(t, Config{User: "u", Pass: "p"}, "8.8.8.8:54444", basicAuth("u", "p"))
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestIsLoopback(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"127.0.0.1:123", true},
		{"127.0.0.1", true},
		{" 127.0.0.1 ", true},
		{"[::1]:123", true},
		{"8.8.8.8:1", false},
		{"not-an-ip:1", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, isLoopback(tc.in), tc.in)
	}
}
