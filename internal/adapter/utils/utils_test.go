package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetRouter_KeepsRemoteAddrByDefault(t *testing.T) {
	r := GetRouter().Router
	r.Get("/remote-addr", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(req.RemoteAddr))
	})

	req := httptest.NewRequest(http.MethodGet, "/remote-addr", nil)
	req.RemoteAddr = "10.0.0.9:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("X-Real-IP", "203.0.113.8")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Body.String(); got != "10.0.0.9:5000" {
		t.Errorf("RemoteAddr = %q; want the connection address", got)
	}
}
