package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"exam_client/internal/client"
	"exam_client/internal/config"

	"github.com/stretchr/testify/require"
)

// fakeBackend 按路径返回固定响应，并统计调用次数
type fakeBackend struct {
	mux   *http.ServeMux
	calls atomic.Int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{mux: http.NewServeMux()}
}

func (f *fakeBackend) handle(pattern string, code int, body any) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, code, body)
	})
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	f.mux.ServeHTTP(w, r)
}

func (f *fakeBackend) client(t *testing.T) *client.Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c, err := client.New(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
}

type resetCounter struct {
	n atomic.Int32
}

func (r *resetCounter) Reset() {
	r.n.Add(1)
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
