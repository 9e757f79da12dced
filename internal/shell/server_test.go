package shell

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const (
	testIndex = "<!doctype html><title>Pokédex</title>"
	testAsset = "console.log('pokedex')"
)

func newTestServer(t *testing.T, withIndex bool) *Server {
	t.Helper()
	dir := t.TempDir()
	if withIndex {
		if err := os.WriteFile(filepath.Join(dir, indexFile), []byte(testIndex), 0o644); err != nil {
			t.Fatalf("write index: %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte(testAsset), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	srv, err := New(Options{PublicDir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeAppFallsBackToIndex(t *testing.T) {
	srv := newTestServer(t, true)

	tests := []struct {
		target string
		want   string
	}{
		{"/", testIndex},
		{"/assets/app.js", testAsset},
		{"/pokemon/25", testIndex},
		{"/assets", testIndex},
		{"/../../etc/passwd", testIndex},
		{"/assets/missing.js", testIndex},
	}
	for _, tt := range tests {
		rec := get(t, srv.Handler(), tt.target)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", tt.target, rec.Code)
		}
		if got := rec.Body.String(); got != tt.want {
			t.Fatalf("GET %s body = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestServeAppMissingIndex(t *testing.T) {
	srv := newTestServer(t, false)

	rec := get(t, srv.Handler(), "/anything")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != ServerErrorMessage {
		t.Fatalf("body = %q, want %q", got, ServerErrorMessage)
	}

	// Existing files are still served.
	rec = get(t, srv.Handler(), "/assets/app.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("asset status = %d, want 200", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, true)
	rec := get(t, srv.Handler(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestMetricsCountsByStatusClass(t *testing.T) {
	srv := newTestServer(t, false)
	get(t, srv.Handler(), "/healthz")
	get(t, srv.Handler(), "/missing")

	body := get(t, srv.Handler(), "/metrics").Body.String()
	for _, want := range []string{
		`pokedex_shell_requests_total{class="2xx"} 1`,
		`pokedex_shell_requests_total{class="5xx"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q:\n%s", want, body)
		}
	}
}

func TestRecovererReturns500(t *testing.T) {
	srv := newTestServer(t, true)
	h := srv.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := get(t, h, "/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != ServerErrorMessage {
		t.Fatalf("body = %q, want %q", got, ServerErrorMessage)
	}
}

func TestNewRejectsMissingDir(t *testing.T) {
	if _, err := New(Options{PublicDir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatal("expected error for missing public dir")
	}
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error for empty public dir")
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{200: "2xx", 304: "3xx", 404: "4xx", 500: "5xx", 0: "other", 700: "other"}
	for code, want := range tests {
		if got := statusClass(code); got != want {
			t.Fatalf("statusClass(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestListenSkipsBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	ln, err := Listen("127.0.0.1", port, 5)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	got := ln.Addr().(*net.TCPAddr).Port
	if got <= port || got >= port+5 {
		t.Fatalf("port = %d, want in (%d, %d)", got, port, port+5)
	}
}

func TestListenGivesUpAfterAttempts(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	if ln, err := Listen("127.0.0.1", port, 1); err == nil {
		ln.Close()
		t.Fatal("expected error when the only port is busy")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, true)
	ln, err := Listen("127.0.0.1", 0, 1)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("body = %q, want %q", body, "ok")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
