package app

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/five82/pokedex/internal/config"
)

func TestNewControllerTalksToConfiguredAPI(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"name":"fire","url":"x"},{"name":"water","url":"y"}]}`))
	}))
	defer srv.Close()

	cfg := config.Defaults()
	cfg.APIBaseURL = srv.URL
	ctrl, err := NewController(cfg)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	names, err := ctrl.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(names) != 2 || names[0] != "fire" {
		t.Fatalf("Categories = %v, want [fire water]", names)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("hits = %d, want 1", n)
	}
}

func TestNewControllerRejectsBadURL(t *testing.T) {
	cfg := config.Defaults()
	cfg.APIBaseURL = "http://"
	if _, err := NewController(cfg); err == nil {
		t.Fatal("expected error for base url without host")
	}
}

func TestShellServerOptions(t *testing.T) {
	cfg := config.Defaults()
	cfg.Shell.Port = 4000
	cfg.Shell.MaxPortAttempts = 3
	cfg.Shell.PublicDir = t.TempDir()

	opts := ShellServerOptions(cfg)
	if opts.Port != 4000 || opts.MaxPortAttempts != 3 {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.PublicDir != cfg.Shell.PublicDir {
		t.Fatalf("PublicDir = %q, want %q", opts.PublicDir, cfg.Shell.PublicDir)
	}
}

func TestRunShellStopsOnCancel(t *testing.T) {
	t.Setenv(config.PortEnv, "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunShell(ctx, ShellOptions{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		PublicDir:  dir,
		Port:       freePort(t),
		LogLevel:   "disabled",
	})
	if err != nil {
		t.Fatalf("RunShell: %v", err)
	}
}

func TestRunShellMissingPublicDir(t *testing.T) {
	err := RunShell(context.Background(), ShellOptions{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		PublicDir:  filepath.Join(t.TempDir(), "nope"),
		LogLevel:   "disabled",
	})
	if err == nil {
		t.Fatal("expected error for missing public dir")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
