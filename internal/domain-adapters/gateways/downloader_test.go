package gateways

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ochairo/clangfetch/internal/domain/interfaces"
)

const scriptBody = "#!/usr/bin/env python3\nprint('update')\n"

type capturingLogger struct {
	interfaces.NoOpLogger
	errors []string
	infos  []map[string]interface{}
}

func (c *capturingLogger) Error(msg string, _ ...interfaces.Field) {
	c.errors = append(c.errors, msg)
}

func (c *capturingLogger) Info(_ string, fields ...interfaces.Field) {
	m := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	c.infos = append(c.infos, m)
}

func TestNewDownloader_Defaults(t *testing.T) {
	d := NewDownloader(DownloaderConfig{})

	if d.httpClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", d.httpClient.Timeout, DefaultTimeout)
	}
	if d.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %q, want %q", d.userAgent, DefaultUserAgent)
	}
	if d.logger == nil {
		t.Error("logger should default to a no-op logger")
	}
}

func TestNewDownloader_CustomTimeout(t *testing.T) {
	d := NewDownloader(DownloaderConfig{Timeout: 30 * time.Second, UserAgent: "hook/2"})

	if d.httpClient.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", d.httpClient.Timeout)
	}
	if d.userAgent != "hook/2" {
		t.Errorf("userAgent = %q, want hook/2", d.userAgent)
	}
}

func TestDownloader_Fetch_Success(t *testing.T) {
	var gotUA, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(scriptBody))
	}))
	defer server.Close()

	logger := &capturingLogger{}
	d := NewDownloader(DownloaderConfig{Logger: logger})
	dest := filepath.Join(t.TempDir(), "update.py")

	if !d.Fetch(context.Background(), server.URL+"/abc123/tools/clang/scripts/update.py", dest) {
		t.Fatalf("Fetch() = false, want true (errors: %v)", logger.errors)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read downloaded file: %v", err)
	}
	if string(data) != scriptBody {
		t.Errorf("downloaded content = %q, want %q", data, scriptBody)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
	if gotPath != "/abc123/tools/clang/scripts/update.py" {
		t.Errorf("request path = %q", gotPath)
	}

	if len(logger.infos) != 1 {
		t.Fatalf("expected one info log, got %d", len(logger.infos))
	}
	if got := logger.infos[0]["size"]; got != "39 B" {
		t.Errorf("logged size = %v, want 39 B", got)
	}
}

func TestDownloader_Fetch_CustomClient(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(scriptBody))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "update.py")

	// The default client does not trust the test certificate
	if NewDownloader(DownloaderConfig{}).Fetch(context.Background(), server.URL, dest) {
		t.Fatal("Fetch() with default client = true, want false for untrusted certificate")
	}

	client := server.Client()
	d := NewDownloader(DownloaderConfig{Client: client, Timeout: time.Second})
	if d.httpClient != client {
		t.Error("Client should be used as given")
	}
	if !d.Fetch(context.Background(), server.URL, dest) {
		t.Fatal("Fetch() with server client = false, want true")
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read downloaded file: %v", err)
	}
	if string(data) != scriptBody {
		t.Errorf("downloaded content = %q, want %q", data, scriptBody)
	}
}

func TestDownloader_Fetch_OverwritesExisting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(scriptBody))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "update.py")
	if err := os.WriteFile(dest, []byte("stale content that is longer than the new script body......"), 0600); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	d := NewDownloader(DownloaderConfig{})
	if !d.Fetch(context.Background(), server.URL, dest) {
		t.Fatal("Fetch() = false, want true")
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read downloaded file: %v", err)
	}
	if string(data) != scriptBody {
		t.Errorf("file was not overwritten, content = %q", data)
	}
}

func TestDownloader_Fetch_Failures(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("404: Not Found"))
	}))
	defer notFound.Close()

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(scriptBody))
	}))
	defer ok.Close()

	closed := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tmpDir := t.TempDir()

	tests := []struct {
		name string
		url  string
		dest string
	}{
		{name: "HTTP 404", url: notFound.URL + "/missing/update.py", dest: filepath.Join(tmpDir, "a.py")},
		{name: "connection refused", url: closedURL, dest: filepath.Join(tmpDir, "b.py")},
		{name: "malformed URL", url: "http://[::1", dest: filepath.Join(tmpDir, "c.py")},
		{name: "destination directory missing", url: ok.URL, dest: filepath.Join(tmpDir, "missing", "d.py")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &capturingLogger{}
			d := NewDownloader(DownloaderConfig{Logger: logger})

			if d.Fetch(context.Background(), tt.url, tt.dest) {
				t.Fatal("Fetch() = true, want false")
			}
			if len(logger.errors) != 1 {
				t.Errorf("expected one error log, got %v", logger.errors)
			}
		})
	}
}

func TestDownloader_Fetch_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(scriptBody))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDownloader(DownloaderConfig{})
	dest := filepath.Join(t.TempDir(), "update.py")
	if d.Fetch(ctx, server.URL, dest) {
		t.Error("Fetch() with canceled context = true, want false")
	}
}

func TestDownloader_Fetch_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("CLANGFETCH_INTEGRATION") == "" {
		t.Skip("set CLANGFETCH_INTEGRATION=1 to download from GitHub")
	}

	d := NewDownloader(DownloaderConfig{Timeout: time.Minute})
	dest := filepath.Join(t.TempDir(), "update.py")

	url := "https://raw.githubusercontent.com/chromium/chromium/main/tools/clang/scripts/update.py"
	if !d.Fetch(context.Background(), url, dest) {
		t.Fatal("Fetch() = false, want true")
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("downloaded file is empty")
	}
}
