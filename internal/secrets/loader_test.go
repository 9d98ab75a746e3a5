package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  secret-value\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Load(Source{Name: "gemini api key", File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "secret-value" {
		t.Fatalf("expected file value to take precedence, got %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := Load(Source{Name: "gemini api key", File: path})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RESUME_SORTER_TEST_KEY", " from-env ")

	got, err := Load(Source{Env: "RESUME_SORTER_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("unexpected secret: %q", got)
	}
}

func TestLoadNotConfigured(t *testing.T) {
	t.Setenv("RESUME_SORTER_MISSING_KEY", "")

	_, err := Load(Source{Name: "gemini api key", Env: "RESUME_SORTER_MISSING_KEY"})
	if err == nil || !strings.Contains(err.Error(), "RESUME_SORTER_MISSING_KEY") {
		t.Fatalf("expected hint about env var, got %v", err)
	}

	if _, err := Load(Source{}); err == nil {
		t.Fatal("expected error when nothing is configured")
	}
}
