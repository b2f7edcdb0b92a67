package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("OBJECT_STORE", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("ALLOWED_UPLOAD_TYPES", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected local store, got %q", cfg.ObjectStoreType)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("expected uploads dir, got %q", cfg.UploadDir)
	}
	if cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Fatalf("expected default max bytes %d, got %d", DefaultMaxUploadBytes, cfg.MaxUploadBytes)
	}
	if !reflect.DeepEqual(cfg.AllowedTypes, DefaultAllowedTypes) {
		t.Fatalf("expected default allowed types, got %v", cfg.AllowedTypes)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("ALLOWED_UPLOAD_TYPES", " image/png , application/pdf ")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("ENV", "prod")

	cfg := Load()

	if cfg.MaxUploadBytes != 1048576 {
		t.Fatalf("expected 1048576, got %d", cfg.MaxUploadBytes)
	}
	want := []string{"image/png", "application/pdf"}
	if !reflect.DeepEqual(cfg.AllowedTypes, want) {
		t.Fatalf("expected %v, got %v", want, cfg.AllowedTypes)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected s3 store, got %q", cfg.ObjectStoreType)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production env, got %q", cfg.Env)
	}
}

func TestLoadIgnoresInvalidMaxBytes(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()

	if cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Fatalf("expected fallback to default, got %d", cfg.MaxUploadBytes)
	}
}
