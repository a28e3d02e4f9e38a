package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOverlaySession_AppliesCompanyID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yml")
	if err := os.WriteFile(path, []byte("company_id: C42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := validConfig()
	if err := OverlaySession(&cfg, path); err != nil {
		t.Fatalf("OverlaySession: %v", err)
	}
	if cfg.Session.CompanyID != "C42" {
		t.Errorf("company_id = %q, want C42", cfg.Session.CompanyID)
	}
}

func TestOverlaySession_MissingFileKeepsConfig(t *testing.T) {
	cfg := validConfig()
	if err := OverlaySession(&cfg, filepath.Join(t.TempDir(), "absent.yml")); err != nil {
		t.Fatalf("OverlaySession: %v", err)
	}
	if cfg.Session.CompanyID != "C1" {
		t.Errorf("company_id = %q, want the config value untouched", cfg.Session.CompanyID)
	}
}

func TestOverlaySession_EmptyIDDoesNotClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yml")
	if err := os.WriteFile(path, []byte("company_id: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := validConfig()
	if err := OverlaySession(&cfg, path); err != nil {
		t.Fatalf("OverlaySession: %v", err)
	}
	if cfg.Session.CompanyID != "C1" {
		t.Errorf("company_id = %q, want the config value untouched", cfg.Session.CompanyID)
	}
}

func TestOverlaySession_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yml")
	if err := os.WriteFile(path, []byte("company_id: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := validConfig()
	if err := OverlaySession(&cfg, path); err == nil {
		t.Error("expected a parse error")
	}
}
