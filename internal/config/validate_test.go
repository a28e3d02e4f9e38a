package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{}
	cfg.App.Port = 38471
	cfg.App.DataDir = "/tmp/tb"
	cfg.Backend.BaseURL = "http://localhost:4000"
	cfg.Backend.TimeoutSeconds = 20
	cfg.Backend.RatePerSec = 4
	cfg.Backend.Burst = 4
	cfg.Session.CompanyID = "C1"
	return cfg
}

func TestNormalizeAndValidate_CleanConfig(t *testing.T) {
	out, res := NormalizeAndValidate(validConfig())
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
	if out.Backend.BaseURL != "http://localhost:4000" {
		t.Errorf("base_url = %q", out.Backend.BaseURL)
	}
}

func TestNormalizeAndValidate_TrimsFields(t *testing.T) {
	cfg := validConfig()
	cfg.Backend.BaseURL = "  http://localhost:4000/  "
	cfg.Session.CompanyID = " C1 "

	out, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if out.Backend.BaseURL != "http://localhost:4000" {
		t.Errorf("base_url = %q, want trailing slash and spaces gone", out.Backend.BaseURL)
	}
	if out.Session.CompanyID != "C1" {
		t.Errorf("company_id = %q", out.Session.CompanyID)
	}
}

func TestNormalizeAndValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero port", func(c *Config) { c.App.Port = 0 }, "app.port"},
		{"port too high", func(c *Config) { c.App.Port = 70000 }, "app.port"},
		{"missing base url", func(c *Config) { c.Backend.BaseURL = "" }, "base_url is required"},
		{"relative base url", func(c *Config) { c.Backend.BaseURL = "localhost:4000" }, "absolute http(s) URL"},
		{"ftp base url", func(c *Config) { c.Backend.BaseURL = "ftp://host" }, "absolute http(s) URL"},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSeconds = -1 }, "timeout_seconds"},
		{"negative rate", func(c *Config) { c.Backend.RatePerSec = -1 }, "rate_per_sec"},
		{"negative burst", func(c *Config) { c.Backend.Burst = -1 }, "burst"},
		{"bad directory url", func(c *Config) { c.Registration.DirectoryURL = "nope" }, "directory_url"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			_, res := NormalizeAndValidate(cfg)
			if res.OK() {
				t.Fatal("expected a validation error")
			}
			if !containsSubstr(res.Errors, tc.want) {
				t.Errorf("errors = %v, want one mentioning %q", res.Errors, tc.want)
			}
		})
	}
}

func TestNormalizeAndValidate_Warnings(t *testing.T) {
	cfg := validConfig()
	cfg.Session.CompanyID = ""
	cfg.Backend.TimeoutSeconds = 600

	_, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("warnings must not be errors: %v", res.Errors)
	}
	if !containsSubstr(res.Warnings, "company_id") || !containsSubstr(res.Warnings, "timeout_seconds") {
		t.Errorf("warnings = %v", res.Warnings)
	}
}

func containsSubstr(ss []string, sub string) bool {
	for _, s := range ss {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
