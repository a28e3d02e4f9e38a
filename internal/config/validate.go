package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus structured findings the
// UI can render.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Backend.BaseURL = strings.TrimSpace(strings.TrimRight(out.Backend.BaseURL, "/"))
	out.Session.CompanyID = strings.TrimSpace(out.Session.CompanyID)
	out.Registration.DirectoryURL = strings.TrimSpace(out.Registration.DirectoryURL)

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Backend.BaseURL == "" {
		res.addErr("backend.base_url is required")
	} else if u, err := url.Parse(out.Backend.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		res.addErr("backend.base_url must be an absolute http(s) URL, got %q", out.Backend.BaseURL)
	}

	if out.Backend.TimeoutSeconds < 0 {
		res.addErr("backend.timeout_seconds must be >= 0")
	} else if out.Backend.TimeoutSeconds > 120 {
		res.addWarn("backend.timeout_seconds is very high (%d); slow calls block the UI that long.", out.Backend.TimeoutSeconds)
	}

	if out.Backend.RatePerSec < 0 {
		res.addErr("backend.rate_per_sec must be >= 0")
	}
	if out.Backend.Burst < 0 {
		res.addErr("backend.burst must be >= 0")
	}

	// The request board cannot load without a session; everything else works.
	if out.Session.CompanyID == "" {
		res.addWarn("session.company_id is empty; the request board will report a missing company id until the UI signs in.")
	}

	if out.Registration.DirectoryURL != "" {
		if u, err := url.Parse(out.Registration.DirectoryURL); err != nil || u.Host == "" {
			res.addErr("registration.directory_url must be an absolute URL, got %q", out.Registration.DirectoryURL)
		}
	}

	return out, res
}
