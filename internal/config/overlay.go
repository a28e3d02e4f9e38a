// internal/config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SessionFile is the sidecar the UI's login flow writes after sign-in. It
// replaces the browser-local storage the web client used: the company id
// lives in an explicit file, gets overlaid onto the config at load time, and
// is threaded into components as a plain argument from there.
type SessionFile struct {
	CompanyID string `yaml:"company_id"`
}

// OverlaySession applies session.yml on top of cfg. A missing file is fine;
// the engine simply has no signed-in company yet.
func OverlaySession(cfg *Config, sessionPath string) error {
	b, err := os.ReadFile(sessionPath)
	if err != nil {
		// Missing session file should not kill startup
		return nil
	}

	var sf SessionFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return err
	}

	if sf.CompanyID != "" {
		cfg.Session.CompanyID = sf.CompanyID
	}
	return nil
}
