// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Backend struct {
		BaseURL        string  `yaml:"base_url" json:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec" json:"rate_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`
	} `yaml:"backend" json:"backend"`

	// Session identifies the signed-in company. The id is an opaque lookup
	// key handed out by the platform; components receive it as an explicit
	// argument, never read it from ambient state.
	Session struct {
		CompanyID string `yaml:"company_id" json:"company_id"`
	} `yaml:"session" json:"session"`

	Registration struct {
		// DirectoryURL is the public university directory page the
		// registration form's dropdown is filled from.
		DirectoryURL string `yaml:"directory_url" json:"directory_url"`
	} `yaml:"registration" json:"registration"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
