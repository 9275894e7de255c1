package sample

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
)

// Config carries the optional knobs that are awkward as flags: file paths
// and lists. Flags cover the per-run numbers.
type Config struct {
	WordlistFile string   `yaml:"wordlist_file"`
	TLDs         []string `yaml:"tlds"`
	UserAgents   []string `yaml:"user_agents"`
	ProxyURL     string   `yaml:"proxy_url"`
	WGConfigFile string   `yaml:"wg_config_file"`
}

// LoadConfig reads a YAML config file when a path is given, otherwise falls
// back to environment variables.
func LoadConfig(path string) (Config, error) {
	var config Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse YAML config: %w", err)
		}
		log.Info("Loaded config from file", "file", path)
		return config, nil
	}

	config.WordlistFile = os.Getenv("WEBSAMPLE_WORDLIST")
	config.ProxyURL = os.Getenv("WEBSAMPLE_PROXY_URL")
	config.WGConfigFile = os.Getenv("WEBSAMPLE_WG_CONFIG")

	return config, nil
}
