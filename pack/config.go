package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory by the packlint tool.
const ConfigFileName = "packlint.toml"

const defaultAddr = ":8190"

// Config carries tool-level settings for lint and serve. Flags override any
// value loaded from the config file.
type Config struct {
	// Root is the pack directory, relative to the config file's directory.
	Root string `toml:"root"`

	// Addr is the listen address for the diagnostics server.
	Addr string `toml:"addr"`

	// FailOnWarnings makes validate exit nonzero when warnings are present.
	FailOnWarnings bool `toml:"fail_on_warnings"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{Root: ".", Addr: defaultAddr}
}

// LoadConfig reads packlint.toml from dir. A missing file yields the
// defaults, not an error.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	pth := filepath.Join(dir, ConfigFileName)
	if _, err := toml.DecodeFile(pth, &cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("pack: load %s: %w", pth, err)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	return cfg, nil
}
