package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the YAML config file layout. Flags set on the command line
// override file values.
type Config struct {
	Visit     string `yaml:"visit"`
	TieBreak  string `yaml:"tie_break"`
	Workers   int    `yaml:"workers"`
	Format    string `yaml:"format"`
	Render    bool   `yaml:"render"`
	Catalogue string `yaml:"catalogue"`
}

var errBadConfig = errors.New("invalid config")

// readConfig decodes the config file at path.
func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", errBadConfig, path, err)
	}
	return c, nil
}

// loadConfig merges flag defaults, the config file and explicit flags
// into a.cfg.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg := a.flags
	if a.configPath != "" {
		file, err := readConfig(a.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("visit") && file.Visit != "" {
			cfg.Visit = file.Visit
		}
		if !flags.Changed("tie-break") && file.TieBreak != "" {
			cfg.TieBreak = file.TieBreak
		}
		if !flags.Changed("workers") && file.Workers != 0 {
			cfg.Workers = file.Workers
		}
		if !flags.Changed("format") && file.Format != "" {
			cfg.Format = file.Format
		}
		if !flags.Changed("render") && file.Render {
			cfg.Render = true
		}
		if !flags.Changed("catalogue") && file.Catalogue != "" {
			cfg.Catalogue = file.Catalogue
		}
		a.logger.Debug("config loaded", zap.String("path", a.configPath))
	}
	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown format %q", errBadConfig, cfg.Format)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", errBadConfig, cfg.Workers)
	}
	a.cfg = cfg
	return nil
}
