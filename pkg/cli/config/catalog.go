package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnapi/catalog"
	"github.com/secmon-lab/vulnapi/pkg/domain/model"
	"github.com/secmon-lab/vulnapi/pkg/repository"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Catalog holds vulnerability catalog configuration
type Catalog struct {
	Path               string
	KeyDifferencesPath string
}

// Flags returns CLI flags for Catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to vulnerability catalog JSON (bundled catalog if empty)",
			Category:    "Catalog",
			Sources:     cli.EnvVars("VULNAPI_CATALOG"),
			Destination: &c.Path,
		},
		&cli.StringFlag{
			Name:        "key-differences",
			Usage:       "Path to key differences YAML (bundled table if empty)",
			Category:    "Catalog",
			Sources:     cli.EnvVars("VULNAPI_KEY_DIFFERENCES"),
			Destination: &c.KeyDifferencesPath,
		},
	}
}

// Configure loads the vulnerability catalog. Load failures never abort
// startup; they result in an empty catalog.
func (c *Catalog) Configure(ctx context.Context) *repository.Catalog {
	if c.Path == "" {
		return repository.NewEmbedded(ctx)
	}

	ctxlog.From(ctx).Info("Using vulnerability catalog from file", slog.String("path", c.Path))
	return repository.NewFile(ctx, c.Path)
}

// ConfigureKeyDifferences loads the key difference table
func (c *Catalog) ConfigureKeyDifferences() (*model.KeyDifferences, error) {
	if c.KeyDifferencesPath == "" {
		cfg, err := parseKeyDifferences(catalog.KeyDifferences)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid bundled key differences")
		}
		return cfg.Table(), nil
	}

	cfg, err := LoadKeyDifferencesFromFile(c.KeyDifferencesPath)
	if err != nil {
		return nil, err
	}
	return cfg.Table(), nil
}

// LoadKeyDifferencesFromFile loads key differences from YAML file
func LoadKeyDifferencesFromFile(path string) (*model.KeyDifferencesConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	cfg, err := parseKeyDifferences(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid key differences configuration",
			goerr.V("path", path))
	}
	return cfg, nil
}

func parseKeyDifferences(data []byte) (*model.KeyDifferencesConfig, error) {
	var cfg model.KeyDifferencesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LogValue returns structured log value
func (c Catalog) LogValue() slog.Value {
	path := c.Path
	if path == "" {
		path = "(bundled)"
	}
	kdPath := c.KeyDifferencesPath
	if kdPath == "" {
		kdPath = "(bundled)"
	}
	return slog.GroupValue(
		slog.String("path", path),
		slog.String("key_differences", kdPath),
	)
}
