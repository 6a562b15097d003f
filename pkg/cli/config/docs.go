package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnapi/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Docs holds documentation mode configuration
type Docs struct {
	Mode string
}

// Flags returns CLI flags for Docs configuration
func (d *Docs) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mode",
			Usage:       "Operating mode (challenge, documentation)",
			Category:    "Docs",
			Value:       types.DefaultMode.String(),
			Sources:     cli.EnvVars("VULNAPI_MODE", "DOJO_MODE"),
			Destination: &d.Mode,
		},
	}
}

// Configure returns the validated mode. It is read once at startup.
func (d *Docs) Configure() (types.Mode, error) {
	mode, err := types.ParseMode(d.Mode)
	if err != nil {
		return "", goerr.Wrap(err, "invalid docs configuration")
	}
	return mode, nil
}

// LogValue returns structured log value
func (d Docs) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", d.Mode),
	)
}
