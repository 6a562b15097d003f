package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secmon-lab/vulnapi/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("vulnapi exited with error", "error", err)
		os.Exit(1)
	}
}
