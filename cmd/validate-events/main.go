// Command validate-events is a small CLI harness exercising the
// pipeline's read/parse surface end to end, grounded on
// handleui-detent/apps/cli's Cobra command layout (one file per
// subcommand, package-level flag vars, a RunE closure over them).
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/logvalidate/core/internal/applog"
)

var logger = applog.New()

var rootCmd = &cobra.Command{
	Use:   "validate-events",
	Short: "Parse CI/CD, test, lint, and audit logs into unified validation events",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
