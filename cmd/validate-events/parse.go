package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/logvalidate/core/internal/apperrors"
	"github.com/logvalidate/core/internal/bind"
	"github.com/logvalidate/core/internal/bootstrap"
	"github.com/logvalidate/core/internal/config"
	"github.com/logvalidate/core/internal/dispatch"
	"github.com/logvalidate/core/internal/enrich"
	"github.com/logvalidate/core/internal/registry"
	"github.com/logvalidate/core/internal/workflow"
)

var (
	formatFlag       string
	severityFlag     string
	ignoreErrorsFlag bool
	configPathFlag   string
	outputFlag       string
)

var parseCmd = &cobra.Command{
	Use:   "parse [source]",
	Short: "Read a log file, glob, or literal content and emit validation events as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&formatFlag, "format", "f", "auto", "format token, or \"auto\" to detect")
	parseCmd.Flags().StringVarP(&severityFlag, "severity", "s", "", "minimum severity to retain (debug|info|warning|error|critical)")
	parseCmd.Flags().BoolVar(&ignoreErrorsFlag, "ignore-errors", true, "swallow structural parse errors as parse_error events instead of failing")
	parseCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "YAML config file overriding severity/ignore-errors defaults")
	parseCmd.Flags().StringVarP(&outputFlag, "output", "o", "json", "output shape: \"json\" (ValidationEvent records) or \"table\" (44-column projected rows)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	opts := config.Default()
	if configPathFlag != "" {
		loaded, err := config.Load(configPathFlag)
		if err != nil {
			return err
		}
		opts = loaded
	}
	if severityFlag != "" {
		opts.SeverityThreshold = severityFlag
	}
	if cmdFlagChanged("ignore-errors") {
		opts.IgnoreErrors = ignoreErrorsFlag
	}

	tools := registry.New()
	wf := workflow.New()
	bootstrap.RegisterAllParsers(tools, wf)
	d := dispatch.New(tools, wf)

	evs, err := d.Read(args[0], formatFlag)
	if err != nil {
		return err
	}

	formatExplicit := formatFlag != "" && formatFlag != "auto"
	if escalated := apperrors.EscalateStructural(evs, formatExplicit, opts.IgnoreErrors); escalated != nil {
		return escalated
	}

	evs = enrich.FilterAndRenumber(evs, opts.Threshold())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if outputFlag == "table" {
		return enc.Encode(bind.ProjectAll(evs))
	}
	return enc.Encode(evs)
}

func cmdFlagChanged(name string) bool {
	return parseCmd.Flags().Changed(name)
}
