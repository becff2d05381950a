// cmd/claimnorm/cmd_normalize.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamzrod/claim-normalizer/internal/config"
	"github.com/tamzrod/claim-normalizer/internal/pipeline"
	"github.com/tamzrod/claim-normalizer/internal/report"
	"github.com/tamzrod/claim-normalizer/internal/sink"
	"github.com/tamzrod/claim-normalizer/internal/source"
	"github.com/tamzrod/claim-normalizer/pkg/claims"
)

var (
	configPath    string
	keepRich      bool
	entityPrefix  string
	timeConverter string
	outputFormat  string
	workers       int
	keepNonTruthy bool
	keepNoValue   bool
	properties    []string
)

// normalizeCmd normalizes entity files (or stdin)
var normalizeCmd = &cobra.Command{
	Use:   "normalize [files...]",
	Short: "Normalize the claims of entity JSON files",
	Long: `Reads entities from the given files, or stdin when none are given.
Accepted inputs: API envelopes ({"entities": {...}}), JSON dump arrays and
JSON lines. Flags override values from --config.

Example:
  claimnorm normalize --time simple-day --prefix wd Q42.json`,
	RunE: runNormalize,
}

func init() {
	f := normalizeCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.BoolVar(&keepRich, "rich", false, "Keep rich values (units, bounds, calendar model)")
	f.StringVar(&entityPrefix, "prefix", "", "Prefix entity ids as <prefix>:<id>")
	f.StringVar(&timeConverter, "time", "", "Time converter: "+claims.TimeConverterNames())
	f.StringVarP(&outputFormat, "format", "f", "", "Output format: json or yaml")
	f.IntVarP(&workers, "workers", "w", 0, "Concurrent entity workers (0 = GOMAXPROCS)")
	f.BoolVar(&keepNonTruthy, "non-truthy", false, "Keep claims of every rank")
	f.BoolVar(&keepNoValue, "keep-novalue", false, "Keep novalue/somevalue results as null")
	f.StringSliceVarP(&properties, "property", "p", nil, "Only output these properties")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg := &config.Config{}
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
	}

	applyFlags(cmd, cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// releases the source when the runner stops early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// --------------------
	// Build source, sink, runner
	// --------------------

	src, err := source.New(source.Config{Paths: args, Stdin: cmd.InOrStdin()})
	if err != nil {
		return err
	}

	stdout := bufio.NewWriter(cmd.OutOrStdout())
	defer stdout.Flush()

	out, err := sink.New(cfg.Normalizer.Output.Format, stdout)
	if err != nil {
		return err
	}

	runner, err := pipeline.New(pipeline.Config{
		Workers:    cfg.Normalizer.Workers,
		Options:    cfg.SimplifyOptions(logger),
		Properties: cfg.Normalizer.Claims.Properties,
	}, out, logger)
	if err != nil {
		return err
	}

	// ---- channel between source and runner ----
	batches := make(chan source.Batch)
	go src.Run(ctx, batches)

	runErr := runner.Run(ctx, batches)
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}

	snap := runner.Snapshot()
	logger.Info("normalization finished", report.Encode(snap)...)

	if runErr != nil {
		return runErr
	}

	exitCode = report.ExitCode(snap)
	if exitCode != report.ExitOK {
		logger.Warn("some inputs or entities failed", zap.Int("exit_code", exitCode))
	}
	return nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	n := &cfg.Normalizer

	if f.Changed("rich") {
		n.Values.KeepRichValues = keepRich
	}
	if f.Changed("prefix") {
		n.Values.EntityPrefix = entityPrefix
	}
	if f.Changed("time") {
		n.Values.TimeConverter = timeConverter
	}
	if f.Changed("format") {
		n.Output.Format = outputFormat
	}
	if f.Changed("workers") {
		n.Workers = workers
	}
	if f.Changed("non-truthy") {
		n.Claims.KeepNonTruthy = keepNonTruthy
	}
	if f.Changed("keep-novalue") {
		n.Claims.KeepNoValue = keepNoValue
	}
	if f.Changed("property") {
		n.Claims.Properties = properties
	}
}
