package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tptassets/spritegen"
)

var flagWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Generate many sprites concurrently",
	Long: `Generate every sprite listed in a YAML job file. Each entry holds either a
debuff or a ruin configuration:

  - debuff: {debuffType: poison, severity: severe}
  - debuff: {debuffType: fear, curable: false}
  - ruin: {ruinType: pillar, material: marble, overgrown: true}

The sprites are written to the output directory. With a seed the result does
not depend on the number of workers.

Examples:
  spritegen batch jobs.yaml --out sprites --seed 42
  spritegen batch jobs.yaml --workers 4 --scale 2`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Number of concurrent workers (0 = number of CPUs)")
}

// readJobs parses a YAML job file.
func readJobs(path string) ([]spritegen.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs %s: %w", path, err)
	}
	var jobs []spritegen.Job
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs %s: %w", path, err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs in %s", path)
	}
	return jobs, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	if cfg.Output == pipeName {
		return errors.New("batch output must be a directory")
	}
	jobs, err := readJobs(args[0])
	if err != nil {
		return err
	}
	opts, err := generatorOptions(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := time.Now()
	b := &spritegen.Batch{Options: opts, Seed: cfg.Seed, Workers: flagWorkers}
	results, runErr := b.Run(ctx, jobs)
	if errors.Is(runErr, context.Canceled) {
		return runErr
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("sprite failed", "job", res.Index, "err", res.Err)
			continue
		}
		if res.Desc == nil {
			continue
		}
		assetType := "ruin"
		if res.Job.Debuff != nil {
			assetType = "debuff_icon"
		}
		if err := emit(assetType, res.Desc); err != nil {
			return err
		}
	}
	logger.Info("batch finished", "sprites", len(results)-failed, "failed", failed, "took", time.Since(now).Round(time.Millisecond))

	return runErr
}
