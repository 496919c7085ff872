package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/MeKo-Tech/perfmon/internal/config"
	"github.com/MeKo-Tech/perfmon/internal/metrics"
	"github.com/MeKo-Tech/perfmon/internal/perf"
	"github.com/MeKo-Tech/perfmon/internal/report"
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run a command under the timer",
	Long: `Run a command and time it.

Without --name the command is timed as a scope and saved as the
"ctx_manager" block. With --name every repetition is started, stopped,
saved and logged explicitly; repetitions are numbered name#1, name#2, ...
when --repeat is greater than one.

The command's output is passed through. A summary report of all saved
blocks is printed once the runs complete.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Everything after the command name belongs to the command
	runCmd.Flags().SetInterspersed(false)
	runCmd.Flags().StringP("name", "n", "", "block name (default: scope timing as ctx_manager)")
	runCmd.Flags().IntP("repeat", "r", 1, "number of times to run the command")
	runCmd.Flags().StringP("format", "f", "", "report format (text, table, json, yaml)")
	runCmd.Flags().String("sink", "", "where block log lines go (stdout, stderr, slog, none)")
	runCmd.Flags().Bool("metrics", false, "export block metrics")
	runCmd.Flags().String("metrics-textfile", "", "write Prometheus textfile metrics to this path")

	bindFlag("report.format", runCmd.Flags().Lookup("format"))
	bindFlag("sink.type", runCmd.Flags().Lookup("sink"))
	bindFlag("metrics.enabled", runCmd.Flags().Lookup("metrics"))
	bindFlag("metrics.textfile", runCmd.Flags().Lookup("metrics-textfile"))
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	name, _ := cmd.Flags().GetString("name")
	repeat, _ := cmd.Flags().GetInt("repeat")
	if repeat < 1 {
		return fmt.Errorf("invalid repeat count: %d (must be positive)", repeat)
	}

	opts := cfg.ToTimerOptions(cmd.OutOrStdout(), cmd.ErrOrStderr(), slog.Default())

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder(cfg.Metrics.Namespace)
		opts = append(opts, perf.WithObserver(recorder))
	}

	timer := perf.NewTimer(opts...)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var runErr error
	if name == "" {
		runErr = measureRuns(ctx, timer, cfg, args, repeat, cmd.OutOrStdout(), cmd.ErrOrStderr())
	} else {
		runErr = timeNamedRuns(ctx, timer, cfg, name, args, repeat, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	if err := report.Render(cmd.OutOrStdout(), timer.Blocks(), cfg.ReportFormat()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if recorder != nil && cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		slog.Debug("metrics written", "path", cfg.Metrics.Textfile)
	}

	return runErr
}

// measureRuns times each run as a scope.
func measureRuns(ctx context.Context, timer *perf.Timer, cfg *config.Config, args []string, repeat int, stdout, stderr io.Writer) error {
	for i := range repeat {
		var cmdErr error
		err := timer.Measure(func() error {
			cmdErr = execute(ctx, args, stdout, stderr)
			return cmdErr
		})
		if cfg.Sink.Type == config.SinkNone && errors.Is(err, perf.ErrNoSinkConfigured) {
			err = cmdErr
		}
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
	}
	return nil
}

// timeNamedRuns times each run with explicit start/end/save/log calls.
func timeNamedRuns(ctx context.Context, timer *perf.Timer, cfg *config.Config, name string, args []string, repeat int, stdout, stderr io.Writer) error {
	for i := range repeat {
		block := name
		if repeat > 1 {
			block = fmt.Sprintf("%s#%d", name, i+1)
		}

		timer.Start()
		cmdErr := execute(ctx, args, stdout, stderr)
		if err := timer.End(); err != nil {
			return err
		}
		if err := timer.Save(block); err != nil {
			return err
		}
		if err := timer.LogTime(block); err != nil {
			if cfg.Sink.Type != config.SinkNone || !errors.Is(err, perf.ErrNoSinkConfigured) {
				return err
			}
		}

		if cmdErr != nil {
			return fmt.Errorf("run %s: %w", block, cmdErr)
		}
	}
	return nil
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	slog.Debug("running command", "command", args)

	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Stdout = stdout
	c.Stderr = stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", args[0], err)
	}
	return nil
}
