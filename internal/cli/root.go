package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"questplus/internal/config"
	"questplus/internal/logger"
	"questplus/internal/watcher"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	cfg     *config.Config
	cfgPath string // empty when defaults are in use
	log     *slog.Logger
	out     io.Writer
	watch   bool
}

// score runs fn once and, when watching, again after every change to the
// experiment file until ctx is cancelled. While watching, a failed run is
// logged and the watch continues.
func (a *app) score(ctx context.Context, path string, fn func() error) error {
	if err := fn(); err != nil {
		if !a.watch {
			return err
		}
		a.log.Error("score.failed", "path", path, "err", err)
	}
	if !a.watch {
		return nil
	}

	w := watcher.New(path, func() {
		if err := fn(); err != nil {
			a.log.Error("score.failed", "path", path, "err", err)
		}
	}, a.log)
	if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// source returns a random source seeded from config, or from the global
// generator when no seed is set
func (a *app) source() rand.Source {
	if a.cfg.Seed != nil {
		return rand.NewPCG(*a.cfg.Seed, 0)
	}
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// Execute runs the root command and exits non-zero on failure. SIGINT and
// SIGTERM cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		debug      bool
		configPath string
		output     string
		seed       uint64
		check      bool
		watch      bool
	)

	a := &app{out: out, log: logger.Discard()}

	cmd := &cobra.Command{
		Use:          "questplus",
		Short:        "Score QUEST+ likelihoods and entropies for an experiment file",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var (
				cfg  *config.Config
				path string
				err  error
			)
			if configPath != "" {
				cfg, path, err = config.LoadFromPath(configPath)
			} else {
				cfg, path, err = config.Load()
			}
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("output") {
				cfg.Output = config.ParseOutput(output)
			}
			if flags.Changed("seed") {
				cfg.Seed = &seed
			}
			if flags.Changed("check") {
				cfg.CheckUnpacking = check
			}

			a.cfg = cfg
			a.cfgPath = path
			a.watch = watch
			a.log = logger.New(logger.Config{
				Level:  cfg.LogLevel.Level(),
				Debug:  debug,
				Writer: cmd.ErrOrStderr(),
			})
			if path != "" {
				a.log.Info("config.loaded", "path", path)
			}
			a.log.Debug("config.effective", "summary", cfg.Summary())
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	pf.StringVarP(&configPath, "config", "c", "", fmt.Sprintf("config file (default: $%s or standard locations)", config.EnvConfigPath))
	pf.StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	pf.Uint64Var(&seed, "seed", 0, "seed for the sampler's random source")
	pf.BoolVar(&check, "check", false, "cross-check outcome count unpacking")
	pf.BoolVar(&watch, "watch", false, "re-score whenever the experiment file changes (loglik, entropy)")

	cmd.SetOut(out)
	cmd.AddCommand(
		boundsCmd(a),
		sampleCmd(a),
		loglikCmd(a),
		entropyCmd(a),
		stimCmd(a),
		dataCmd(a),
		nlogpCmd(a),
		configCmd(a),
	)
	return cmd
}
