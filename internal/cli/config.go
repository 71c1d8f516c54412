package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"questplus/internal/config"
)

func configCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.cfgPath != "" {
				fmt.Fprintf(a.out, "Config: %s\n", a.cfgPath)
			} else {
				fmt.Fprintf(a.out, "Config: defaults (searched %s)\n", strings.Join(config.SearchPaths(), ", "))
			}
			_, err := fmt.Fprintln(a.out, a.cfg.Summary())
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := config.DefaultConfigPath()
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			a.log.Info("config.written", "path", path)
			_, err := fmt.Fprintln(a.out, path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	c.AddCommand(initCmd)
	return c
}
