package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/quantmind-br/dccfind/internal/ui"
	"github.com/quantmind-br/dccfind/pkg/dcc"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// findResult is the JSON shape emitted by find --json
type findResult struct {
	App   string   `json:"app"`
	Paths []string `json:"paths"`
}

// NewFindCmd creates the find command
func NewFindCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		version    string
		installDir string
		jsonOutput bool
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "find <app>",
		Short: "Find a DCC application executable",
		Long:  `Find the executable of an installed DCC application and print its path. With no --version the highest installed version wins.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := dcc.ParseApp(args[0])
			if err != nil {
				return err
			}

			opts := lookupOptions(cfg, app, version, installDir)
			locator := dcc.New().WithLogger(*log)

			var paths []string
			if all {
				paths, err = locator.FindAll(app, opts)
			} else {
				var p string
				p, err = locator.Find(app, opts)
				paths = []string{p}
			}
			if err != nil {
				log.Debug().Err(err).Str("app", app.String()).Msg("lookup failed")
				var nf *dcc.NotFoundError
				if errors.As(err, &nf) {
					printNotFound(nf)
					return fmt.Errorf("%s not found", app)
				}
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(findResult{App: app.String(), Paths: paths})
			}

			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "V", "", "application version to pin (e.g. 2025, 4.2)")
	cmd.Flags().StringVar(&installDir, "install-dir", "", "probe only this install directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every installed copy, not just the first")

	return cmd
}

// lookupOptions merges command-line flags with config-file app overrides.
// Flags win; the config fills gaps.
func lookupOptions(cfg *config.Config, app dcc.App, version, installDir string) dcc.Options {
	override := cfg.App(app.String())
	if version == "" {
		version = override.Version
	}
	if installDir == "" {
		installDir = override.InstallDir
	}
	return dcc.Options{Version: version, InstallDir: installDir}
}

// printNotFound renders a NotFoundError with its probed paths
func printNotFound(nf *dcc.NotFoundError) {
	ui.PrintError("%s not found on %s", nf.App.DisplayName(), nf.Platform)
	if len(nf.Tried) > 0 {
		ui.PrintInfo("Searched:")
		ui.PrintList(nf.Tried)
	}
}
