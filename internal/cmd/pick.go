package cmd

import (
	"errors"
	"fmt"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/quantmind-br/dccfind/internal/ui"
	"github.com/quantmind-br/dccfind/pkg/dcc"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewPickCmd creates the pick command
func NewPickCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "pick <app>",
		Short: "Interactively pick among installed copies of an application",
		Long:  `Find every installed copy of a DCC application and pick one interactively. With a single match the prompt is skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := dcc.ParseApp(args[0])
			if err != nil {
				return err
			}

			opts := lookupOptions(cfg, app, version, "")
			paths, err := dcc.New().WithLogger(*log).FindAll(app, opts)
			if err != nil {
				var nf *dcc.NotFoundError
				if errors.As(err, &nf) {
					printNotFound(nf)
					return fmt.Errorf("%s not found", app)
				}
				return err
			}

			if len(paths) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), paths[0])
				return nil
			}

			_, chosen, err := ui.SelectPrompt(fmt.Sprintf("Select %s install", app.DisplayName()), paths)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), chosen)
			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "V", "", "application version to pin")

	return cmd
}
