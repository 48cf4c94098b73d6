package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/quantmind-br/dccfind/internal/ui"
	"github.com/quantmind-br/dccfind/pkg/dcc"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Probe every supported application on this machine",
		Long:  `Probe every supported DCC application on the live filesystem and report which ones are installed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintHeader("DCC Applications")
			fmt.Println()

			locator := dcc.New().WithLogger(*log)

			var missing []string
			foundCount := 0

			for _, app := range dcc.Apps() {
				override := cfg.App(app.String())
				opts := dcc.Options{
					Version:    override.Version,
					InstallDir: override.InstallDir,
				}

				path, err := locator.Find(app, opts)
				switch {
				case err == nil:
					ui.PrintSuccess("%s: %s", app.DisplayName(), path)
					foundCount++
				case errors.Is(err, dcc.ErrUnsupportedPlatform):
					ui.PrintInfo("%s: not available on %s", app.DisplayName(), runtime.GOOS)
				default:
					ui.PrintWarning("%s: not found", app.DisplayName())
					missing = append(missing, app.String())
					if verbose {
						var nf *dcc.NotFoundError
						if errors.As(err, &nf) {
							ui.PrintList(nf.Tried)
						}
					}
				}
			}

			fmt.Println()

			// Environment overrides in effect
			ui.PrintSubheader("Environment")
			checkEnvironment()

			fmt.Println()
			ui.PrintHeader("Summary")
			fmt.Println()

			if foundCount > 0 {
				ui.PrintSuccess("%d application(s) found", foundCount)
			}
			if len(missing) > 0 {
				ui.PrintWarning("%d application(s) missing:", len(missing))
				ui.PrintList(missing)
			}

			if foundCount == 0 {
				return fmt.Errorf("no DCC applications found on this system")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output with every probed path")

	return cmd
}

// checkEnvironment reports the documented override variables
func checkEnvironment() {
	seen := map[string]bool{}
	for _, app := range dcc.Apps() {
		name := app.OverrideVar()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if value, ok := os.LookupEnv(name); ok && value != "" {
			ui.PrintSuccess("%s: %s", name, value)
		} else {
			ui.PrintInfo("%s: not set (using defaults)", name)
		}
	}
}
