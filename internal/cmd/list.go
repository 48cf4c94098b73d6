package cmd

import (
	"encoding/json"
	"runtime"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/quantmind-br/dccfind/internal/ui"
	"github.com/quantmind-br/dccfind/pkg/dcc"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// listEntry describes one supported app on one platform
type listEntry struct {
	App         string   `json:"app"`
	DisplayName string   `json:"display_name"`
	Executable  string   `json:"executable"`
	OverrideVar string   `json:"override_var,omitempty"`
	Candidates  []string `json:"candidates"`
}

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		filter     string
		platform   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported applications and their search locations",
		Long:  `List every supported DCC application with its executable name and the candidate install locations probed on the given platform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := collectEntries(platform)

			if filter != "" {
				filtered := entries[:0]
				for _, e := range entries {
					if len(ui.FuzzyFilter(filter, []string{e.App, e.DisplayName})) > 0 {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				ui.PrintWarning("No applications match filter %q", filter)
				return nil
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"App", "Executable", "Override", "Search Locations"}),
				tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)

			for _, e := range entries {
				override := e.OverrideVar
				if override == "" {
					override = "-"
				}
				locations := "-"
				if len(e.Candidates) > 0 {
					locations = strings.Join(e.Candidates, "\n")
				}
				table.Append(ui.ColorizeApp(e.App), e.Executable, override, locations)
			}

			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVar(&filter, "filter", "", "fuzzy filter by application name")
	cmd.Flags().StringVar(&platform, "platform", runtime.GOOS, "platform to list candidates for (windows, linux, darwin)")

	return cmd
}

// collectEntries builds the list rows for a platform. Apps unsupported on
// the platform are skipped.
func collectEntries(platform string) []listEntry {
	var entries []listEntry
	for _, app := range dcc.Apps() {
		templates, err := dcc.CandidateTemplates(app, platform)
		if err != nil {
			continue
		}
		entries = append(entries, listEntry{
			App:         app.String(),
			DisplayName: app.DisplayName(),
			Executable:  app.ExeName(platform),
			OverrideVar: app.OverrideVar(),
			Candidates:  templates,
		})
	}
	return entries
}
