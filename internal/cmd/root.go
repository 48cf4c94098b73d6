package cmd

import (
	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dccfind",
		Short:        "Locate installed DCC application executables",
		Long:         `Locates installed Digital Content Creation applications (Maya, MotionBuilder, Blender) and prints their executable paths so other tooling can launch them.`,
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewFindCmd(cfg, log))
	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewPickCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
