package cmd

import (
	"os"

	"github.com/quantmind-br/dccfind/internal/config"
	"github.com/quantmind-br/dccfind/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewCompletionCmd creates the completion command
func NewCompletionCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for dccfind.

To load completions:

Bash:
  $ source <(dccfind completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ dccfind completion bash > /etc/bash_completion.d/dccfind
  # macOS:
  $ dccfind completion bash > $(brew --prefix)/etc/bash_completion.d/dccfind

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ dccfind completion zsh > "${fpath[1]}/_dccfind"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ dccfind completion fish | source

  # To load completions for each session, execute once:
  $ dccfind completion fish > ~/.config/fish/completions/dccfind.fish

PowerShell:
  PS> dccfind completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> dccfind completion powershell > dccfind.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				ui.PrintError("unsupported shell: %s", args[0])
				return nil
			}
		},
	}

	return cmd
}
