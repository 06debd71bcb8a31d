package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command. The generation itself
// is cobra's; this just maps the shell argument onto the right generator.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sceneflow.

Bash:
  $ source <(sceneflow completion bash)
  # or install permanently:
  $ sceneflow completion bash > /etc/bash_completion.d/sceneflow

Zsh:
  $ sceneflow completion zsh > "${fpath[1]}/_sceneflow"
  # requires compinit; enable it once with:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

Fish:
  $ sceneflow completion fish > ~/.config/fish/completions/sceneflow.fish

PowerShell:
  PS> sceneflow completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}
