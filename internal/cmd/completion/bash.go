package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for adorn.

To load completions in your current shell session:

  source <(adorn completion bash)

To load completions for every new session:

  # Linux
  adorn completion bash > /etc/bash_completion.d/adorn

  # macOS (requires bash-completion)
  adorn completion bash > $(brew --prefix)/etc/bash_completion.d/adorn`,
		Example: `  # Load in current session
  source <(adorn completion bash)

  # Install permanently (Linux)
  adorn completion bash | sudo tee /etc/bash_completion.d/adorn > /dev/null

  # Install permanently (macOS with Homebrew)
  adorn completion bash > $(brew --prefix)/etc/bash_completion.d/adorn`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
