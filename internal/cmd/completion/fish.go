package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for adorn.

To load completions in your current shell session:

  adorn completion fish | source

To load completions for every new session:

  adorn completion fish > ~/.config/fish/completions/adorn.fish`,
		Example: `  # Load in current session
  adorn completion fish | source

  # Install permanently
  adorn completion fish > ~/.config/fish/completions/adorn.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
