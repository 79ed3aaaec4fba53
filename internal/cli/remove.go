package cli

import (
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item from your fridge",
		Long: `Remove one item by identity. Never gated, and removing an identity
that is not in the fridge is a quiet no-op.

Find identities with 'frigo items'.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, id string, cmd *cobra.Command) error {
	a, cleanup, err := newApp(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := a.RemoveItem(id); err != nil {
		return WrapExitError(ExitCommandError, "remove failed", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success("Removed.")
}
