package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// ItemsOptions holds flags for the items command.
type ItemsOptions struct {
	*RootOptions
	ID string
}

// NewItemsCommand creates the items command.
func NewItemsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ItemsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List your fridge with freshness labels",
		Long: `List the fridge inventory in the order items were added, each with
its freshness label. With --id, show one item in detail, including
which generated recipes use it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "show a single item by identity")

	return cmd
}

func runItems(opts *ItemsOptions, cmd *cobra.Command) error {
	a, cleanup, err := newApp(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	now := time.Now()
	if opts.Clock != nil {
		now = opts.Clock()
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if opts.ID != "" {
		item, matched, err := a.ItemRecipes(opts.ID)
		if err != nil {
			return WrapExitError(ExitFailure, "unknown item", err)
		}
		if opts.Format == "json" {
			return formatter.Success(map[string]any{"item": item, "recipes": matched})
		}
		renderItemDetail(cmd.OutOrStdout(), item, now, matched)
		return nil
	}

	items := a.Inventory()
	if opts.Format == "json" {
		return formatter.Success(items)
	}
	renderItems(cmd.OutOrStdout(), items, now)
	return nil
}
