package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Charles-pyt/Frigo-Ai/internal/app"
	"github.com/Charles-pyt/Frigo-Ai/internal/pantry"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Expires []string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <name>...",
		Short: "Add scanned items to your fridge",
		Long: `Confirm scanned food items into your fridge inventory.

Each item gets a generated identity and an add-timestamp. Expiration
dates are optional; an item without one is classified by its age
instead.

Once the fridge would hold more than ` + fmt.Sprint(app.FreeInventoryLimit) + ` items, adding requires an
account; the add is held until you log in with 'frigo login'.

Example:
  frigo add Tomatoes Milk --expires "Milk=2026-09-05"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Expires, "expires", nil, "expiration date as name=YYYY-MM-DD (repeatable)")

	return cmd
}

func runAdd(opts *AddOptions, names []string, cmd *cobra.Command) error {
	expirations, err := parseExpirations(opts.Expires)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --expires", err)
	}

	drafts := make([]pantry.Draft, 0, len(names))
	for _, name := range names {
		d := pantry.Draft{Name: name}
		if exp, ok := expirations[strings.ToLower(name)]; ok {
			d.ExpiresAt = &exp
		}
		drafts = append(drafts, d)
	}

	a, cleanup, err := newApp(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	outcome, err := a.SubmitScanResult(drafts)
	if err != nil {
		return WrapExitError(ExitFailure, "add failed", err)
	}

	if outcome == app.OutcomeLoginRequired {
		return formatter.Success(fmt.Sprintf(
			"Your fridge holds more than %d items on the free tier. Log in with 'frigo login' (or 'frigo signup') to finish adding.",
			app.FreeInventoryLimit,
		))
	}

	msg, _ := a.Notice()
	return formatter.Success(msg)
}

// parseExpirations maps lowercased item names to dates from repeated
// name=YYYY-MM-DD flags.
func parseExpirations(specs []string) (map[string]time.Time, error) {
	out := make(map[string]time.Time, len(specs))
	for _, spec := range specs {
		name, date, found := strings.Cut(spec, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("expected name=YYYY-MM-DD, got %q", spec)
		}
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("bad date in %q: %w", spec, err)
		}
		out[strings.ToLower(name)] = t
	}
	return out, nil
}
