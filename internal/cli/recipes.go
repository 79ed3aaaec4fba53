package cli

import (
	"github.com/spf13/cobra"

	"github.com/Charles-pyt/Frigo-Ai/internal/app"
)

// NewRecipesCommand creates the recipes command.
func NewRecipesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Generate recipes from your fridge",
		Long: `Ask the AI service for up to three recipes built from what is in
your fridge. Requires an account: without a session the request is held
until you log in with 'frigo login'.

Each successful generation replaces the previous recipe set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecipes(rootOpts, cmd)
		},
	}

	return cmd
}

func runRecipes(opts *RootOptions, cmd *cobra.Command) error {
	a, cleanup, err := newApp(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	outcome, err := a.RequestRecipes(commandContext(cmd.Context()))
	if err != nil {
		if msg, ok := a.Failure(); ok {
			_ = formatter.Error(failureCode(err), msg)
		}
		return WrapExitError(ExitFailure, "recipe generation failed", err)
	}

	if outcome == app.OutcomeLoginRequired {
		return formatter.Success("Recipes need an account. Log in with 'frigo login' (or 'frigo signup') and your request will run.")
	}

	if opts.Format == "json" {
		return formatter.Success(a.Recipes())
	}
	renderRecipes(cmd.OutOrStdout(), a.Recipes())
	return nil
}

// failureCode maps an orchestrator error to the code shown in output.
func failureCode(err error) string {
	switch {
	case app.HasCode(err, app.CodeEmptyInventory):
		return string(app.CodeEmptyInventory)
	case app.HasCode(err, app.CodeGenerationInFlight):
		return string(app.CodeGenerationInFlight)
	default:
		return string(app.CodeGenerationFailed)
	}
}
