package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Charles-pyt/Frigo-Ai/internal/account"
)

// AuthOptions holds flags shared by signup and login.
type AuthOptions struct {
	*RootOptions
	Email    string
	Password string
}

// NewSignupCommand creates the signup command.
func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		Long: `Register an email and password, then log in. If an action was held
waiting for a login, it runs now.

This is a simulated account store kept on this device only; do not
reuse a password you care about.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(opts, cmd, true)
		},
	}

	addAuthFlags(cmd, opts)
	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your account",
		Long: `Log in with a registered email and password. If an action was held
waiting for a login, it runs now.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(opts, cmd, false)
		},
	}

	addAuthFlags(cmd, opts)
	return cmd
}

func addAuthFlags(cmd *cobra.Command, opts *AuthOptions) {
	cmd.Flags().StringVar(&opts.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func runAuth(opts *AuthOptions, cmd *cobra.Command, signup bool) error {
	a, cleanup, err := newApp(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	ctx := commandContext(cmd.Context())
	if signup {
		err = a.SignUp(ctx, opts.Email, opts.Password)
	} else {
		err = a.LogIn(ctx, opts.Email, opts.Password)
	}
	if err != nil {
		// Surface the validation message; the "interface stays open" of
		// the original maps to simply retrying the command.
		var ae *account.Error
		if errors.As(err, &ae) {
			_ = formatter.Error(string(ae.Code), ae.Message)
		}
		return WrapExitError(ExitFailure, "authentication failed", err)
	}

	msg, _ := a.Notice()
	return formatter.Success(msg)
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "logout",
		Short:         "Log out",
		Long:          `Clear the session marker. Always succeeds, logged in or not.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.LogOut(); err != nil {
				return WrapExitError(ExitCommandError, "logout failed", err)
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			msg, _ := a.Notice()
			return formatter.Success(msg)
		},
	}

	return cmd
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "whoami",
		Short:         "Show the logged-in account",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			email, ok := a.CurrentUser()
			if !ok {
				return formatter.Success("Not logged in.")
			}
			return formatter.Success(fmt.Sprintf("Logged in as %s", email))
		},
	}

	return cmd
}
