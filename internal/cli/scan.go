package cli

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Identify food items in a photo",
		Long: `Send a photo to the AI service and list the food items it sees.

Scanning is free for everyone; confirming the results into your fridge
with 'frigo add' may require an account once the fridge is full.

Example:
  frigo scan fridge.jpg`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScan(opts *RootOptions, path string, cmd *cobra.Command) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read image", err)
	}

	a, cleanup, err := newApp(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	names, err := a.IdentifyFoods(commandContext(cmd.Context()), image, imageMIMEType(path, image))
	if err != nil {
		if msg, ok := a.Failure(); ok {
			_ = formatter.Error("SCAN_FAILED", msg)
		}
		return WrapExitError(ExitFailure, "scan failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(names)
	}
	renderNames(cmd.OutOrStdout(), names)
	return nil
}

// imageMIMEType resolves the declared media type from the file extension,
// falling back to content sniffing.
func imageMIMEType(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	return http.DetectContentType(data)
}
