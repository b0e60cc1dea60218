package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ananya/practiq/internal/version"
)

// Version is set at build time via -ldflags.
var Version = "(devel)"

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the practiq version",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "practiq %s\n", Version)
	if !versionCheck {
		return nil
	}

	result, err := version.NewChecker().Check(cmd.Context(), Version)
	if err != nil {
		return fmt.Errorf("check latest release: %w", err)
	}
	if result.UpdateAvailable {
		fmt.Fprintf(out, "update available: %s\n", result.LatestVersion)
	} else {
		fmt.Fprintf(out, "latest release: %s\n", result.LatestVersion)
	}
	return nil
}
