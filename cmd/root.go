package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/cvlsoft/aios_backend/cmd/http"
	systemcmd "github.com/cvlsoft/aios_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "aios-backend",
	Short: "Backend for the cvlSoft AIOS marketing site.",
	Long: `aios-backend serves the cvlSoft marketing site's content dictionary and
handles demo-request submissions: validation, lead capture, and the
confirmation/notification emails that follow.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
