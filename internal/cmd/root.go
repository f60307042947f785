package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	outputFormat string
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "dataroom",
	Short: "Secure data room client",
	Long: `dataroom is the terminal client for the data room platform.
It manages your session, organization branding and settings, members and
invitations, usage limits, and the platform-admin console.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// normalizeFlags accepts snake_case spellings of multi-word flags
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)
}
