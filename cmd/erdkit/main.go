package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/erdkit/erdkit/cmd/erdkit/internal/abicmd"
	"github.com/erdkit/erdkit/cmd/erdkit/internal/addresscmd"
	"github.com/erdkit/erdkit/common/check"
)

func main() {
	var (
		logLevel string
		verbose  bool
	)

	rootCmd := &cobra.Command{
		Use:   "erdkit",
		Short: "Encode, decode and inspect chain data from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				zerolog.SetGlobalLevel(zerolog.Disabled)
				return
			}
			level, err := zerolog.ParseLevel(logLevel)
			check.PanicIfErr(err)
			zerolog.SetGlobalLevel(level)
		},
		SilenceUsage: true,
	}

	// Accept both --log_level and --log-level spellings.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace|debug|info|warn|error")

	rootCmd.AddCommand(
		abicmd.GetCommand(),
		addresscmd.GetCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
