/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for runpattern. Infers a validation pattern from
example identifiers, verifies samples against a pattern and generates new samples,
with configuration from flags, a config file and RUNPATTERN_* environment variables.
*/

package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"github.com/kleascm/runpattern/cmd/runpattern/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runpattern",
		Short: "Infer validation patterns from example identifiers",
		Long: `runpattern generalizes a set of example values such as license plates or tax
codes into one pattern of uppercase letter runs and digit runs, e.g. [A-Z]{2}\d{3}[A-Z]{2}.`,
		Version:      "1.0.0",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file path")
	flags.String("log-level", "warn", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "custom", "Log format (text, json, custom)")
	flags.String("log-dir", "", "Directory for log files (disabled when empty)")
	flags.Bool("log-colors", false, "Colorize console logs")
	flags.StringP("file", "f", "", "File with one sample per line")
	flags.String("corpus-dir", "", "Directory of sample files")
	flags.Int("workers", runtime.NumCPU(), "Goroutines used for segmentation and merging")

	viper.BindPFlag("config", flags.Lookup("config"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("log_format", flags.Lookup("log-format"))
	viper.BindPFlag("log_dir", flags.Lookup("log-dir"))
	viper.BindPFlag("log_colors", flags.Lookup("log-colors"))
	viper.BindPFlag("file", flags.Lookup("file"))
	viper.BindPFlag("corpus_dir", flags.Lookup("corpus-dir"))
	viper.BindPFlag("workers", flags.Lookup("workers"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer [samples...]",
		Short: "Infer the pattern matching every sample",
		Long: `Infer one pattern matching every sample. Samples come from the arguments,
--file, --corpus-dir, or stdin (one per line) when none of those is given.`,
		RunE: commands.PerformInference,
	}
	inferCmd.Flags().StringP("output", "o", commands.OutputText, "Output format (text, json, yaml)")
	inferCmd.Flags().Bool("verify", true, "Check the pattern against every sample")
	inferCmd.Flags().String("report-dir", "", "Also write a timestamped report to this directory")

	viper.BindPFlag("output", inferCmd.Flags().Lookup("output"))
	viper.BindPFlag("verify", inferCmd.Flags().Lookup("verify"))
	viper.BindPFlag("report_dir", inferCmd.Flags().Lookup("report-dir"))

	rootCmd.AddCommand(inferCmd)

	// Add verify command
	verifyCmd := &cobra.Command{
		Use:   "verify --pattern PATTERN [samples...]",
		Short: "List samples a pattern does not match",
		Long: `Match every sample against PATTERN in full and print those that do not match.
Exits non-zero when any sample is unmatched.`,
		RunE: commands.PerformVerification,
	}
	verifyCmd.Flags().StringP("pattern", "p", "", "Pattern to verify")
	verifyCmd.MarkFlagRequired("pattern")

	viper.BindPFlag("pattern", verifyCmd.Flags().Lookup("pattern"))

	rootCmd.AddCommand(verifyCmd)

	// Add generate command
	generateCmd := &cobra.Command{
		Use:   "generate [samples...]",
		Short: "Generate new samples matching the inferred pattern",
		RunE:  commands.PerformGeneration,
	}
	generateCmd.Flags().IntP("count", "n", 10, "Number of samples to generate")
	generateCmd.Flags().Int64("seed", 1, "Random seed")
	generateCmd.Flags().Bool("mutate", false, "Mutate each generated sample once")

	viper.BindPFlag("count", generateCmd.Flags().Lookup("count"))
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("mutate", generateCmd.Flags().Lookup("mutate"))

	rootCmd.AddCommand(generateCmd)

	return rootCmd
}
