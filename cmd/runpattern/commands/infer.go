/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Pattern inference command. Collects samples, infers the run pattern and
prints it as plain text, JSON or YAML, optionally writing a timestamped report.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/runpattern/pkg/inference"
	"github.com/kleascm/runpattern/pkg/logging"
	"github.com/kleascm/runpattern/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// OutputText prints the bare pattern
const OutputText = "text"

// PerformInference infers a pattern from the collected samples
func PerformInference(cmd *cobra.Command, args []string) error {
	logger, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	samples, err := collectSamples(cmd, args, logger)
	if err != nil {
		return err
	}

	g, err := inferGrammar(cmd, logger, samples, viper.GetBool("verify"))
	if err != nil {
		return err
	}

	output := viper.GetString("output")
	if output == OutputText {
		fmt.Fprintln(cmd.OutOrStdout(), g.Pattern)
	} else if err := utils.Encode(cmd.OutOrStdout(), output, g); err != nil {
		return err
	}

	if dir := viper.GetString("report_dir"); dir != "" {
		encoding := output
		if encoding == OutputText {
			encoding = utils.EncodingJSON
		}
		path, err := utils.WriteReport(dir, "infer", encoding, g)
		if err != nil {
			return err
		}
		logger.Info("Report written", map[string]interface{}{"path": path})
	}
	return nil
}

// inferGrammar runs the run engine with the configured worker count
func inferGrammar(cmd *cobra.Command, logger *logging.Logger, samples []string, verify bool) (*inference.Grammar, error) {
	engine := inference.NewRunEngine(
		inference.WithLogger(logger),
		inference.WithWorkers(viper.GetInt("workers")),
		inference.WithVerify(verify),
	)
	return engine.Infer(cmd.Context(), samples)
}
