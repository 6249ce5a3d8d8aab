/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Sample generation command. Infers the pattern of the collected samples and
prints new random samples conforming to it.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PerformGeneration prints --count samples matching the inferred pattern
func PerformGeneration(cmd *cobra.Command, args []string) error {
	count := viper.GetInt("count")
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}

	logger, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	samples, err := collectSamples(cmd, args, logger)
	if err != nil {
		return err
	}

	g, err := inferGrammar(cmd, logger, samples, false)
	if err != nil {
		return err
	}

	gen, err := g.Generator(viper.GetInt64("seed"))
	if err != nil {
		return err
	}

	generated, err := gen.GenerateN(count)
	if err != nil {
		return err
	}

	mutate := viper.GetBool("mutate")
	out := cmd.OutOrStdout()
	for _, s := range generated {
		if mutate {
			m, err := gen.Mutate([]byte(s))
			if err != nil {
				return err
			}
			s = string(m)
		}
		fmt.Fprintln(out, s)
	}

	logger.Debug("Samples generated", map[string]interface{}{
		"pattern": g.Pattern,
		"count":   len(generated),
		"mutated": mutate,
	})
	return nil
}
