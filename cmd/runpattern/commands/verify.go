/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: verify.go
Description: Pattern verification command. Matches samples against a rendered pattern
and lists every sample it does not match in full.
*/

package commands

import (
	"errors"
	"fmt"

	"github.com/kleascm/runpattern/pkg/pattern"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrUnmatchedSamples is returned when at least one sample does not match
var ErrUnmatchedSamples = errors.New("pattern does not match every sample")

// PerformVerification checks samples against --pattern
func PerformVerification(cmd *cobra.Command, args []string) error {
	logger, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	p := viper.GetString("pattern")
	if p == "" {
		return fmt.Errorf("a pattern is required")
	}

	samples, err := collectSamples(cmd, args, logger)
	if err != nil {
		return err
	}

	misses, err := pattern.Verify(p, samples)
	if err != nil {
		return err
	}
	logger.LogVerification(p, len(samples), len(misses))

	out := cmd.OutOrStdout()
	for _, m := range misses {
		fmt.Fprintln(out, m)
	}
	if len(misses) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnmatchedSamples, len(misses), len(samples))
	}
	return nil
}
