package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/example/go-lexprep/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var skipListen bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run input, lexicon and listen address checks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "output format: %s\n", cfg.Output.Format)

			dcfg := doctor.Config{
				InputPath:   cfg.Input.Path,
				LexiconPath: cfg.Lexicon.Path,
				ListenAddr:  cfg.Server.ListenAddr,
			}
			if !skipListen {
				dcfg.Listen = doctor.TryListen
			}

			result := doctor.Run(dcfg, out)

			if result.Failed() {
				for _, f := range result.Failures() {
					// #nosec G705 -- Writes plain diagnostic text to stderr for CLI output, not HTML rendering.
					fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(out, "doctor checks passed")

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipListen, "skip-listen", false, "Do not try to bind the listen address")

	return cmd
}
