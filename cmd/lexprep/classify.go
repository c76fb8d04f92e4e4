package main

import (
	"fmt"
	"log/slog"

	"github.com/example/go-lexprep/internal/lexicon"
	"github.com/example/go-lexprep/internal/render"
	"github.com/example/go-lexprep/internal/text"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var (
		in          string
		lexiconPath string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Tag each token with its part of speech from a lexicon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if lexiconPath == "" {
				lexiconPath = cfg.Lexicon.Path
			}
			if lexiconPath == "" {
				return fmt.Errorf("no lexicon configured; pass --lexicon or set lexicon.path")
			}

			lx, err := lexicon.LoadFile(lexiconPath)
			if err != nil {
				return err
			}

			doc, err := loadDocument(inputPath(in, cfg), cmd.InOrStdin())
			if err != nil {
				return err
			}

			classified := lexicon.Classify(lx, text.Tokenize(doc))
			slog.Debug("document classified",
				slog.Int("tokens", len(classified)),
				slog.Float64("coverage", lexicon.Coverage(classified)),
			)

			return render.WriteClassified(cmd.OutOrStdout(), classified)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Document to read ('-' for stdin; overrides --input-path)")
	cmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon (overrides --lexicon-path)")

	return cmd
}
