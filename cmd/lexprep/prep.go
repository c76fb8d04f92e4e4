package main

import (
	"fmt"
	"log/slog"

	"github.com/example/go-lexprep/internal/render"
	"github.com/example/go-lexprep/internal/text"
	"github.com/spf13/cobra"
)

func newPrepCmd() *cobra.Command {
	var (
		in            string
		view          string
		maxChunkChars int
	)

	cmd := &cobra.Command{
		Use:   "prep",
		Short: "Tokenize a document and print tokens, unique words and sentences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if maxChunkChars < 0 {
				return fmt.Errorf("--max-chunk-chars must not be negative")
			}

			path := inputPath(in, cfg)
			doc, err := loadDocument(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			res := text.Build(doc)
			slog.Debug("document preprocessed",
				slog.String("path", path),
				slog.Int("text_len", len(doc)),
				slog.Int("tokens", len(res.Tokens)),
				slog.Int("unique_words", len(res.UniqueWords)),
				slog.Int("sentences", len(res.Sentences)),
			)

			opts := render.Options{Format: cfg.Output.Format, View: view}
			if maxChunkChars > 0 {
				opts.Chunks = text.ChunkSentences(res.Sentences, maxChunkChars)
			}
			return render.Write(cmd.OutOrStdout(), res, opts)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Document to read ('-' for stdin; overrides --input-path)")
	cmd.Flags().StringVar(&view, "view", render.ViewAll, "What to print: all|tokens|words|sentences")
	cmd.Flags().IntVar(&maxChunkChars, "max-chunk-chars", 0, "Also group sentences into chunks of at most this many bytes (0 = off)")

	return cmd
}
