package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/example/go-lexprep/internal/config"
	"github.com/example/go-lexprep/internal/server"
	"github.com/example/go-lexprep/internal/source"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "lexprep",
		Short: "Tokenize, normalize and segment plain-text documents",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newPrepCmd())
	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Output.Format == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// inputPath picks the --in flag over the configured input path.
func inputPath(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Input.Path
}

// loadDocument reads path, or stdin when path is empty or "-".
func loadDocument(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		doc, err := source.Read(stdin)
		if err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		return doc, nil
	}
	return source.ReadFile(path)
}
