// petcli is a terminal virtual pet with an AI-backed chat pane.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"petcli/cmd/petcli/chat"
	"petcli/internal/config"
	"petcli/internal/llm"
	"petcli/internal/logging"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "petcli",
	Short: "petcli - a virtual pet that lives in your terminal",
	Long: `petcli keeps an ASCII pet in your terminal. Chat with it, feed it
treats, or prefix a line with $ to ask about shell commands.

The pet's mood follows how often you interact; ignore it and it sulks.
Configuration lives in ~/.config/petcli/config.toml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive root owns the terminal; only subcommands get a
		// console logger.
		if cmd == cmd.Root() {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the saved pet statistics without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, ok := config.LoadSnapshot()
		if !ok {
			return fmt.Errorf("no saved pet state yet; run petcli first")
		}
		fmt.Println(snap.Pet.StatsLine())
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration and its path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.File()
		if err != nil {
			return err
		}
		if _, err := config.Load(); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n%s", path, data)
		return nil
	},
}

// runInteractive wires config, logging, and the LLM client, then hands the
// terminal to the bubbletea program.
func runInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := logging.Init(dir, cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	m := chat.New(cfg, client, time.Now())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// buildClient selects the completion backend from config. Missing
// credentials fail fast here, before the terminal is taken over.
func buildClient(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOllama:
		return llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel), nil
	case config.ProviderOpenAI, "":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set; export it or switch llm_provider to %q in the config", config.ProviderOllama)
		}
		c := llm.DefaultOpenAIConfig(apiKey)
		if cfg.Model != "" {
			c.Model = cfg.Model
		}
		return llm.NewOpenAIClientWithConfig(c), nil
	default:
		return nil, fmt.Errorf("unknown llm_provider %q (want %q or %q)", cfg.LLMProvider, config.ProviderOpenAI, config.ProviderOllama)
	}
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging for subcommands")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
