package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diesi/aienum/cmd/aienum/commands"
	"github.com/diesi/aienum/internal/cli"
	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "aienum",
	Short: "aienum - turn numbered descriptions into enums",
	Long: `aienum - turn a numbered free-text description into an enum declaration.

Each number in the description starts an entry; the text up to the next
number is its label. Labels are named through a dictionary file, passed
through when they are already plain words, or translated by an AI provider.

Examples:
  aienum gen --name Color "颜色: 1红色，2绿色，3蓝色"
  echo "1 启用 2 禁用 3" | aienum gen -n Status -f go
  aienum serve --addr :8787

Environment variables:
  OPENAI_API_KEY       OpenAI API key
  CLAUDE_API_KEY       Anthropic Claude API key
  GEMINI_API_KEY       Google Gemini API key
  CUSTOM_BASE_URL      OpenAI-compatible endpoint (LM Studio, Ollama, ...)
  AIENUM_PROVIDER      openai, claude, gemini or custom (default: detected from keys)
  AIENUM_MODEL         Model name
  AIENUM_FORMAT        ts, go, json or yaml (default: ts)
  AIENUM_DICTIONARY    YAML/TOML/JSON file mapping labels to identifiers
  AIENUM_MOCK          Offline placeholder names (Item1, Item2, ...)
  AIENUM_NON_INTERACTIVE  Accept suggestions without prompting
  NO_COLOR             Disable colored output`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			cli.DisableColors()
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(jsonLogs || config.Bool(config.EnvAIEnumLogJSON), verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		config.WarnUnknownEnv(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v for debug logs)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ~/.aienum.toml then ./aienum.toml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GenCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %s\n", cli.ColorRed, cli.ColorReset, errors.UserMessage(err))
		os.Exit(1)
	}
}
