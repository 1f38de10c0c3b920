package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diesi/aienum/internal/cli"
	"github.com/diesi/aienum/internal/clipboard"
	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
	"github.com/diesi/aienum/internal/render"
	"github.com/diesi/aienum/internal/resolver"
)

// GenCmd extracts an enum from a description and prints it.
var GenCmd = &cobra.Command{
	Use:   "gen [description...]",
	Short: "Generate an enum from a numbered description",
	Long: `Generate an enum declaration from a numbered description.

The description is taken from the arguments, or from stdin when none are
given. Every number starts an entry and only its first digit becomes the
value; the text after the last number is ignored unless --trailing is set.`,
	Example: `  aienum gen -n Color "1红色，2绿色，3蓝色"
  aienum gen -n Color -f go --dict colors.yaml "1红色，2绿色，3"`,
	RunE: runGen,
}

var (
	genName  string
	genLabel string
	genCopy  bool
)

func init() {
	GenCmd.Flags().StringVarP(&genName, "name", "n", "Enum", "Enum type name")
	GenCmd.Flags().StringVarP(&genLabel, "label", "l", "", "Enum doc comment (default: the description)")
	GenCmd.Flags().StringP("format", "f", "ts", "Output format: ts, go, json or yaml")
	GenCmd.Flags().Bool("no-casing", false, "Keep resolved names as returned instead of UpperCamelCase")
	GenCmd.Flags().Bool("trailing", false, "Read the text after the last number as an entry too")
	GenCmd.Flags().StringP("dict", "d", "", "Dictionary file (YAML, TOML or JSON) mapping labels to names")
	GenCmd.Flags().BoolP("interactive", "i", false, "Confirm or edit every name")
	GenCmd.Flags().BoolVarP(&genCopy, "copy", "c", false, "Also copy the output to the clipboard")
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.Named("gen")

	desc, fromStdin, err := readDescription(cmd, args)
	if err != nil {
		return err
	}
	if desc == "" {
		return errors.WithHint(errors.Wrap(errors.ErrInvalidRequest, "empty description"),
			`pass it as an argument, e.g. aienum gen "1红色，2绿色，3"`)
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if fromStdin && cfg.Interactive {
		log.Warnw("Description read from stdin; prompts will use their defaults")
		in = strings.NewReader("")
	}
	resolve, err := resolver.FromConfig(cfg, in, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var opts []enumdesc.Option
	if !cfg.Casing {
		opts = append(opts, enumdesc.WithoutCasing())
	}
	if cfg.Trailing {
		opts = append(opts, enumdesc.WithTrailingSegment())
	}

	log.Debugw("Extracting", "description", desc, "provider", cfg.Provider, "model", cfg.Model,
		"dictionary", cfg.Dictionary, "mock", cfg.Mock)
	var stop func(bool)
	if !cfg.Interactive && !logger.JSONOutput {
		stop = cli.Spinner(cmd.ErrOrStderr(), "Naming entries via "+source(cfg))
	}
	entries, err := enumdesc.Extract(cmd.Context(), desc, resolve, opts...)
	if stop != nil {
		stop(err == nil)
	}
	if err != nil {
		return err
	}
	if entries == nil {
		return errors.WithHint(errors.ErrNoEnum, "number each item, e.g. 1红色，2绿色，3")
	}

	label := genLabel
	if label == "" {
		label = desc
	}
	out, err := render.Render(format, enumdesc.Enum{Label: label, Name: genName, Entries: entries})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if genCopy {
		if err := clipboard.Copy(out); err != nil {
			log.Warnw("Copy failed", "error", err)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "%sCopied to clipboard.%s\n", cli.ColorGreen, cli.ColorReset)
		}
	}
	return nil
}

// readDescription joins args, falling back to stdin when it is not a terminal.
func readDescription(cmd *cobra.Command, args []string) (string, bool, error) {
	if desc := strings.TrimSpace(strings.Join(args, " ")); desc != "" {
		return desc, false, nil
	}
	in := cmd.InOrStdin()
	if cli.IsTerminal(in) {
		return "", false, nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", true, errors.Wrap(err, "read description from stdin")
	}
	return strings.TrimSpace(string(b)), true, nil
}

func source(cfg *config.Config) string {
	switch {
	case cfg.Mock:
		return "mock names"
	case cfg.Dictionary != "":
		return cfg.Dictionary + " and " + cfg.Provider + "/" + cfg.Model
	default:
		return cfg.Provider + "/" + cfg.Model
	}
}
