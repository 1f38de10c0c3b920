package resolver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/diesi/aienum/internal/cli"
	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
)

// Interactive asks the user to confirm or replace a name for each label.
// suggest, when set, provides the default answer. Enter accepts the default,
// "-" skips the label. With AIENUM_NON_INTERACTIVE set the suggestion is
// returned without prompting.
func Interactive(in io.Reader, out io.Writer, suggest enumdesc.NameFunc) enumdesc.NameFunc {
	sc := bufio.NewScanner(in)
	color := cli.IsTerminal(out)
	return func(ctx context.Context, label string) (string, error) {
		def := ""
		if suggest != nil {
			var err error
			if def, err = suggest(ctx, label); err != nil {
				return "", err
			}
		}
		if config.Bool(config.EnvAIEnumNonInteractive) {
			return def, nil
		}

		if color {
			fmt.Fprintf(out, "%s%s %s%s%s", cli.ColorBold, cli.IconPrompt, cli.ColorCyan, label, cli.ColorReset)
			if def != "" {
				fmt.Fprintf(out, " %s[default: %s]%s", cli.ColorDim, def, cli.ColorReset)
			}
		} else {
			fmt.Fprintf(out, "%s", label)
			if def != "" {
				fmt.Fprintf(out, " [default: %s]", def)
			}
		}
		fmt.Fprint(out, ": ")

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", errors.Wrap(err, "read answer")
			}
			// EOF: keep the default so piped input may stop early.
			return def, nil
		}
		answer := strings.TrimSpace(sc.Text())
		switch answer {
		case "":
			return def, nil
		case "-":
			return "", nil
		}
		return answer, nil
	}
}
