package cli

import (
	"os"
	"strings"

	"github.com/diesi/aienum/internal/config"
)

// ANSI escapes for status lines and prompts. They are emptied when color is
// off, so callers interpolate them unconditionally.
var (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
	ColorCyan  = "\033[36m"
)

const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconPrompt  = "➤"
)

var palette = []*string{&ColorReset, &ColorBold, &ColorDim, &ColorRed, &ColorGreen, &ColorCyan}

func init() {
	if !colorEnabled() {
		DisableColors()
	}
}

// colorEnabled honors NO_COLOR, AIENUM_NO_COLOR and TERM=dumb. Prompts and
// status lines go to stderr (stdout carries the rendered code), so stderr
// must be a terminal.
func colorEnabled() bool {
	if config.Get(config.EnvAIEnumNoColor) != "" || config.Get(config.EnvNoColor) != "" {
		return false
	}
	if strings.EqualFold(config.Get(config.EnvTerm), "dumb") {
		return false
	}
	return IsTerminal(os.Stderr)
}

// DisableColors clears every escape code, e.g. for --no-color.
func DisableColors() {
	for _, p := range palette {
		*p = ""
	}
}
