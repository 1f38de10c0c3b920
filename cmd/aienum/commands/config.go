package commands

import (
	"github.com/spf13/cobra"

	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/errors"
)

// flagKeys maps config keys to the command flags that override them.
var flagKeys = map[string]string{
	"format":      "format",
	"dictionary":  "dict",
	"trailing":    "trailing",
	"interactive": "interactive",
	"server.addr": "addr",
}

// loadConfig merges files, env and the flags defined on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	v, err := config.NewViper(path)
	if err != nil {
		return nil, err
	}
	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "bind flag --%s", name)
		}
	}
	if noCasing, _ := cmd.Flags().GetBool("no-casing"); noCasing {
		v.Set("casing", false)
	}
	return config.LoadWithViper(v)
}
