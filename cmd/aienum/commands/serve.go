package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/diesi/aienum/internal/resolver"
	"github.com/diesi/aienum/internal/server"
)

// ServeCmd runs the HTTP API.
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Serve the enum API over HTTP",
	Long: `Serve the enum API over HTTP.

  GET  /healthz     liveness and version
  POST /v1/enums    {"description", "name", "label", "format", "casing", "trailing"}
  POST /v1/render   {"enum", "format"}`,
	RunE: runServe,
}

func init() {
	ServeCmd.Flags().String("addr", "", "Listen address (default: 127.0.0.1:8787)")
	ServeCmd.Flags().StringP("format", "f", "ts", "Default output format")
	ServeCmd.Flags().StringP("dict", "d", "", "Dictionary file (YAML, TOML or JSON) mapping labels to names")
	ServeCmd.Flags().Bool("trailing", false, "Read the text after the last number by default")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Prompts make no sense for HTTP callers.
	cfg.Interactive = false

	verbosity, _ := cmd.Flags().GetCount("verbose")
	if verbosity == 0 {
		gin.SetMode(gin.ReleaseMode)
	}

	resolve, err := resolver.FromConfig(cfg, nil, nil)
	if err != nil {
		return err
	}
	srv := server.New(resolve, server.Options{
		Format:   cfg.Format,
		Casing:   cfg.Casing,
		Trailing: cfg.Trailing,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, cfg.Server.Addr)
}
