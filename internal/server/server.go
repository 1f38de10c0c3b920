// Package server exposes enum extraction and rendering over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Options carries the request defaults a server applies when a body omits them.
type Options struct {
	Format   string
	Casing   bool
	Trailing bool
}

// Server wires the HTTP routes to a shared resolver.
type Server struct {
	resolve enumdesc.NameFunc
	opts    Options
	log     *zap.SugaredLogger
	engine  *gin.Engine
}

// New builds the router. resolve is shared by all requests and must be safe
// for concurrent use.
func New(resolve enumdesc.NameFunc, opts Options) *Server {
	s := &Server{
		resolve: resolve,
		opts:    opts,
		log:     logger.Named("http"),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.log))
	r.GET("/healthz", HealthHandler())
	v1 := r.Group("/v1")
	{
		v1.POST("/enums", EnumHandler(s.resolve, s.opts))
		v1.POST("/render", RenderHandler(s.opts))
	}
	s.engine = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Infow("Listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrapf(err, "listen on %s", addr)
	case <-ctx.Done():
	}

	s.log.Infow("Initiating server shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Infow("Server stopped")
	return nil
}
