package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hanzikit/hanzikit/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig > %w", err)
			}
			application, err := newApp(cfg)
			if err != nil {
				return fmt.Errorf("newApp > %w", err)
			}

			handler := server.NewHandler(application.engine, application.resolver)
			router := handler.Router(cfg.Server.AllowedOrigins)

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			slog.Info("starting server", "addr", addr)
			return http.ListenAndServe(addr, h2c.NewHandler(router, &http2.Server{}))
		},
	}
}
