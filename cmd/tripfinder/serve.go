package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/usestring/tripfinder-mcp/pkg/mcpsrv"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Run the tripfinder MCP server over stdio. Tools, prompts and
resources share one filter session; favorites, reviews and search history
persist in the configured storage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			server, err := mcpsrv.NewServer(ctx, mcpsrv.WithConfig(a.cfg))
			if err != nil {
				return err
			}
			defer server.Close()

			slog.Info("starting tripfinder MCP server on stdio",
				slog.String("storage", a.cfg.StorageDriver),
			)
			if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			slog.Info("server stopped")
			return nil
		},
	}
}
