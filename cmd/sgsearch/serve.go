// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/kraklabs/sgsearch/internal/bootstrap"
	"github.com/kraklabs/sgsearch/internal/errors"
	"github.com/kraklabs/sgsearch/internal/mcpserver"
	"github.com/kraklabs/sgsearch/pkg/tools"
)

const shutdownTimeout = 5 * time.Second

// runServe starts the MCP server on stdio, plus the metrics endpoint when an
// address is configured.
func runServe(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	metricsAddr := fs.String("metrics-addr", "", "Expose Prometheus metrics on this address (e.g. 127.0.0.1:9464)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sgsearch serve [options]

Description:
  Start the MCP server on stdin/stdout. The server exposes one tool,
  "search", which runs a Sourcegraph query and returns a compact report.
  Logs are written to stderr.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sgsearch serve
  sgsearch --debug serve --metrics-addr 127.0.0.1:9464

MCP client configuration:
  {"command": "sgsearch", "args": ["serve"],
   "env": {"SOURCEGRAPH_TOKEN": "..."}}
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := bootstrap.Load(globals.ConfigPath)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}

	logger := bootstrap.NewLogger(os.Stderr, logLevel(cfg.LogLevel, globals))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, logger); err != nil {
		errors.FatalError(errors.NewInternalError(
			"MCP server stopped with an error",
			err.Error(),
			"Re-run with --debug and check the log output on stderr",
			err,
		), globals.JSON)
	}
}

// serve runs the MCP server until the client disconnects or ctx is done.
// The metrics server, if any, is shut down with it.
func serve(ctx context.Context, cfg *bootstrap.Config, logger *slog.Logger) error {
	handler := tools.NewHandler(bootstrap.NewClient(cfg), logger)
	srv := mcpserver.New(handler, version, logger)

	var ln net.Listener
	if cfg.MetricsAddr != "" {
		var err error
		ln, err = net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			return fmt.Errorf("listen on metrics address %s: %w", cfg.MetricsAddr, err)
		}
	}
	return serveWith(ctx, logger, func(ctx context.Context) error { return srv.Run(ctx) }, ln)
}

// serveWith runs the MCP loop and, when ln is non-nil, a metrics server on ln.
// Whichever finishes first stops the other.
func serveWith(ctx context.Context, logger *slog.Logger, run func(context.Context) error, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		err := run(gctx)
		if stderrors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if ln != nil {
		ms := &http.Server{
			Handler:           metricsHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("metrics.server.start", "addr", ln.Addr().String())

		g.Go(func() error {
			if err := ms.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.Info("metrics.server.stop")
			return ms.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

func metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
