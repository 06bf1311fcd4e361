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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sgsearch/internal/bootstrap"
	"github.com/kraklabs/sgsearch/internal/errors"
	"github.com/kraklabs/sgsearch/internal/ui"
)

type initFlags struct {
	force, nonInteractive bool
	url, token            string
	metricsAddr, logLevel string
}

// runInit writes a config file, prompting for values not given as flags.
func runInit(args []string, globals GlobalFlags) {
	f := parseInitFlags(args)

	configPath := globals.ConfigPath
	if configPath == "" {
		p, err := bootstrap.DefaultConfigPath()
		if err != nil {
			errors.FatalError(errors.NewConfigError(
				"Cannot locate home directory",
				err.Error(),
				"Pass an explicit path with --config",
				err,
			), globals.JSON)
		}
		configPath = p
	}

	if _, err := os.Stat(configPath); err == nil && !f.force {
		errors.FatalError(errors.NewInputError(
			"Config file already exists",
			configPath+" was created earlier",
			"Use --force to overwrite it",
		), globals.JSON)
	}

	cfg := createInitConfig(f)
	if !f.nonInteractive {
		runInteractiveConfig(bufio.NewReader(os.Stdin), os.Stdout, cfg)
	}
	if err := cfg.Validate(); err != nil {
		errors.FatalError(err, globals.JSON)
	}

	if err := bootstrap.Save(cfg, configPath); err != nil {
		errors.FatalError(errors.NewConfigError(
			"Cannot save configuration",
			err.Error(),
			"Check permissions on "+configPath,
			err,
		), globals.JSON)
	}

	ui.Success(os.Stdout, "Created %s", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  sgsearch status   Check the connection")
	fmt.Println("  sgsearch serve    Start the MCP server")
}

func parseInitFlags(args []string) initFlags {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var f initFlags
	fs.BoolVar(&f.force, "force", false, "Overwrite existing configuration")
	fs.BoolVarP(&f.nonInteractive, "yes", "y", false, "Non-interactive mode (use flags and environment only)")
	fs.StringVar(&f.url, "url", "", "Sourcegraph URL (default: $SOURCEGRAPH_URL or https://sourcegraph.com)")
	fs.StringVar(&f.token, "token", "", "Access token (default: $SOURCEGRAPH_TOKEN)")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Prometheus metrics address for serve")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sgsearch init [options]

Creates the sgsearch config file (default ~/.sgsearch/config.yaml).
The file stores the access token and is written with mode 0600.

Examples:
  sgsearch init                                  # Interactive
  sgsearch init -y --url https://sg.example.com  # Token from $SOURCEGRAPH_TOKEN

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	return f
}

// createInitConfig builds the initial config from defaults, the environment
// and flags, in that order.
func createInitConfig(f initFlags) *bootstrap.Config {
	cfg := bootstrap.DefaultConfig()
	cfg.ApplyEnv(os.Getenv)
	if f.url != "" {
		cfg.URL = f.url
	}
	if f.token != "" {
		cfg.Token = f.token
	}
	cfg.MetricsAddr = f.metricsAddr
	cfg.LogLevel = f.logLevel
	return cfg
}

func runInteractiveConfig(reader *bufio.Reader, w io.Writer, cfg *bootstrap.Config) {
	ui.Header(w, "sgsearch Configuration")
	fmt.Fprintln(w)

	cfg.URL = prompt(reader, w, "Sourcegraph URL", cfg.URL)
	if cfg.Token != "" {
		masked := cfg.MaskedToken()
		if tok := prompt(reader, w, "Access token", masked); tok != masked {
			cfg.Token = tok
		}
	} else {
		cfg.Token = prompt(reader, w, "Access token", "")
	}
	fmt.Fprintln(w)
}

// prompt reads one line from reader, returning defaultValue on empty input.
func prompt(reader *bufio.Reader, w io.Writer, label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultValue
	}
	return input
}
