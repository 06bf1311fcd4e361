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

// Package main implements the sgsearch CLI, which serves Sourcegraph code
// search to AI agents over the Model Context Protocol.
//
// Usage:
//
//	sgsearch serve                        Start the MCP server (JSON-RPC over stdio)
//	sgsearch search <query> [--json]      Run one search and print the report
//	sgsearch status [--json]              Show configuration and check the backend
//	sgsearch init                         Create ~/.sgsearch/config.yaml
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sgsearch/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags are the flags accepted before the command name.
type GlobalFlags struct {
	ConfigPath string
	JSON       bool
	NoColor    bool
	Debug      bool
}

const usageText = `sgsearch - Sourcegraph code search for AI agents

sgsearch exposes Sourcegraph's code search as a single MCP tool, "search",
and compresses results into short text reports an LLM can read.

Usage:
  sgsearch [global options] <command> [options]

Commands:
  serve         Start the MCP server (JSON-RPC over stdio)
  search        Run one search and print the report
  status        Show configuration and check the Sourcegraph connection
  init          Create the config file
  completion    Generate shell completion script (bash|zsh|fish)

Global Options:
  --config      Path to config file (default: ~/.sgsearch/config.yaml)
  --json        Output as JSON where supported
  --no-color    Disable colored output
  --debug       Enable debug logging
  --version     Show version and exit

Examples:
  sgsearch serve                                    Start as MCP server
  sgsearch search 'repo:facebook/react useState'    One-shot search
  sgsearch search -p regexp 'func\s+main' -n 5      Regexp search, 5 results
  sgsearch --json status                            Status as JSON

Environment Variables:
  SOURCEGRAPH_URL    Sourcegraph instance (default: https://sourcegraph.com)
  SOURCEGRAPH_TOKEN  Access token (required)

For detailed command help: sgsearch <command> --help

`

// main parses global flags and dispatches to command handlers.
func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "", "Path to config file (default: ~/.sgsearch/config.yaml)")
		jsonOutput  = flag.Bool("json", false, "Output as JSON where supported")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)

	flag.CommandLine.SetInterspersed(false)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("sgsearch version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	globals := GlobalFlags{
		ConfigPath: *configPath,
		JSON:       *jsonOutput,
		NoColor:    *noColor,
		Debug:      *debug,
	}
	ui.InitColors(globals.NoColor)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "serve", "mcp":
		runServe(cmdArgs, globals)
	case "search":
		runSearch(cmdArgs, globals)
	case "status":
		runStatus(cmdArgs, globals)
	case "init":
		runInit(cmdArgs, globals)
	case "completion":
		runCompletion(cmdArgs, globals)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

// logLevel returns the effective log level for a command.
func logLevel(configured string, globals GlobalFlags) string {
	if globals.Debug {
		return "debug"
	}
	return configured
}
