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
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sgsearch/internal/errors"
)

const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for sgsearch
# Installation:
#   source <(sgsearch completion bash)
#   Or add to ~/.bashrc:
#   echo 'source <(sgsearch completion bash)' >> ~/.bashrc

_sgsearch_completion() {
    local cur prev commands
    commands="serve search status init completion"

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    if [ $COMP_CWORD -eq 1 ] || [[ ${COMP_WORDS[1]} == -* && ${cur} == -* ]]; then
        if [[ ${cur} == -* ]] ; then
            COMPREPLY=( $(compgen -W "--version --config --json --no-color --debug" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        fi
        return 0
    fi

    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        serve)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--metrics-addr" -- ${cur}) )
            fi
            ;;
        search)
            if [[ ${prev} == "--pattern-type" || ${prev} == "-p" ]] ; then
                COMPREPLY=( $(compgen -W "keyword regexp" -- ${cur}) )
            elif [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--pattern-type --count --timeout --json" -- ${cur}) )
            fi
            ;;
        status)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --timeout" -- ${cur}) )
            fi
            ;;
        init)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--force --yes --url --token --metrics-addr --log-level" -- ${cur}) )
            fi
            ;;
        completion)
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
}

complete -F _sgsearch_completion sgsearch
`

const zshCompletionTemplate = `#compdef sgsearch

# Zsh completion script for sgsearch
# Installation:
#   sgsearch completion zsh > "${fpath[1]}/_sgsearch"
#   rm -f ~/.zcompdump; compinit

_sgsearch() {
    local -a commands
    commands=(
        'serve:Start the MCP server (JSON-RPC over stdio)'
        'search:Run one search and print the report'
        'status:Show configuration and check the connection'
        'init:Create the config file'
        'completion:Generate shell completion script'
    )

    _arguments -C \
        '(- *)--version[Show version and exit]' \
        '--config[Path to config file]:config file:_files -g "*.yaml"' \
        '--json[Output as JSON where supported]' \
        '--no-color[Disable colored output]' \
        '--debug[Enable debug logging]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                serve)
                    _arguments \
                        '--metrics-addr[Prometheus metrics address]:address:'
                    ;;
                search)
                    _arguments \
                        '(-p --pattern-type)'{-p,--pattern-type}'[Pattern type]:type:(keyword regexp)' \
                        '(-n --count)'{-n,--count}'[Maximum number of results]:count:' \
                        '(-t --timeout)'{-t,--timeout}'[Timeout in seconds]:seconds:' \
                        '--json[Print the raw result set as JSON]' \
                        '*:query:'
                    ;;
                status)
                    _arguments \
                        '--json[Output as JSON]' \
                        '--timeout[Timeout for the connectivity check]:duration:'
                    ;;
                init)
                    _arguments \
                        '--force[Overwrite existing configuration]' \
                        '(-y --yes)'{-y,--yes}'[Non-interactive mode]' \
                        '--url[Sourcegraph URL]:url:' \
                        '--token[Access token]:token:' \
                        '--metrics-addr[Prometheus metrics address]:address:' \
                        '--log-level[Log level]:level:(debug info warn error)'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_sgsearch
`

const fishCompletionTemplate = `# Fish completion script for sgsearch
# Installation:
#   sgsearch completion fish | source
#   sgsearch completion fish > ~/.config/fish/completions/sgsearch.fish

# Commands
complete -c sgsearch -f -n "__fish_use_subcommand" -a "serve" -d "Start the MCP server (JSON-RPC over stdio)"
complete -c sgsearch -f -n "__fish_use_subcommand" -a "search" -d "Run one search and print the report"
complete -c sgsearch -f -n "__fish_use_subcommand" -a "status" -d "Show configuration and check the connection"
complete -c sgsearch -f -n "__fish_use_subcommand" -a "init" -d "Create the config file"
complete -c sgsearch -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# Global flags
complete -c sgsearch -n "__fish_use_subcommand" -l version -d "Show version and exit"
complete -c sgsearch -n "__fish_use_subcommand" -l config -d "Path to config file" -r
complete -c sgsearch -n "__fish_use_subcommand" -l json -d "Output as JSON where supported"
complete -c sgsearch -n "__fish_use_subcommand" -l no-color -d "Disable colored output"
complete -c sgsearch -n "__fish_use_subcommand" -l debug -d "Enable debug logging"

# serve
complete -c sgsearch -n "__fish_seen_subcommand_from serve" -l metrics-addr -d "Prometheus metrics address" -r

# search
complete -c sgsearch -n "__fish_seen_subcommand_from search" -s p -l pattern-type -d "Pattern type" -x -a "keyword regexp"
complete -c sgsearch -n "__fish_seen_subcommand_from search" -s n -l count -d "Maximum number of results" -r
complete -c sgsearch -n "__fish_seen_subcommand_from search" -s t -l timeout -d "Timeout in seconds" -r
complete -c sgsearch -n "__fish_seen_subcommand_from search" -l json -d "Print the raw result set as JSON"

# status
complete -c sgsearch -n "__fish_seen_subcommand_from status" -l json -d "Output as JSON"
complete -c sgsearch -n "__fish_seen_subcommand_from status" -l timeout -d "Timeout for the connectivity check" -r

# init
complete -c sgsearch -n "__fish_seen_subcommand_from init" -l force -d "Overwrite existing configuration"
complete -c sgsearch -n "__fish_seen_subcommand_from init" -s y -l yes -d "Non-interactive mode"
complete -c sgsearch -n "__fish_seen_subcommand_from init" -l url -d "Sourcegraph URL" -r
complete -c sgsearch -n "__fish_seen_subcommand_from init" -l token -d "Access token" -r
complete -c sgsearch -n "__fish_seen_subcommand_from init" -l metrics-addr -d "Prometheus metrics address" -r
complete -c sgsearch -n "__fish_seen_subcommand_from init" -l log-level -d "Log level" -x -a "debug info warn error"

# completion
complete -c sgsearch -n "__fish_seen_subcommand_from completion" -f -a "bash zsh fish"
`

// runCompletion prints the completion script for the requested shell.
//
// Usage:
//
//	sgsearch completion [bash|zsh|fish]
func runCompletion(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sgsearch completion <shell>

Generate shell completion scripts for bash, zsh, or fish.

Examples:
  source <(sgsearch completion bash)
  sgsearch completion zsh > "${fpath[1]}/_sgsearch"
  sgsearch completion fish > ~/.config/fish/completions/sgsearch.fish

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'sgsearch completion bash', 'sgsearch completion zsh', or 'sgsearch completion fish'",
		), globals.JSON)
	}

	if err := writeCompletion(os.Stdout, fs.Arg(0)); err != nil {
		errors.FatalError(err, globals.JSON)
	}
}

// writeCompletion writes the script for shell to w.
func writeCompletion(w io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletionTemplate
	case "zsh":
		script = zshCompletionTemplate
	case "fish":
		script = fishCompletionTemplate
	default:
		return errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("Shell '%s' is not supported. Valid options: bash, zsh, fish", shell),
			"Run 'sgsearch completion bash', 'sgsearch completion zsh', or 'sgsearch completion fish'",
		)
	}
	_, err := io.WriteString(w, script)
	return err
}
