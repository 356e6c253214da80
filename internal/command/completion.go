// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/textdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for textdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_textdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "lines json pick completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--algorithm -a --color -c --context -C --exit-code --filter -f --numbers -n --output -o --strip-cr --titles -t"

    case "$cmd" in
        lines)
            local opts="$common --watch -w --profile --region"
            ;;
        json)
            local opts="--color -c --exit-code --ignore --path -p --profile --region"
            ;;
        pick)
            local opts="$common"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text table json yaml stats raw" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--algorithm" || "$prev" == "-a" ]]; then
        COMPREPLY=( $(compgen -W "greedy myers" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # pick takes a directory, lines and json take files
    if [[ "$cmd" == "pick" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    else
        COMPREPLY=( $(compgen -f -- "$cur") )
    fi
    return 0
}

complete -F _textdiff textdiff
`

const zshCompletionScript = `#compdef textdiff

_textdiff() {
  local -a cmds
  cmds=(
    'lines:line diff of two texts'
    'json:structural diff of two JSON or HCL documents'
    'pick:pick two files interactively and diff them'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --algorithm)'{-a,--algorithm}'[diff algorithm]:algorithm:(greedy myers)'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-C --context)'{-C,--context}'[unchanged lines around each change]:lines'
  '--exit-code[exit with status 1 when differences are found]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-n --numbers)'{-n,--numbers}'[show line numbers]'
  '(-o --output)'{-o,--output}'[output format]:format:(text table json yaml stats raw)'
  '--strip-cr[ignore trailing carriage returns]'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'textdiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    lines)
      _arguments -C \
        $common \
        '(-w --watch)'{-w,--watch}'[re-run on file changes]' \
        '--profile[AWS profile]:profile' \
        '--region[AWS region]:region' \
        '1:ORIGINAL:_files' \
        '2:MODIFIED:_files'
      ;;
    json)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--exit-code[exit with status 1 when differences are found]' \
        '--ignore[top-level keys to ignore]:keys' \
        '(-p --path)'{-p,--path}'[sub-document path]:path' \
        '--profile[AWS profile]:profile' \
        '--region[AWS region]:region' \
        '1:ORIGINAL:_files' \
        '2:MODIFIED:_files'
      ;;
    pick)
      _arguments -C \
        $common \
        '::DIR:_directories'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _textdiff textdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: textdiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "textdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
