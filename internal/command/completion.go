package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nealio82/async-aws/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for awsgen
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_awsgen()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "generate list validate diff completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}

    case "$cmd" in
        generate)
            local opts="--check --manifest -m --output -o --service -s"
            ;;
        list)
            local opts="--manifest -m --service -s"
            ;;
        validate)
            local opts="--paginators -p"
            ;;
        diff)
            local opts="--raw"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    if [[ "$prev" == "--manifest" || "$prev" == "-m" || "$prev" == "--paginators" || "$prev" == "-p" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # validate and diff take definition files as positionals
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _awsgen awsgen
`

const zshCompletionScript = `#compdef awsgen

_awsgen() {
  local -a cmds
  cmds=(
    'generate:generate service clients from the manifest'
    'list:list manifest services or operations'
    'validate:load and check a definition'
    'diff:compare two definition documents'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'awsgen commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    generate)
      _arguments -C \
        '--check[report drift instead of writing files]' \
        '(-m --manifest)'{-m,--manifest}'[generation manifest file]:manifest:_files' \
        '(-o --output)'{-o,--output}'[output root for generated packages]:dir:_directories' \
        '(-s --service)'{-s,--service}'[restrict to a single manifest service]:service'
      ;;
    list)
      _arguments -C \
        '(-m --manifest)'{-m,--manifest}'[generation manifest file]:manifest:_files' \
        '(-s --service)'{-s,--service}'[restrict to a single manifest service]:service'
      ;;
    validate)
      _arguments -C \
        '(-p --paginators)'{-p,--paginators}'[paginators document]:paginators:_files' \
        '1:definition:_files'
      ;;
    diff)
      _arguments -C \
        '--raw[emit the full structural delta]' \
        '1:old definition:_files' \
        '2:new definition:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _awsgen awsgen
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: awsgen completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "awsgen completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
