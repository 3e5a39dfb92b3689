package cli

import (
	"fmt"
	"io"
	"strings"
)

// Shells lists the shells GenerateCompletion supports.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenerateCompletion writes a shell completion script for vieta.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - engines: Names of the available product engines.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, engines []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, engines)
	case "zsh":
		return generateZshCompletion(out, engines)
	case "fish":
		return generateFishCompletion(out, engines)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, engines)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(Shells, ", "))
	}
}

func generateBashCompletion(out io.Writer, engines []string) error {
	script := `# Bash completion script for vieta
# Add this to your ~/.bashrc or ~/.bash_completion

_vieta_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="--help -h --version --input -i --format --engine --json --quiet -q --output -o --no-color --log-level --completion"

    case "${prev}" in
        --engine)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "auto json yaml" -- "${cur}") )
            return 0
            ;;
        --log-level)
            COMPREPLY=( $(compgen -W "debug info warn error" -- "${cur}") )
            return 0
            ;;
        --completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "${cur}") )
            return 0
            ;;
        --input|-i|--output|-o)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
    COMPREPLY=( $(compgen -f -- "${cur}") )
}

complete -F _vieta_completions vieta
`
	_, err := fmt.Fprintf(out, script, strings.Join(engines, " "))
	return err
}

func generateZshCompletion(out io.Writer, engines []string) error {
	script := `#compdef vieta

# Zsh completion script for vieta
# Add this to your ~/.zshrc or place in $fpath

_vieta() {
    local -a engines
    engines=(%s)

    _arguments -s \
        '(-h --help)'{-h,--help}'[Show help message]' \
        '--version[Show version information]' \
        '(-i --input)'{-i,--input}'[Input document]:file:_files' \
        '--format[Input format]:format:(auto json yaml)' \
        '--engine[Product engine]:engine:($engines)' \
        '--json[Output a JSON report]' \
        '(-q --quiet)'{-q,--quiet}'[Print only the constant term]' \
        '(-o --output)'{-o,--output}'[Also write the report to a file]:file:_files' \
        '--no-color[Disable colored output]' \
        '--log-level[Diagnostic log level]:level:(debug info warn error)' \
        '--completion[Generate completion script]:shell:(bash zsh fish powershell)' \
        '*:input file:_files'
}

_vieta "$@"
`
	_, err := fmt.Fprintf(out, script, strings.Join(engines, " "))
	return err
}

func generateFishCompletion(out io.Writer, engines []string) error {
	script := `# Fish completion script for vieta
# Add this to ~/.config/fish/completions/vieta.fish

complete -c vieta -s h -l help -d 'Show help message'
complete -c vieta -l version -d 'Show version information'

complete -c vieta -s i -l input -d 'Input document' -rF
complete -c vieta -l format -d 'Input format' -xa 'auto json yaml'
complete -c vieta -l engine -d 'Product engine' -xa '%s'

complete -c vieta -l json -d 'Output a JSON report'
complete -c vieta -s q -l quiet -d 'Print only the constant term'
complete -c vieta -s o -l output -d 'Also write the report to a file' -rF
complete -c vieta -l no-color -d 'Disable colored output'
complete -c vieta -l log-level -d 'Diagnostic log level' -xa 'debug info warn error'
complete -c vieta -l completion -d 'Generate completion script' -xa 'bash zsh fish powershell'
`
	_, err := fmt.Fprintf(out, script, strings.Join(engines, " "))
	return err
}

func generatePowerShellCompletion(out io.Writer, engines []string) error {
	script := `# PowerShell completion script for vieta
# Add this to your $PROFILE

$vietaEngines = @(%s)

Register-ArgumentCompleter -CommandName 'vieta' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
        @{Name = '--help'; Description = 'Show help message' }
        @{Name = '--version'; Description = 'Show version information' }
        @{Name = '--input'; Description = 'Input document' }
        @{Name = '--format'; Description = 'Input format' }
        @{Name = '--engine'; Description = 'Product engine' }
        @{Name = '--json'; Description = 'Output a JSON report' }
        @{Name = '--quiet'; Description = 'Print only the constant term' }
        @{Name = '--output'; Description = 'Also write the report to a file' }
        @{Name = '--no-color'; Description = 'Disable colored output' }
        @{Name = '--log-level'; Description = 'Diagnostic log level' }
        @{Name = '--completion'; Description = 'Generate completion script' }
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    $values = switch ($prevElement) {
        '--engine' { $vietaEngines }
        '--format' { @('auto', 'json', 'yaml') }
        '--log-level' { @('debug', 'info', 'warn', 'error') }
        '--completion' { @('bash', 'zsh', 'fish', 'powershell') }
        default { $null }
    }
    if ($values) {
        $values | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`
	quoted := make([]string, len(engines))
	for i, e := range engines {
		quoted[i] = "'" + e + "'"
	}
	_, err := fmt.Fprintf(out, script, strings.Join(quoted, ", "))
	return err
}
