package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// CompletionShells lists the shells GenerateCompletion supports.
var CompletionShells = []string{"bash", "zsh", "fish", "powershell"}

// flagCompletion describes how the shell completes one flag's value.
type flagCompletion struct {
	name   string
	values []string // fixed suggestions
	dir    bool     // complete directory names
	file   bool     // complete file names
}

var flagCompletions = []flagCompletion{
	{name: "experiments-folder", dir: true},
	{name: "baseline-folder", dir: true},
	{name: "metrics-file", file: true},
	{name: "log-level", values: []string{"trace", "debug", "info", "warn", "error"}},
	{name: "log-format", values: []string{"console", "json"}},
	{name: "completion", values: CompletionShells},
}

// RegisterFlagCompletions attaches value completion to the flags of cmd.
// Flags that cmd does not define are skipped.
func RegisterFlagCompletions(cmd *cobra.Command) error {
	for _, fc := range flagCompletions {
		if cmd.Flags().Lookup(fc.name) == nil {
			continue
		}
		var err error
		switch {
		case fc.dir:
			err = cmd.MarkFlagDirname(fc.name)
		case fc.file:
			err = cmd.MarkFlagFilename(fc.name)
		default:
			values := fc.values
			err = cmd.RegisterFlagCompletionFunc(fc.name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
				return values, cobra.ShellCompDirectiveNoFileComp
			})
		}
		if err != nil {
			return fmt.Errorf("register completion for --%s: %w", fc.name, err)
		}
	}
	return nil
}

// GenerateCompletion writes the completion script of cmd for shell to out.
func GenerateCompletion(cmd *cobra.Command, out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return cmd.GenBashCompletionV2(out, true)
	case "zsh":
		return cmd.GenZshCompletion(out)
	case "fish":
		return cmd.GenFishCompletion(out, true)
	case "powershell":
		return cmd.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", shell)
	}
}
