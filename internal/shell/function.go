package shell

import (
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// passthrough are the subcommands the function runs as typed. Everything
// else is a query for cd.
var passthrough = []string{"worktree", "init", "merge", "drop", "sandbox", "help", "-h", "--help"}

// Function returns the bash/zsh function that runs binary, captures its
// stdout with stderr on the terminal, and evals the result on success.
func Function(binary string) string {
	bin := shellquote.Join(binary)

	var b strings.Builder
	b.WriteString("toolkami() {\n")
	b.WriteString("  local cmd\n")
	b.WriteString("  case \"$1\" in\n")
	b.WriteString("    " + strings.Join(passthrough, "|") + ")\n")
	b.WriteString("      cmd=$(" + bin + " \"$@\" 2>/dev/tty)\n")
	b.WriteString("      ;;\n")
	b.WriteString("    *)\n")
	b.WriteString("      cmd=$(" + bin + " cd \"$@\" 2>/dev/tty)\n")
	b.WriteString("      ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("  [ $? -eq 0 ] && [ -n \"$cmd\" ] && eval \"$cmd\"\n")
	b.WriteString("}\n")
	return b.String()
}
