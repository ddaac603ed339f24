package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// UserOutput receives all user-facing status lines.
var UserOutput io.Writer = os.Stderr

var (
	renderer     = lipgloss.NewRenderer(os.Stderr)
	infoStyle    = renderer.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = renderer.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = renderer.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func userLine(style lipgloss.Style, icon, format string, args ...interface{}) {
	fmt.Fprintf(UserOutput, style.Render(icon)+" "+format+"\n", args...)
}

// UserInfo prints an info message.
func UserInfo(format string, args ...interface{}) {
	userLine(infoStyle, "ℹ", format, args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...interface{}) {
	userLine(successStyle, "✓", format, args...)
}

// UserWarning prints a warning message.
func UserWarning(format string, args ...interface{}) {
	userLine(warningStyle, "⚠", format, args...)
}

// UserError prints an error message.
func UserError(format string, args ...interface{}) {
	userLine(errorStyle, "✗", format, args...)
}
