package tui

import (
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

// Style markers understood by ExpandTokens.
const (
	TokenText      = "{text}"
	TokenDim       = "{dim}"
	TokenHighlight = "{highlight}"
	TokenReset     = "{reset}"
)

var tokenMap = map[string]string{
	TokenText:      ansi.Style{}.ForegroundColor(nil).String(),
	TokenDim:       ansi.Style{}.ForegroundColor(ansi.BrightBlack).String(),
	TokenHighlight: ansi.Style{}.Bold().ForegroundColor(ansi.Yellow).String(),
	TokenReset:     ansi.ResetStyle,
}

// tokenPattern matches the shortest {...} span, so "{a}x{b}" is two markers.
var tokenPattern = regexp.MustCompile(`\{.*?\}`)

// ExpandTokens replaces style markers with their escape sequences. Any
// {...} span that is not a known marker expands to nothing.
func ExpandTokens(s string) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(m string) string {
		return tokenMap[m]
	})
}

// StripTokens removes every {...} span.
func StripTokens(s string) string {
	return tokenPattern.ReplaceAllString(s, "")
}
