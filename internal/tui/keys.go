package tui

import "fmt"

// KeyKind classifies one decoded keystroke.
type KeyKind int

const (
	KeyIgnored KeyKind = iota
	KeyEnter
	KeyUp
	KeyDown
	KeyBackspace
	KeyEscape
	KeyCtrlC
	KeyCtrlP
	KeyCtrlN
	KeyPrintable
)

var keyNames = map[KeyKind]string{
	KeyIgnored:   "ignored",
	KeyEnter:     "enter",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlP:     "ctrl+p",
	KeyCtrlN:     "ctrl+n",
	KeyPrintable: "printable",
}

func (k KeyKind) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// Key is a logical key event. Char is set only for KeyPrintable.
type Key struct {
	Kind KeyKind
	Char byte
}

func (k Key) String() string {
	if k.Kind == KeyPrintable {
		return string(k.Char)
	}
	return k.Kind.String()
}

// IsUp reports whether the key moves the cursor up.
func (k Key) IsUp() bool {
	return k.Kind == KeyUp || k.Kind == KeyCtrlP
}

// IsDown reports whether the key moves the cursor down.
func (k Key) IsDown() bool {
	return k.Kind == KeyDown || k.Kind == KeyCtrlN
}

// IsCancel reports whether the key aborts the interaction.
func (k Key) IsCancel() bool {
	return k.Kind == KeyEscape || k.Kind == KeyCtrlC
}

const (
	byteCtrlC = 0x03
	byteCtrlN = 0x0e
	byteCtrlP = 0x10
	byteCR    = 0x0d
	byteEsc   = 0x1b
	byteDEL   = 0x7f
)

var escapeSequences = map[string]KeyKind{
	"\x1b[A": KeyUp,
	"\x1b[B": KeyDown,
	"\x1bOA": KeyUp,
	"\x1bOB": KeyDown,
}

// DecodeKey classifies the bytes read for one keystroke. seq starts with the
// first byte read; for ESC it also holds whatever continuation bytes were
// immediately available.
func DecodeKey(seq []byte) Key {
	if len(seq) == 0 {
		return Key{Kind: KeyIgnored}
	}

	b := seq[0]
	if b == byteEsc {
		if kind, ok := escapeSequences[string(seq)]; ok {
			return Key{Kind: kind}
		}
		return Key{Kind: KeyEscape}
	}

	switch b {
	case byteCR:
		return Key{Kind: KeyEnter}
	case byteDEL:
		return Key{Kind: KeyBackspace}
	case byteCtrlC:
		return Key{Kind: KeyCtrlC}
	case byteCtrlP:
		return Key{Kind: KeyCtrlP}
	case byteCtrlN:
		return Key{Kind: KeyCtrlN}
	}

	if isSearchChar(b) {
		return Key{Kind: KeyPrintable, Char: b}
	}
	return Key{Kind: KeyIgnored}
}

// isSearchChar matches [A-Za-z0-9\-_. ].
func isSearchChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '_', b == '.', b == ' ':
		return true
	}
	return false
}
