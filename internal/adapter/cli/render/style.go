package render

import (
	"fmt"
	"io"
)

// Kind is the semantic role of a piece of output.
type Kind int

const (
	KindPlain Kind = iota
	KindHeader
	KindRow
	KindSuccess
	KindWarning
	KindError
	KindPrompt
)

const (
	ansiReset   = "\033[0m"
	clearScreen = "\033[H\033[2J"
)

var ansiCodes = map[Kind]string{
	KindHeader:  "\033[1;34m",
	KindRow:     "\033[1;33m",
	KindSuccess: "\033[1;32m",
	KindWarning: "\033[1;33m",
	KindError:   "\033[1;31m",
	KindPrompt:  "\033[1;36m",
}

// Style controls terminal formatting. The zero value prints plain text.
type Style struct {
	Color       bool
	ClearScreen bool
}

func (s Style) Paint(kind Kind, text string) string {
	code, ok := ansiCodes[kind]
	if !s.Color || !ok {
		return text
	}
	return code + text + ansiReset
}

func (s Style) Println(w io.Writer, kind Kind, text string) {
	fmt.Fprintln(w, s.Paint(kind, text))
}

func (s Style) Clear(w io.Writer) {
	if s.ClearScreen {
		fmt.Fprint(w, clearScreen)
	}
}
