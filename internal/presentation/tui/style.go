package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style colors report labels. The zero value is Plain.
type Style struct {
	profile termenv.Profile
	color   bool
}

// Plain returns a style that leaves text untouched.
func Plain() Style {
	return Style{profile: termenv.Ascii}
}

// NewStyle picks colors only when w is a terminal, so piped output stays byte-exact.
func NewStyle(w io.Writer) Style {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Plain()
	}
	p := termenv.ColorProfile()
	return Style{profile: p, color: p != termenv.Ascii}
}

// Header styles a section title such as "=== Original text ===".
func (s Style) Header(text string) string {
	return s.styled(text, "#a78bfa", true)
}

// Label styles a per-line prefix such as "Chunk 0:".
func (s Style) Label(text string) string {
	return s.styled(text, "#f472b6", false)
}

func (s Style) styled(text, hex string, bold bool) string {
	if !s.color {
		return text
	}
	st := s.profile.String(text).Foreground(s.profile.Color(hex))
	if bold {
		st = st.Bold()
	}
	return st.String()
}
