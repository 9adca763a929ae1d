package tui

import (
	"fmt"
	"io"
)

// PrintBanner writes the tool name and version.
func PrintBanner(w io.Writer, s Style, version string) {
	fmt.Fprintln(w, s.Header("  ___ ___ ___    _           _   "))
	fmt.Fprintln(w, s.Header(" / __/ __| __|__| |_ _  _ _ _ | |__"))
	fmt.Fprintln(w, s.Label(" \\__ \\__ \\ _/ _| ' \\ || | ' \\| / /"))
	fmt.Fprintln(w, s.Label(" |___/___/___\\__|_||_\\_,_|_||_|_\\_\\"))
	fmt.Fprintf(w, " %s\n", version)
}
