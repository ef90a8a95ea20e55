package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// PrintError writes err to w as a single "Error: ..." line, in bold red
// when color is true
func PrintError(w io.Writer, err error, color bool) {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	style := renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fmt.Fprintln(w, style.Render(fmt.Sprintf(MsgErrorFormat, err)))
}
