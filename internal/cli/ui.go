package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // headings
	colorGreen = lipgloss.Color("35")  // pass
	colorRed   = lipgloss.Color("167") // fail
	colorDim   = lipgloss.Color("240") // secondary text
)

const (
	statusOK   = "ok"
	statusFail = "FAIL"
)

// styles renders for one output. Colours are dropped automatically when the
// writer is not a terminal, so piped and tested output stays plain.
type styles struct {
	title lipgloss.Style
	dim   lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorCyan),
		dim:   r.NewStyle().Foreground(colorDim),
		ok:    r.NewStyle().Foreground(colorGreen),
		fail:  r.NewStyle().Bold(true).Foreground(colorRed),
	}
}

// status renders a pass/fail marker.
func (s styles) status(ok bool) string {
	if ok {
		return s.ok.Render(statusOK)
	}
	return s.fail.Render(statusFail)
}
