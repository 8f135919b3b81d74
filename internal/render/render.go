// internal/render/render.go
//
// Terminal rendering of scored rows.
// Each tile is a three-line box:
//
//	┌───┐
//	│ A │
//	└───┘
//
// With color on, the whole box takes the verdict's background
// (correct=green, present=yellow, absent=gray). With color off the letter
// line carries the verdict instead: [A] correct, (A) present, " A " absent.

package render

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

const (
	tileTop    = "┌───┐"
	tileBottom = "└───┘"
	tileGap    = "  "
)

// Renderer turns scored rows into text. It holds no per-row state, so the
// same row always renders to the same string.
type Renderer struct {
	color  bool
	styles map[game.Verdict]*color.Color
}

// New returns a Renderer. colorOn selects ANSI backgrounds over plain markers.
func New(colorOn bool) *Renderer {
	styles := map[game.Verdict]*color.Color{
		game.Correct: color.New(color.BgGreen, color.FgBlack),
		game.Present: color.New(color.BgYellow, color.FgBlack),
		game.Absent:  color.New(color.BgHiBlack, color.FgWhite),
	}
	// Decided by the caller, not by fatih/color's own stdout probe.
	for _, c := range styles {
		if colorOn {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Renderer{color: colorOn, styles: styles}
}

// Row renders one scored row as three newline-terminated lines.
func (r *Renderer) Row(row game.ScoredRow) string {
	var top, mid, bottom strings.Builder
	for i, t := range row {
		if i > 0 {
			top.WriteString(tileGap)
			mid.WriteString(tileGap)
			bottom.WriteString(tileGap)
		}
		top.WriteString(r.paint(t.Verdict, tileTop))
		mid.WriteString(r.paint(t.Verdict, r.letterCell(t)))
		bottom.WriteString(r.paint(t.Verdict, tileBottom))
	}
	return top.String() + "\n" + mid.String() + "\n" + bottom.String() + "\n"
}

// WriteRow writes Row(row) to w.
func (r *Renderer) WriteRow(w io.Writer, row game.ScoredRow) error {
	_, err := io.WriteString(w, r.Row(row))
	return err
}

func (r *Renderer) letterCell(t game.Tile) string {
	l := string(t.Letter)
	if r.color {
		return "│ " + l + " │"
	}
	switch t.Verdict {
	case game.Correct:
		return "│[" + l + "]│"
	case game.Present:
		return "│(" + l + ")│"
	default:
		return "│ " + l + " │"
	}
}

func (r *Renderer) paint(v game.Verdict, s string) string {
	return r.styles[v].Sprint(s)
}
