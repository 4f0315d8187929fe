/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
	"golang.org/x/text/width"

	"github.com/krotik/gqlcore/source"
)

var (
	errorStyle   = &pterm.Style{pterm.FgLightRed, pterm.Bold}
	warningStyle = &pterm.Style{pterm.FgYellow}
	infoStyle    = &pterm.Style{pterm.FgCyan}
	locationStyle = &pterm.Style{pterm.FgGray}
	caretStyle   = &pterm.Style{pterm.FgLightRed, pterm.Bold}
	helpStyle    = &pterm.Style{pterm.FgGreen}
)

func styleFor(sev Severity) *pterm.Style {
	switch sev {
	case Warning:
		return warningStyle
	case Info:
		return infoStyle
	default:
		return errorStyle
	}
}

/*
underlineWidth reports the terminal display width of s, counting East
Asian Wide/Fullwidth runs as two columns so a caret underline lines up
under CJK/emoji spans instead of drifting per S8.
*/
func underlineWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	if w == 0 {
		w = 1
	}
	return w
}

/*
Render formats a single diagnostic against the given source map, in color
when ansi is true.
*/
func (d Diagnostic) Render(sm *source.SourceMap, ansi bool) string {
	var b strings.Builder

	src := sm.Get(d.File)
	line, col := sm.Resolve(d.File, d.Range.Start)

	sevText := fmt.Sprintf("%s[%s]", d.Severity, d.Kind)
	locText := fmt.Sprintf("%s:%d:%d", pathOf(src), line, col)

	if ansi {
		b.WriteString(styleFor(d.Severity).Sprint(sevText))
		b.WriteString(": ")
		b.WriteString(d.Primary)
		b.WriteString("\n  ")
		b.WriteString(locationStyle.Sprint(locText))
	} else {
		b.WriteString(sevText)
		b.WriteString(": ")
		b.WriteString(d.Primary)
		b.WriteString("\n  ")
		b.WriteString(locText)
	}

	if src != nil {
		lineText := lineTextAt(src, d.Range.Start)
		span := src.Text[clampIdx(d.Range.Start, len(src.Text)):clampIdx(maxInt(d.Range.End, d.Range.Start+1), len(src.Text))]
		caretLen := underlineWidth(span)

		b.WriteString("\n  ")
		b.WriteString(lineText)
		b.WriteString("\n  ")
		b.WriteString(strings.Repeat(" ", col-1))
		caret := strings.Repeat("^", caretLen)
		if ansi {
			b.WriteString(caretStyle.Sprint(caret))
		} else {
			b.WriteString(caret)
		}
	}

	for _, s := range d.Secondary {
		sl, sc := sm.Resolve(s.File, s.Range.Start)
		b.WriteString(fmt.Sprintf("\n  note: %s (%s:%d:%d)", s.Message, pathOf(sm.Get(s.File)), sl, sc))
	}

	if d.Help != nil {
		if ansi {
			b.WriteString("\n  " + helpStyle.Sprint("help: "+*d.Help))
		} else {
			b.WriteString("\n  help: " + *d.Help)
		}
	}

	return b.String()
}

/*
RenderPlain renders without any ANSI escapes, stable for golden-file tests.
*/
func (d Diagnostic) RenderPlain(sm *source.SourceMap) string {
	return d.Render(sm, false)
}

/*
RenderTo writes every diagnostic in order to w, auto-detecting ANSI support
via golang.org/x/term.IsTerminal when w is a file descriptor, otherwise
falling back to plain text.
*/
func RenderTo(w io.Writer, diags []Diagnostic, sm *source.SourceMap) {
	ansi := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		ansi = term.IsTerminal(int(f.Fd()))
	}
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, d.Render(sm, ansi))
	}
}

type jsonLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonLabel struct {
	File    string       `json:"file"`
	Start   jsonLocation `json:"start"`
	End     jsonLocation `json:"end"`
	Message string       `json:"message"`
}

type jsonDiagnostic struct {
	Severity  string      `json:"severity"`
	Kind      string      `json:"kind"`
	File      string      `json:"file"`
	Start     jsonLocation `json:"start"`
	End       jsonLocation `json:"end"`
	Primary   string      `json:"primary"`
	Secondary []jsonLabel `json:"secondary,omitempty"`
	Help      *string     `json:"help,omitempty"`
}

/*
MarshalJSON renders the full diagnostic list as a stable-key-order JSON
array with 1-based {line,column} locations, for machine consumers.
*/
func MarshalJSON(diags []Diagnostic, sm *source.SourceMap) ([]byte, error) {
	out := make([]jsonDiagnostic, len(diags))
	for i, d := range diags {
		sl, sc := sm.Resolve(d.File, d.Range.Start)
		el, ec := sm.Resolve(d.File, d.Range.End)

		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Kind:     string(d.Kind),
			File:     pathOf(sm.Get(d.File)),
			Start:    jsonLocation{Line: sl, Column: sc},
			End:      jsonLocation{Line: el, Column: ec},
			Primary:  d.Primary,
			Help:     d.Help,
		}
		for _, s := range d.Secondary {
			ssl, ssc := sm.Resolve(s.File, s.Range.Start)
			sel, sec := sm.Resolve(s.File, s.Range.End)
			jd.Secondary = append(jd.Secondary, jsonLabel{
				File:    pathOf(sm.Get(s.File)),
				Start:   jsonLocation{Line: ssl, Column: ssc},
				End:     jsonLocation{Line: sel, Column: sec},
				Message: s.Message,
			})
		}
		out[i] = jd
	}
	return json.Marshal(out)
}

func pathOf(src *source.Source) string {
	if src == nil {
		return "<unknown>"
	}
	return src.Path
}

func lineTextAt(src *source.Source, offset int) string {
	line, _ := src.Resolve(offset)
	lines := strings.Split(strings.ReplaceAll(src.Text, "\r\n", "\n"), "\n")
	if line-1 < 0 || line-1 >= len(lines) {
		return ""
	}
	return lines[line-1]
}

func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
