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
	"log/slog"

	"github.com/krotik/gqlcore/source"
)

/*
ByteRange is a half-open [Start,End) byte span into the Source named by a
Diagnostic's File.
*/
type ByteRange struct {
	Start int
	End   int
}

/*
Label attaches a short message to a secondary span, e.g. "first defined
here" pointing back at an earlier conflicting definition.
*/
type Label struct {
	File    source.FileId
	Range   ByteRange
	Message string
}

/*
Diagnostic is one structured finding from lexing, parsing or validation.
Primary carries the message for the main span (File/Range); Secondary
carries zero or more related spans (e.g. the other half of a duplicate-
definition conflict); Help, if non-nil, is a suggestion string ("did you
mean ...?").
*/
type Diagnostic struct {
	File      source.FileId
	Range     ByteRange
	Severity  Severity
	Kind      Kind
	Primary   string
	Secondary []Label
	Help      *string
}

/*
WithHelp returns a copy of d with Help set, for the common case of a
did-you-mean suggestion attached after the fact.
*/
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = &help
	return d
}

/*
Blocking reports whether this diagnostic's severity should prevent a
Valid[T] from being constructed.
*/
func (d Diagnostic) Blocking() bool {
	return d.Severity == Error || d.Severity == Fatal
}

/*
Collector accumulates diagnostics in the order they are reported ("source
order within a parse, definition order within a validation pass"); it never
reorders or deduplicates, leaving that to renderers/tests that want it.
*/
type Collector struct {
	diags  []Diagnostic
	logger *slog.Logger
}

/*
NewCollector creates an empty Collector.
*/
func NewCollector() *Collector {
	return &Collector{}
}

/*
NewCollectorWithLogger creates an empty Collector that also traces every
reported diagnostic through logger at debug level, for hosts that want
parser/validator tracing (internal/obslog builds logger).
*/
func NewCollectorWithLogger(logger *slog.Logger) *Collector {
	return &Collector{logger: logger}
}

/*
Report appends a diagnostic.
*/
func (c *Collector) Report(d Diagnostic) {
	c.diags = append(c.diags, d)
	if c.logger != nil {
		c.logger.Debug("diagnostic reported",
			"kind", string(d.Kind),
			"severity", d.Severity.String(),
			"file", d.File,
			"offset", d.Range.Start,
			"message", d.Primary,
		)
	}
}

/*
Diagnostics returns every diagnostic reported so far, in report order. The
returned slice is owned by the caller and safe to retain.
*/
func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

/*
HasBlocking reports whether any collected diagnostic is Error or Fatal
severity — the condition that prevents constructing a Valid[T].
*/
func (c *Collector) HasBlocking() bool {
	for _, d := range c.diags {
		if d.Blocking() {
			return true
		}
	}
	return false
}

/*
Len returns the number of collected diagnostics.
*/
func (c *Collector) Len() int {
	return len(c.diags)
}
