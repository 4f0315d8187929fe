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
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/krotik/gqlcore/source"
)

func TestBlockingSeverities(t *testing.T) {
	cases := []struct {
		sev  Severity
		want bool
	}{
		{Info, false},
		{Warning, false},
		{Error, true},
		{Fatal, true},
	}
	for _, tc := range cases {
		d := Diagnostic{Severity: tc.sev}
		if got := d.Blocking(); got != tc.want {
			t.Errorf("Severity(%v).Blocking() = %v, want %v", tc.sev, got, tc.want)
		}
	}
}

func TestWithHelp(t *testing.T) {
	d := Diagnostic{Primary: "oops"}
	d2 := d.WithHelp("did you mean x?")
	if d.Help != nil {
		t.Error("WithHelp should not mutate the receiver")
	}
	if d2.Help == nil || *d2.Help != "did you mean x?" {
		t.Errorf("unexpected Help: %v", d2.Help)
	}
}

func TestCollectorAccumulatesInOrder(t *testing.T) {
	c := NewCollector()
	c.Report(Diagnostic{Kind: "A", Range: ByteRange{Start: 1, End: 2}})
	c.Report(Diagnostic{Kind: "B", Range: ByteRange{Start: 3, End: 4}})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	want := []Diagnostic{
		{Kind: "A", Range: ByteRange{Start: 1, End: 2}},
		{Kind: "B", Range: ByteRange{Start: 3, End: 4}},
	}
	if diff := cmp.Diff(want, c.Diagnostics()); diff != "" {
		t.Errorf("Diagnostics() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectorHasBlocking(t *testing.T) {
	c := NewCollector()
	c.Report(Diagnostic{Severity: Warning})
	if c.HasBlocking() {
		t.Error("a Warning-only collector should not be blocking")
	}
	c.Report(Diagnostic{Severity: Error})
	if !c.HasBlocking() {
		t.Error("expected HasBlocking after an Error diagnostic")
	}
}

func TestCollectorWithLoggerTraces(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := NewCollectorWithLogger(logger)

	c.Report(Diagnostic{Kind: "UndefinedField", Severity: Error, Primary: "boom"})

	if !strings.Contains(buf.String(), "UndefinedField") {
		t.Errorf("expected traced log line to mention the kind, got %q", buf.String())
	}
}

func TestRenderToAndMarshalJSONDoNotPanic(t *testing.T) {
	sm := source.NewSourceMap()
	file := sm.AddFile("t.graphql", "type Query { 中文類型 }")
	diags := []Diagnostic{
		{File: file, Range: ByteRange{Start: 13, End: 19}, Severity: Error, Kind: "UnknownCharacter", Primary: "unexpected character run"},
	}

	var buf bytes.Buffer
	RenderTo(&buf, diags, sm)
	if buf.Len() == 0 {
		t.Error("expected non-empty rendered output")
	}

	out, err := MarshalJSON(diags, sm)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if !strings.Contains(string(out), "UnknownCharacter") {
		t.Errorf("expected JSON to mention the kind, got %s", out)
	}
}
