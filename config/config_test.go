/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package config

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.Parser.TokenLimit != DefaultTokenLimit {
		t.Errorf("TokenLimit = %d, want %d", o.Parser.TokenLimit, DefaultTokenLimit)
	}
	if o.Parser.RecursionLimit != DefaultRecursionLimit {
		t.Errorf("RecursionLimit = %d, want %d", o.Parser.RecursionLimit, DefaultRecursionLimit)
	}
	if !o.Validation.IntrospectionDepthLimit {
		t.Error("IntrospectionDepthLimit should default to true")
	}
}

func TestLoadOptionsEmptyYieldsDefaults(t *testing.T) {
	o, err := LoadOptions([]byte(``))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Parser.TokenLimit != DefaultTokenLimit {
		t.Errorf("expected default TokenLimit, got %d", o.Parser.TokenLimit)
	}
}

func TestLoadOptionsPartialOverride(t *testing.T) {
	data := []byte("parser:\n  tokenLimit: 42\n")
	o, err := LoadOptions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Parser.TokenLimit != 42 {
		t.Errorf("TokenLimit = %d, want 42", o.Parser.TokenLimit)
	}
	if o.Parser.RecursionLimit != DefaultRecursionLimit {
		t.Errorf("RecursionLimit should still default, got %d", o.Parser.RecursionLimit)
	}
	if !o.Validation.IntrospectionDepthLimit {
		t.Error("IntrospectionDepthLimit should still default to true")
	}
}

func TestOptionsDumpRoundTrips(t *testing.T) {
	o := DefaultOptions()
	o.Parser.TokenLimit = 7
	data, err := o.Dump()
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	reloaded, err := LoadOptions(data)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if reloaded.Parser.TokenLimit != 7 {
		t.Errorf("reloaded TokenLimit = %d, want 7", reloaded.Parser.TokenLimit)
	}
}

func TestDisableIntrospectionDepthLimit(t *testing.T) {
	data := []byte("validation:\n  introspectionDepthLimit: false\n")
	o, err := LoadOptions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Validation.IntrospectionDepthLimit {
		t.Error("expected IntrospectionDepthLimit to be overridden to false")
	}
}
