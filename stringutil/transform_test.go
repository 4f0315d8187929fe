/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package stringutil

import (
	"testing"
)

func TestStripUniformIndentation(t *testing.T) {

	testdata := []string{`

    aaa
  aaa
      aaa

`, `
  bbb
    
    xx xx
  bbb
  bbb`, `
  ccc
ccc
    ccc
 `}

	expected := []string{`

  aaa
aaa
    aaa

`, `
bbb

  xx xx
bbb
bbb`, `
  ccc
ccc
    ccc
`}

	for i, str := range testdata {
		res := StripUniformIndentation(str)
		if res != expected[i] {
			t.Error("Unexpected result:", str,
				"result: '"+res+"' expected:", expected[i])
			return
		}
	}
}

func TestNewLineTransform(t *testing.T) {
	res := TrimBlankLines(ToUnixNewlines("\r\n  test123\r\ntest123\r\n"))
	if res != "  test123\ntest123" {
		t.Error("Unexpected result:", res)
		return
	}
}
