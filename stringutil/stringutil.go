/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package stringutil contains common functions for string operations used
by the lexer and the green-tree builder.
*/
package stringutil

import (
	"bytes"
	"crypto/md5"
	"fmt"
)

/*
RuneSliceToString converts a slice of runes into a string.
*/
func RuneSliceToString(buf []rune) string {
	var sbuf bytes.Buffer
	for _, r := range buf {
		fmt.Fprintf(&sbuf, "%c", r)
	}
	return sbuf.String()
}

/*
StringToRuneSlice converts a string into a slice of runes. Used by
LevenshteinDistance, which compares rune by rune rather than byte by byte,
so multi-byte input is never split midway.
*/
func StringToRuneSlice(s string) []rune {
	var buf []rune
	for _, r := range s {
		buf = append(buf, r)
	}
	return buf
}

/*
Plural returns the string "s" if the parameter is greater than one or equal
to zero.
*/
func Plural(l int) string {
	if l > 1 || l == 0 {
		return "s"
	}
	return ""
}

/*
IndexOf returns the index of a string in a slice of strings, or -1 if it is
not found.
*/
func IndexOf(str string, slice []string) int {
	for i, s := range slice {
		if s == str {
			return i
		}
	}
	return -1
}

/*
MD5HexString calculates the MD5 sum of a string and returns it as a hex
string. Used to key the green-tree interning cache by a canonical encoding
of a node's (kind, children) so identical subtrees are hash-consed.
*/
func MD5HexString(str string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(str)))
}

/*
LevenshteinDistance computes the Levenshtein edit distance between two
strings (e.g. "Strnig" and "String" are 2 edits apart).
*/
func LevenshteinDistance(str1, str2 string) int {
	if str1 == str2 {
		return 0
	}

	rslice1 := StringToRuneSlice(str1)
	rslice2 := StringToRuneSlice(str2)

	n, m := len(rslice1), len(rslice2)

	if n == 0 {
		return m
	} else if m == 0 {
		return n
	}

	v0 := make([]int, m+1)
	v1 := make([]int, m+1)

	for i := 0; i <= m; i++ {
		v0[i] = i
	}

	for i := 0; i < n; i++ {
		v1[0] = i + 1

		for j := 0; j < m; j++ {
			deletionCost := v0[j+1] + 1
			insertionCost := v1[j] + 1
			substitutionCost := v0[j]
			if rslice1[i] != rslice2[j] {
				substitutionCost++
			}
			v1[j+1] = min3(deletionCost, insertionCost, substitutionCost)
		}

		v0, v1 = v1, v0
	}

	return v0[m]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
