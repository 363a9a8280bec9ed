package sorting

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/xf/pkg/entry"
)

type natural struct{}

// Natural orders names so that runs of ASCII digits compare as numbers:
// "_1" < "_2" < "_12". Names that compare equal this way (like "a01" and
// "a1") fall back to a byte-wise comparison.
func Natural() Strategy { return natural{} }

func (natural) Compare(a, b entry.Entry) int {
	return CompareNatural(a.Name(), b.Name())
}

// CompareNatural is the Natural order on two strings.
func CompareNatural(a, b string) int {
	if c := compareNaturalOnly(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareNaturalOnly(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ei, ej := digitRunEnd(a, i), digitRunEnd(b, j)
			if c := compareDigits(a[i:ei], b[j:ej]); c != 0 {
				return c
			}
			i, j = ei, ej
			continue
		}
		ra, sa := utf8.DecodeRuneInString(a[i:])
		rb, sb := utf8.DecodeRuneInString(b[j:])
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		i += sa
		j += sb
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func digitRunEnd(s string, start int) int {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return end
}

// compareDigits compares two digit runs as non-negative integers of any
// length.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
