package render

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/xf/pkg/errors"
)

// SizeForm selects how sizes of a kilobyte and more are printed.
type SizeForm int

const (
	// SizeDecimal prints two decimals: 1.00K.
	SizeDecimal SizeForm = iota
	// SizeInteger truncates: 1K.
	SizeInteger
)

func (f SizeForm) String() string {
	if f == SizeInteger {
		return "integer"
	}
	return "decimal"
}

// ParseSizeForm accepts "decimal" and "integer".
func ParseSizeForm(s string) (SizeForm, error) {
	switch strings.ToLower(s) {
	case "", "decimal":
		return SizeDecimal, nil
	case "integer":
		return SizeInteger, nil
	}
	return SizeDecimal, errors.Newf(errors.ErrInvalidInput, "unknown size form %q (valid: decimal, integer)", s)
}

var sizeUnits = []string{"K", "M", "G", "T", "P"}

// Humansize renders a byte count: "-" for zero, the raw number below 1024,
// otherwise the value in the largest binary unit up to P.
func Humansize(size int64, form SizeForm) string {
	if size <= 0 {
		return "-"
	}
	if size < 1024 {
		return strconv.FormatInt(size, 10)
	}

	unit := 0
	div := int64(1024)
	for unit < len(sizeUnits)-1 && size >= div*1024 {
		div *= 1024
		unit++
	}

	if form == SizeInteger {
		return strconv.FormatInt(size/div, 10) + sizeUnits[unit]
	}
	return strconv.FormatFloat(float64(size)/float64(div), 'f', 2, 64) + sizeUnits[unit]
}
