package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidWidth is returned by ParseWidth for declarations that are not a
// pixel count, a percentage, or empty.
var ErrInvalidWidth = errors.New("invalid width")

// ParseWidth parses a column width declaration.
//
//	""      -> Auto()
//	"auto"  -> Auto()
//	"120"   -> Pixels(120)
//	"120px" -> Pixels(120)
//	"12.7px"-> Pixels(12) (fractions are dropped)
//	"25%"   -> Percent(25)
//
// Anything else returns Auto() together with an error wrapping ErrInvalidWidth.
func ParseWidth(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto(), nil
	}

	if num, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil || p < 0 {
			return Auto(), fmt.Errorf("%w: %q", ErrInvalidWidth, s)
		}
		return Percent(p), nil
	}

	num, _ := strings.CutSuffix(s, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || f < 0 {
		return Auto(), fmt.Errorf("%w: %q", ErrInvalidWidth, s)
	}
	return Pixels(int(f)), nil
}

// ParseWidthOrAuto is like ParseWidth but drops the error.
func ParseWidthOrAuto(s string) Value {
	v, _ := ParseWidth(s)
	return v
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
