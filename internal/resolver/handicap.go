package resolver

import (
	"math"
	"strconv"
	"strings"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

// NormalizeHandicap parses a raw Asian-Handicap cell value into a numeric
// line and its canonical decimal string.
//
// Split lines ("0/0.5", "-0.5/1") average the two parts; a leading minus on
// the first part (including the literal "-0") carries onto an unsigned second
// part, so "-0/0.5" is read as the pair {-0, -0.5}. Plain values parse as a
// single float. The canonical string snaps to the quarter grid: integers
// format with no decimals, half lines with one, quarter lines with two.
//
// The function is total: it never panics, and any unparseable input yields
// (0, "-", false).
func NormalizeHandicap(raw string) (value float64, canonical string, ok bool) {
	s := strings.TrimSpace(raw)
	switch s {
	case "", models.NoValue, "?":
		return 0, models.NoValue, false
	}

	if strings.Contains(s, "/") {
		parts := strings.SplitN(s, "/", 2)
		first := strings.TrimSpace(parts[0])
		second := strings.TrimSpace(parts[1])
		a, errA := strconv.ParseFloat(first, 64)
		b, errB := strconv.ParseFloat(second, 64)
		if errA != nil || errB != nil {
			return 0, models.NoValue, false
		}
		// "-0" parses to a negative zero, so check the text as well.
		firstNegative := a < 0 || strings.HasPrefix(first, "-")
		secondUnsigned := !strings.HasPrefix(second, "-") && !strings.HasPrefix(second, "+")
		if firstNegative && secondUnsigned {
			b = -b
		}
		value = (a + b) / 2
	} else {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, models.NoValue, false
		}
		value = v
	}

	return value, formatLine(snapQuarter(value)), true
}

// snapQuarter maps the fractional part of |v| onto the quarter grid and
// reapplies the sign. Exact grid points pass through; everything else snaps
// by range, carrying into the integer part when the fraction rounds to 1.
func snapQuarter(v float64) float64 {
	a := math.Abs(v)
	i := math.Floor(a)
	f := a - i

	var rf float64
	switch {
	case f == 0:
		rf = 0
	case f == 0.25:
		rf = 0.25
	case f == 0.5:
		rf = 0.5
	case f == 0.75:
		rf = 0.75
	case f < 0.25:
		rf = 0
	case f < 0.75:
		rf = 0.5
	default:
		rf = 1
	}

	r := i + rf
	if v < 0 {
		r = -r
	}
	return r
}

// formatLine renders a quarter-grid value: "2", "-1", "0.5", "-1.5",
// "0.25", "-0.75". Exact zero (either sign) is "0".
func formatLine(v float64) string {
	if v == 0 {
		return "0"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	i := math.Floor(v)
	switch v - i {
	case 0:
		return sign + strconv.Itoa(int(i))
	case 0.5:
		return sign + strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return sign + strconv.FormatFloat(v, 'f', 2, 64)
	}
}
