package css

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseLength parses a single CSS length literal ("3px", "-2.5%", "0") into
// a Length. Only pixel, percent and unit-less values are accepted; anything
// else (keywords, other units, multiple tokens) is an error.
func ParseLength(s string) (Length, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Length{}, fmt.Errorf("empty length value")
	}

	lexer := css.NewLexer(parse.NewInputString(trimmed))

	var (
		result Length
		seen   bool
	)
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// end of input or lexing error
			if !seen {
				return Length{}, fmt.Errorf("not a length value: %q", s)
			}
			return result, nil
		case css.WhitespaceToken:
			continue
		case css.NumberToken:
			if seen {
				return Length{}, fmt.Errorf("not a single length value: %q", s)
			}
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return Length{}, fmt.Errorf("bad number in %q: %w", s, err)
			}
			result = Length{Value: v, Unit: UnitNone}
			seen = true
		case css.PercentageToken:
			if seen {
				return Length{}, fmt.Errorf("not a single length value: %q", s)
			}
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return Length{}, fmt.Errorf("bad percentage in %q: %w", s, err)
			}
			result = Length{Value: v, Unit: UnitPercent}
			seen = true
		case css.DimensionToken:
			if seen {
				return Length{}, fmt.Errorf("not a single length value: %q", s)
			}
			v, unit := splitDimension(string(data))
			if unit != "px" {
				return Length{}, fmt.Errorf("unsupported unit %q in %q (only px and %% are allowed)", unit, s)
			}
			result = Length{Value: v, Unit: UnitPx}
			seen = true
		default:
			return Length{}, fmt.Errorf("not a length value: %q", s)
		}
	}
}

// splitDimension extracts numeric value and unit from a dimension token.
func splitDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, s
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, strings.ToLower(s[numEnd:])
}
