package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a field value or confidence score for output. Numeric
// values never come out in exponent form: integral numbers print with no
// decimals and the rest in plain decimal. Anything that does not parse as a
// number is returned as is; nil becomes an empty cell.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case *string:
		if x == nil {
			return ""
		}
		return formatString(*x)
	case *int64:
		if x == nil {
			return ""
		}
		return strconv.FormatInt(*x, 10)
	case *float64:
		if x == nil {
			return ""
		}
		return formatFloat(*x, fmt.Sprint(*x))
	case string:
		return formatString(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return formatFloat(float64(x), fmt.Sprint(x))
	case float64:
		return formatFloat(x, fmt.Sprint(x))
	case fmt.Stringer:
		return formatString(x.String())
	default:
		return formatString(fmt.Sprint(x))
	}
}

func formatString(s string) string {
	token := strings.TrimSpace(s)
	// hex floats parse in Go but are not numbers in the source data
	if strings.ContainsAny(token, "xX") {
		return s
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return s
	}
	return formatFloat(f, s)
}

func formatFloat(f float64, original string) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return original
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
