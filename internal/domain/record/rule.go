package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shjfcs/foodwatch/internal/shared/biztime"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// Rule is the coercion applied to a client value before it reaches a column.
type Rule int

const (
	// Text stores scalars as strings; blank input becomes NULL.
	Text Rule = iota
	// Narrative stores scalars as strings and keeps blank input as "".
	Narrative
	// Integer accepts integral numbers or numeric strings; anything else
	// becomes NULL rather than failing the write.
	Integer
	// DateTime parses a timestamp in the business timezone.
	DateTime
	// Date parses a calendar date.
	Date
)

func (r Rule) String() string {
	switch r {
	case Text:
		return "text"
	case Narrative:
		return "narrative"
	case Integer:
		return "integer"
	case DateTime:
		return "datetime"
	case Date:
		return "date"
	default:
		return "unknown"
	}
}

// Coerce converts raw into the value bound for column col.
func (r Rule) Coerce(col string, raw any) (any, error) {
	switch r {
	case Text:
		s, err := scalarString(col, raw)
		if err != nil || strings.TrimSpace(s) == "" {
			return nil, err
		}
		return s, nil
	case Narrative:
		return scalarString(col, raw)
	case Integer:
		return coerceInteger(raw), nil
	case DateTime:
		return coerceTime(col, raw, biztime.ParseDateTime)
	case Date:
		return coerceTime(col, raw, biztime.ParseDate)
	default:
		return nil, fmt.Errorf("column %s: unknown rule %d", col, r)
	}
}

func scalarString(col string, raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("%s must be a single value", col))
	}
}

func coerceInteger(raw any) any {
	switch v := raw.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil
		}
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}
	return nil
}

func coerceTime(col string, raw any, parse func(string) (time.Time, error)) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v.UTC(), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		t, err := parse(v)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("%s is not a valid date", col), v)
		}
		return t, nil
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("%s is not a valid date", col))
	}
}
