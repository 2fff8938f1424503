package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Fields is an ordered column to value map. Columns keep the order in which
// they were first set, which for edit sets is allow-list declaration order.
type Fields struct {
	cols []string
	vals map[string]any
}

func NewFields() *Fields {
	return &Fields{vals: make(map[string]any)}
}

// Set assigns a column value, appending the column if it is new.
func (f *Fields) Set(col string, v any) {
	if _, ok := f.vals[col]; !ok {
		f.cols = append(f.cols, col)
	}
	f.vals[col] = v
}

func (f *Fields) Get(col string) (any, bool) {
	v, ok := f.vals[col]
	return v, ok
}

func (f *Fields) Has(col string) bool {
	_, ok := f.vals[col]
	return ok
}

// String returns the column value as a string. Missing and nil values are "".
func (f *Fields) String(col string) string {
	switch v := f.vals[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	default:
		return fmt.Sprint(v)
	}
}

func (f *Fields) Delete(col string) {
	if _, ok := f.vals[col]; !ok {
		return
	}
	delete(f.vals, col)
	for i, c := range f.cols {
		if c == col {
			f.cols = append(f.cols[:i], f.cols[i+1:]...)
			break
		}
	}
}

func (f *Fields) Len() int {
	return len(f.cols)
}

// Columns returns a copy of the column names in order.
func (f *Fields) Columns() []string {
	return append([]string(nil), f.cols...)
}

// Map returns a copy of the values keyed by column, as consumed by GORM
// Updates.
func (f *Fields) Map() map[string]any {
	m := make(map[string]any, len(f.vals))
	for k, v := range f.vals {
		m[k] = v
	}
	return m
}

func (f *Fields) Clone() *Fields {
	c := &Fields{cols: f.Columns(), vals: f.Map()}
	return c
}

// MarshalJSON writes the columns in order. Times are written in RFC 3339.
func (f *Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range f.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		v := f.vals[col]
		if t, ok := v.(time.Time); ok {
			v = t.Format(time.RFC3339)
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal column %s: %w", col, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
