package record

import (
	"fmt"
	"slices"

	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// Column is one writable column and the coercion applied to it.
type Column struct {
	Name string
	Rule Rule
}

// AllowList is the fixed, ordered set of columns a client may write for a
// record kind. Column identifiers in generated SQL only ever come from here.
type AllowList struct {
	kind    Kind
	columns []Column
	index   map[string]int
}

// NewAllowList builds an allow-list. Duplicate column names panic, since the
// lists are package-level declarations.
func NewAllowList(kind Kind, columns []Column) AllowList {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c.Name]; dup {
			panic(fmt.Sprintf("record: duplicate column %q in %s allow-list", c.Name, kind))
		}
		index[c.Name] = i
	}
	return AllowList{kind: kind, columns: slices.Clone(columns), index: index}
}

func (l AllowList) Kind() Kind {
	return l.kind
}

func (l AllowList) Columns() []Column {
	return slices.Clone(l.columns)
}

func (l AllowList) Names() []string {
	names := make([]string, len(l.columns))
	for i, c := range l.columns {
		names[i] = c.Name
	}
	return names
}

func (l AllowList) Lookup(name string) (Column, bool) {
	i, ok := l.index[name]
	if !ok {
		return Column{}, false
	}
	return l.columns[i], true
}

func (l AllowList) Contains(name string) bool {
	_, ok := l.index[name]
	return ok
}

func (l AllowList) Len() int {
	return len(l.columns)
}

// BuildEditSet keeps the candidate keys present in list, coerces each value
// by its column rule and returns them in allow-list order. Unknown keys are
// dropped. An empty result is a ValidationError.
func BuildEditSet(candidate map[string]any, list AllowList) (*Fields, error) {
	f := NewFields()
	for _, col := range list.columns {
		raw, ok := candidate[col.Name]
		if !ok {
			continue
		}
		v, err := col.Rule.Coerce(col.Name, raw)
		if err != nil {
			return nil, err
		}
		f.Set(col.Name, v)
	}
	if f.Len() == 0 {
		return nil, errors.NewValidationError("no fields to update")
	}
	return f, nil
}
