// Package persistence bridges record edit sets and GORM models.
package persistence

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/shjfcs/foodwatch/internal/domain/record"
)

// FieldCodec copies edit-set values into models and snapshots allow-listed
// columns out of them, addressing fields by column name through the parsed
// GORM schema.
type FieldCodec struct {
	cache *sync.Map
	namer schema.Namer
}

func NewFieldCodec(db *gorm.DB) *FieldCodec {
	return &FieldCodec{cache: &sync.Map{}, namer: db.NamingStrategy}
}

func (c *FieldCodec) schemaOf(model any) (*schema.Schema, error) {
	s, err := schema.Parse(model, c.cache, c.namer)
	if err != nil {
		return nil, fmt.Errorf("parse schema of %T: %w", model, err)
	}
	return s, nil
}

// Assign sets each edit-set column on model, which must be a pointer.
func (c *FieldCodec) Assign(ctx context.Context, model any, f *record.Fields) error {
	s, err := c.schemaOf(model)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(model)
	for _, col := range f.Columns() {
		field := s.LookUpField(col)
		if field == nil {
			return fmt.Errorf("%s has no column %s", s.Table, col)
		}
		v, _ := f.Get(col)
		if err := field.Set(ctx, rv, v); err != nil {
			return fmt.Errorf("assign %s.%s: %w", s.Table, col, err)
		}
	}
	return nil
}

// Snapshot reads the columns of list from model. NULL columns read as nil
// and pointers are dereferenced.
func (c *FieldCodec) Snapshot(ctx context.Context, model any, list record.AllowList) (*record.Fields, error) {
	s, err := c.schemaOf(model)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(model)
	f := record.NewFields()
	for _, col := range list.Names() {
		field := s.LookUpField(col)
		if field == nil {
			return nil, fmt.Errorf("%s has no column %s", s.Table, col)
		}
		f.Set(col, indirect(field.ReflectValueOf(ctx, rv)))
	}
	return f, nil
}

func indirect(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}
