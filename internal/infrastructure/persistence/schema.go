package persistence

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shjfcs/foodwatch/internal/domain/record"
)

// TableColumns names a table and the columns the application writes to it.
type TableColumns struct {
	Table   string
	Columns []string
}

// ExpectedTables derives the schema the record workflow relies on from the
// allow-lists plus the ownership, link and audit columns.
func ExpectedTables(lists []record.AllowList, extra map[record.Kind][]string) []TableColumns {
	audit := []string{record.ColCreatedBy, record.ColCreatedAt, record.ColUpdatedBy, record.ColUpdatedAt}
	out := make([]TableColumns, 0, len(lists))
	for _, l := range lists {
		cols := append([]string{"id"}, l.Names()...)
		cols = append(cols, extra[l.Kind()]...)
		cols = append(cols, audit...)
		out = append(out, TableColumns{Table: l.Kind().Table(), Columns: cols})
	}
	return out
}

// ValidateSchema checks that every expected table and column exists. It is
// run at startup so that a drifted schema fails before serving requests
// rather than on the first write.
func ValidateSchema(db *gorm.DB, tables []TableColumns) error {
	migrator := db.Migrator()
	var missing []string
	for _, t := range tables {
		if !migrator.HasTable(t.Table) {
			missing = append(missing, t.Table)
			continue
		}
		for _, col := range t.Columns {
			if !migrator.HasColumn(t.Table, col) {
				missing = append(missing, t.Table+"."+col)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("database schema is missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
