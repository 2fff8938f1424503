// Package models contains the GORM models for the record tables. Column
// tags are explicit because the legacy schema spells employee ids "empid".
package models

import "time"

// Audit is embedded in every record model.
type Audit struct {
	CreatedByEmpID *int64    `gorm:"column:created_by_empid;index"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedByEmpID *int64    `gorm:"column:updated_by_empid"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

// AuditInfo exposes the embedded audit block.
func (a *Audit) AuditInfo() *Audit {
	return a
}
