package models

import "time"

// Snapshot holds the JSON-serialized form of one top-level record. Each of
// companyInfo, customer, order and gallery is stored under its own key as a
// single complete document; there are no partial-key updates.
type Snapshot struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Payload   []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the GORM default.
func (Snapshot) TableName() string {
	return "snapshots"
}
