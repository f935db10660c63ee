package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&submittedOrderRecord{},
	)
}

// Submitted order schema mirrors the ordering Postgres adapter.
type submittedOrderRecord struct {
	Seq          int64          `gorm:"primaryKey;autoIncrement;column:seq"`
	ID           string         `gorm:"column:id;type:uuid;uniqueIndex"`
	CustomerName string         `gorm:"column:customer_name"`
	Contact      string         `gorm:"column:contact"`
	Address      string         `gorm:"column:address"`
	Items        pq.StringArray `gorm:"column:items;type:text[]"`
	SubmittedAt  time.Time      `gorm:"column:submitted_at;index"`
}

func (submittedOrderRecord) TableName() string { return "submitted_orders" }
