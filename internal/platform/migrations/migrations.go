package migrations

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&ledgerRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID             int64     `gorm:"primaryKey;column:id"`
	Name           string    `gorm:"column:name"`
	Category       string    `gorm:"column:category;type:varchar(32);index"`
	UnitPriceCents int64     `gorm:"column:unit_price_cents"`
	Stock          int64     `gorm:"column:stock"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Ledger schema mirrors the orders Postgres snapshot adapter. One row per
// ledger key holding the full JSON snapshot.
type ledgerRecord struct {
	Key       string          `gorm:"primaryKey;column:key;size:128"`
	Orders    json.RawMessage `gorm:"column:orders;type:jsonb"`
	OrderIDs  pq.Int64Array   `gorm:"column:order_ids;type:bigint[]"`
	UpdatedAt time.Time       `gorm:"column:updated_at;index"`
}

func (ledgerRecord) TableName() string { return "order_ledgers" }
