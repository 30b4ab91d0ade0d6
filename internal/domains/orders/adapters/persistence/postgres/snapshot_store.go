package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
	"github.com/padoca/ordering/internal/domains/orders/domain"
	"github.com/padoca/ordering/internal/domains/orders/ports"
	"github.com/padoca/ordering/internal/shared/money"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists the whole ledger as one row per key: the order list
// serialized to JSON, creation order preserved (newest first). Every save is
// a full rewrite.
type SnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore wires a PostgreSQL-backed store. Caller manages DB lifecycle.
func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	store := &SnapshotStore{db: db}
	if db != nil {
		_ = db.AutoMigrate(&ledgerRecord{})
	}
	return store
}

// ledgerRecord holds one full ledger snapshot. The order-id array is a
// denormalized index so snapshots can be located by order without decoding
// the payload.
type ledgerRecord struct {
	Key       string          `gorm:"primaryKey;column:key;size:128"`
	Orders    []orderSnapshot `gorm:"column:orders;type:jsonb;serializer:json"`
	OrderIDs  pq.Int64Array   `gorm:"column:order_ids;type:bigint[]"`
	UpdatedAt time.Time       `gorm:"column:updated_at;index"`
}

func (ledgerRecord) TableName() string { return "order_ledgers" }

type orderSnapshot struct {
	ID         int64          `json:"id"`
	Number     string         `json:"number"`
	CustomerID string         `json:"customerId"`
	CreatedAt  time.Time      `json:"createdAt"`
	Lines      []lineSnapshot `json:"lines"`
	TotalCents int64          `json:"totalCents"`
	Payment    string         `json:"payment"`
	Status     string         `json:"status"`
}

type lineSnapshot struct {
	ProductID      int64  `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int64  `json:"quantity"`
}

// Save rewrites the snapshot row for the key.
func (s *SnapshotStore) Save(ctx context.Context, key string, orders []*domain.Order) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	record := ledgerRecord{
		Key:      key,
		Orders:   make([]orderSnapshot, 0, len(orders)),
		OrderIDs: make(pq.Int64Array, 0, len(orders)),
	}
	for _, order := range orders {
		if order == nil {
			continue
		}
		record.Orders = append(record.Orders, toSnapshot(order))
		record.OrderIDs = append(record.OrderIDs, order.ID)
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"orders":     gorm.Expr("EXCLUDED.orders"),
				"order_ids":  gorm.Expr("EXCLUDED.order_ids"),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
}

// Load reads the snapshot for the key. A missing row is an empty ledger.
func (s *SnapshotStore) Load(ctx context.Context, key string) ([]*domain.Order, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var record ledgerRecord
	if err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(record.Orders))
	for i := range record.Orders {
		orders = append(orders, record.Orders[i].toDomain())
	}
	return orders, nil
}

func (s *SnapshotStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres snapshot store not configured")
	}
	return nil
}

func toSnapshot(order *domain.Order) orderSnapshot {
	snapshot := orderSnapshot{
		ID:         order.ID,
		Number:     order.Number,
		CustomerID: order.CustomerID,
		CreatedAt:  order.CreatedAt,
		Lines:      make([]lineSnapshot, 0, len(order.Lines)),
		TotalCents: order.Total.Cents(),
		Payment:    string(order.Payment),
		Status:     string(order.Status),
	}
	for _, line := range order.Lines {
		snapshot.Lines = append(snapshot.Lines, lineSnapshot{
			ProductID:      line.ProductID,
			Name:           line.Name,
			UnitPriceCents: line.UnitPrice.Cents(),
			Quantity:       line.Quantity,
		})
	}
	return snapshot
}

func (s orderSnapshot) toDomain() *domain.Order {
	lines := make([]cartdomain.Line, 0, len(s.Lines))
	for _, line := range s.Lines {
		lines = append(lines, cartdomain.Line{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: money.Money(line.UnitPriceCents),
			Quantity:  line.Quantity,
		})
	}
	return &domain.Order{
		ID:         s.ID,
		Number:     s.Number,
		CustomerID: s.CustomerID,
		CreatedAt:  s.CreatedAt,
		Lines:      lines,
		Total:      money.Money(s.TotalCents),
		Payment:    domain.Payment(s.Payment),
		Status:     domain.Status(s.Status),
	}
}
