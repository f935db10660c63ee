package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore persists submitted orders in PostgreSQL using GORM.
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore wires a PostgreSQL-backed store. Caller manages DB lifecycle.
func NewOrderStore(db *gorm.DB) *OrderStore {
	store := &OrderStore{db: db}
	if db != nil {
		_ = db.AutoMigrate(&submittedOrderRecord{})
	}
	return store
}

// submittedOrderRecord maps a submitted order to an append-only table; Seq
// fixes submission order.
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

// Append inserts the order; existing rows are never updated.
func (s *OrderStore) Append(ctx context.Context, order *domain.SubmittedOrder) (*domain.SubmittedOrder, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all orders in submission order.
func (s *OrderStore) List(ctx context.Context) ([]*domain.SubmittedOrder, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []submittedOrderRecord
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.SubmittedOrder, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (s *OrderStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres order store not configured")
	}
	return nil
}

func toRecord(order *domain.SubmittedOrder) submittedOrderRecord {
	items := make(pq.StringArray, len(order.Items))
	copy(items, order.Items)
	return submittedOrderRecord{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Contact:      order.Contact,
		Address:      order.Address,
		Items:        items,
		SubmittedAt:  order.SubmittedAt.UTC(),
	}
}

func (r submittedOrderRecord) toDomain() *domain.SubmittedOrder {
	items := make([]string, len(r.Items))
	copy(items, r.Items)
	return &domain.SubmittedOrder{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Contact:      r.Contact,
		Address:      r.Address,
		Items:        items,
		SubmittedAt:  r.SubmittedAt.UTC(),
	}
}
