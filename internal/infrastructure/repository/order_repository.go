package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	domainRepo "github.com/tavolo/tavolo-api/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return dbFrom(ctx, r.db).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetOpenByTable(ctx context.Context, tableNo int) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).
		First(&order, "table_no = ? AND status = ?", tableNo, enum.OrderStatusOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.created_at ASC") }).
		Preload("Lines.Item").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Close(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return dbFrom(ctx, r.db).Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    enum.OrderStatusClosed,
			"closed_at": &now,
		}).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Order{}, "id = ?", id).Error
}

func (r *orderRepository) ListOpen(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := dbFrom(ctx, r.db).
		Preload("Lines.Item").
		Where("status = ?", enum.OrderStatusOpen).
		Order("table_no ASC").
		Find(&orders).Error
	return orders, err
}

type orderLineRepository struct {
	db *gorm.DB
}

// NewOrderLineRepository creates a new order line repository
func NewOrderLineRepository(db *gorm.DB) domainRepo.OrderLineRepository {
	return &orderLineRepository{db: db}
}

func (r *orderLineRepository) Create(ctx context.Context, line *entity.OrderLine) error {
	return dbFrom(ctx, r.db).Create(line).Error
}

func (r *orderLineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error) {
	var line entity.OrderLine
	err := dbFrom(ctx, r.db).Preload("Item").First(&line, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *orderLineRepository) FindMatch(ctx context.Context, orderID, itemID uuid.UUID, batchTag string) (*entity.OrderLine, error) {
	var line entity.OrderLine
	err := dbFrom(ctx, r.db).
		First(&line, "order_id = ? AND item_id = ? AND batch_tag = ?", orderID, itemID, batchTag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *orderLineRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := dbFrom(ctx, r.db).
		Preload("Item").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *orderLineRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.OrderLine{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}

func (r *orderLineRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return dbFrom(ctx, r.db).Model(&entity.OrderLine{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *orderLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.OrderLine{}, "id = ?", id).Error
}
