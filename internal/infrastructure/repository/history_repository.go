package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	domainRepo "github.com/tavolo/tavolo-api/internal/domain/repository"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) domainRepo.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) CreateBill(ctx context.Context, bill *entity.HistoryBill) error {
	return dbFrom(ctx, r.db).Create(bill).Error
}

func (r *historyRepository) CreateLines(ctx context.Context, lines []entity.HistoryLine) error {
	if len(lines) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Create(&lines).Error
}

func (r *historyRepository) GetBill(ctx context.Context, id uuid.UUID) (*entity.HistoryBill, error) {
	var bill entity.HistoryBill
	err := dbFrom(ctx, r.db).First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *historyRepository) GetBillWithLines(ctx context.Context, id uuid.UUID) (*entity.HistoryBill, error) {
	var bill entity.HistoryBill
	err := dbFrom(ctx, r.db).
		Preload("Lines").
		Preload("SettledBy").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *historyRepository) ListBills(ctx context.Context, params *domainRepo.HistoryFilterParams) ([]entity.HistoryBill, int64, error) {
	var bills []entity.HistoryBill
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.HistoryBill{})

	if params.TableNo != nil {
		query = query.Where("table_no = ?", *params.TableNo)
	}
	if params.From != nil {
		query = query.Where("closed_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("closed_at < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Lines").
		Order("closed_at DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *historyRepository) ListBillsInRange(ctx context.Context, from, to time.Time) ([]entity.HistoryBill, error) {
	var bills []entity.HistoryBill
	err := dbFrom(ctx, r.db).
		Preload("Lines").
		Where("closed_at >= ? AND closed_at < ?", from, to).
		Order("closed_at ASC").
		Find(&bills).Error
	return bills, err
}
