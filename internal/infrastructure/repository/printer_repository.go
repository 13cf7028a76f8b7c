package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	domainRepo "github.com/tavolo/tavolo-api/internal/domain/repository"
)

type printerRepository struct {
	db *gorm.DB
}

// NewPrinterRepository creates a new printer repository
func NewPrinterRepository(db *gorm.DB) domainRepo.PrinterRepository {
	return &printerRepository{db: db}
}

func (r *printerRepository) Create(ctx context.Context, printer *entity.Printer) error {
	return dbFrom(ctx, r.db).Create(printer).Error
}

func (r *printerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Printer, error) {
	var printer entity.Printer
	err := dbFrom(ctx, r.db).First(&printer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &printer, err
}

func (r *printerRepository) GetByStation(ctx context.Context, station enum.PrinterStation) (*entity.Printer, error) {
	var printer entity.Printer
	err := dbFrom(ctx, r.db).
		First(&printer, "station = ? AND active = ?", station, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &printer, err
}

func (r *printerRepository) Update(ctx context.Context, printer *entity.Printer) error {
	return dbFrom(ctx, r.db).Save(printer).Error
}

func (r *printerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Printer{}, "id = ?", id).Error
}

func (r *printerRepository) List(ctx context.Context) ([]entity.Printer, error) {
	var printers []entity.Printer
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&printers).Error
	return printers, err
}
