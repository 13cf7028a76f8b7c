package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

// PrinterRepository defines the interface for printer configuration data
type PrinterRepository interface {
	Create(ctx context.Context, printer *entity.Printer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Printer, error)
	// GetByStation returns the active printer serving a station, or nil
	// when none is configured.
	GetByStation(ctx context.Context, station enum.PrinterStation) (*entity.Printer, error)
	Update(ctx context.Context, printer *entity.Printer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Printer, error)
}
