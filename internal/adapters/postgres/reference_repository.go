package postgres

import (
	"context"
	"errors"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
	"gorm.io/gorm"
)

type referenceRepository struct {
	db *gorm.DB
}

func (r *referenceRepository) ListClients(ctx context.Context) ([]ports.ReferenceItem, error) {
	var recs []clientModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]ports.ReferenceItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ports.ReferenceItem{ID: rec.ClientID, Name: rec.Name})
	}
	return out, nil
}

func (r *referenceRepository) ListCartonTypes(ctx context.Context) ([]ports.ReferenceItem, error) {
	var recs []cartonTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]ports.ReferenceItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ports.ReferenceItem{ID: rec.CartonTypeID, Name: rec.Name})
	}
	return out, nil
}

func (r *referenceRepository) ListHeights(ctx context.Context) ([]ports.HeightItem, error) {
	var recs []heightModel
	if err := r.db.WithContext(ctx).Order("quantity ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]ports.HeightItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ports.HeightItem{ID: rec.HeightID, Quantity: rec.Quantity})
	}
	return out, nil
}

func (r *referenceRepository) GetHeight(ctx context.Context, heightID int64) (ports.HeightItem, error) {
	var rec heightModel
	if err := r.db.WithContext(ctx).Where("height_id = ?", heightID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.HeightItem{}, domain.ErrNotFound
		}
		return ports.HeightItem{}, err
	}
	return ports.HeightItem{ID: rec.HeightID, Quantity: rec.Quantity}, nil
}
