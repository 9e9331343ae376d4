package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dispatchRepository struct {
	db *gorm.DB
}

// CreateTx ships an order as one atomic unit: the order and every selected
// pallet are locked and re-verified inside the transaction, then the pallets
// flip to DESPACHADO, the order to DISPATCHED, and the dispatch row plus its
// outbox event are inserted. Any check failing rolls everything back.
func (r *dispatchRepository) CreateTx(ctx context.Context, params ports.DispatchCreateParams, event ports.OutboxEvent) (domain.Dispatch, error) {
	var result domain.Dispatch
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order orderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", params.OrderID).
			Take(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		switch order.Status {
		case string(domain.OrderStatusEliminated):
			return domain.ErrNotFound
		case string(domain.OrderStatusDispatched):
			return fmt.Errorf("%w: order %d has already been dispatched", domain.ErrConflict, params.OrderID)
		}

		var pallets []palletModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("numero_paleta IN ?", params.PalletNumbers).
			Find(&pallets).Error; err != nil {
			return err
		}
		found := make(map[int64]palletModel, len(pallets))
		for _, p := range pallets {
			found[p.NumeroPaleta] = p
		}
		for _, numero := range params.PalletNumbers {
			p, ok := found[numero]
			if !ok {
				return fmt.Errorf("%w: pallet %d not found", domain.ErrNotFound, numero)
			}
			if p.OrderID != params.OrderID {
				return fmt.Errorf("%w: pallet %d does not belong to order %d", domain.ErrInvalidInput, numero, params.OrderID)
			}
			if p.Estado != string(domain.PalletStateInStorage) {
				return fmt.Errorf("%w: pallet %d is not in storage", domain.ErrInvalidInput, numero)
			}
		}

		if err := tx.Model(&palletModel{}).
			Where("numero_paleta IN ?", params.PalletNumbers).
			Update("estado", string(domain.PalletStateShipped)).Error; err != nil {
			return err
		}
		if err := tx.Model(&orderModel{}).
			Where("order_id = ?", params.OrderID).
			Update("status", string(domain.OrderStatusDispatched)).Error; err != nil {
			return err
		}

		rec := dispatchModel{
			OrderID:         params.OrderID,
			Transportista:   params.Meta.Transportista,
			ContainerNumber: params.Meta.ContainerNumber,
			PuertoDestino:   params.Meta.PuertoDestino,
			PaisDestino:     params.Meta.PaisDestino,
			CreatedAt:       time.Now().UTC(),
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		payload := event.Payload
		if len(payload) == 0 {
			payload = []byte(`{}`)
		}
		outbox := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      string(payload),
			CreatedAt:    event.OccurredAt,
		}
		if err := tx.Create(&outbox).Error; err != nil {
			return err
		}

		var clientName string
		if err := tx.Raw("SELECT name FROM clients WHERE client_id = ?", order.ClientID).Scan(&clientName).Error; err != nil {
			return err
		}
		result = domain.Dispatch{
			DispatchID: rec.DispatchID,
			OrderID:    rec.OrderID,
			ClientName: clientName,
			Meta:       params.Meta,
			CreatedAt:  rec.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return domain.Dispatch{}, err
	}
	return result, nil
}

const dispatchProjection = "dispatches.*, clients.name AS client_name"

type dispatchRow struct {
	dispatchModel
	ClientName   string `gorm:"column:client_name"`
	TotalPallets int    `gorm:"column:total_pallets"`
}

func (r *dispatchRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("dispatches").
		Joins("JOIN orders ON orders.order_id = dispatches.order_id").
		Joins("JOIN clients ON clients.client_id = orders.client_id")
}

func (r *dispatchRepository) GetByID(ctx context.Context, dispatchID int64) (domain.Dispatch, error) {
	var row dispatchRow
	err := r.baseQuery(ctx).
		Select(dispatchProjection).
		Where("dispatches.dispatch_id = ?", dispatchID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Dispatch{}, domain.ErrNotFound
		}
		return domain.Dispatch{}, err
	}
	return row.toDispatch(), nil
}

func (r *dispatchRepository) List(ctx context.Context) ([]domain.DispatchSummary, error) {
	var rows []dispatchRow
	err := r.baseQuery(ctx).
		Select(dispatchProjection + ", (SELECT COUNT(*) FROM pallets WHERE pallets.order_id = dispatches.order_id AND pallets.estado = ?) AS total_pallets",
			string(domain.PalletStateShipped)).
		Order("dispatches.dispatch_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.DispatchSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DispatchSummary{
			DispatchID:   row.DispatchID,
			OrderID:      row.OrderID,
			ClientName:   row.ClientName,
			Meta:         row.meta(),
			CreatedAt:    row.CreatedAt,
			TotalPallets: row.TotalPallets,
		})
	}
	return out, nil
}

func (r *dispatchRepository) UpdateMeta(ctx context.Context, dispatchID int64, meta domain.DispatchMeta) error {
	res := r.db.WithContext(ctx).
		Model(&dispatchModel{}).
		Where("dispatch_id = ?", dispatchID).
		Updates(map[string]any{
			"transportista":    meta.Transportista,
			"container_number": meta.ContainerNumber,
			"puerto_destino":   meta.PuertoDestino,
			"pais_destino":     meta.PaisDestino,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (row dispatchRow) meta() domain.DispatchMeta {
	return domain.DispatchMeta{
		Transportista:   row.Transportista,
		ContainerNumber: row.ContainerNumber,
		PuertoDestino:   row.PuertoDestino,
		PaisDestino:     row.PaisDestino,
	}
}

func (row dispatchRow) toDispatch() domain.Dispatch {
	return domain.Dispatch{
		DispatchID: row.DispatchID,
		OrderID:    row.OrderID,
		ClientName: row.ClientName,
		Meta:       row.meta(),
		CreatedAt:  row.CreatedAt,
	}
}
