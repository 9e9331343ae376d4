package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
	"github.com/google/uuid"
)

// ListDispatchableOrders returns the PENDING orders a dispatch can be built
// from.
func (s *Service) ListDispatchableOrders(ctx context.Context) ([]OrderResponse, error) {
	return s.ListPendingOrders(ctx)
}

// ListDispatchablePallets returns an order's EN CAMARA pallets.
func (s *Service) ListDispatchablePallets(ctx context.Context, orderID int64) ([]PalletResponse, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	pallets, err := s.pallets.ListInStorageByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]PalletResponse, 0, len(pallets))
	for _, p := range pallets {
		out = append(out, palletResponse(p))
	}
	return out, nil
}

// CreateDispatch ships the selected pallets for one order as a single atomic
// unit: dispatch row, pallet transitions to DESPACHADO, order transition to
// DISPATCHED and the outbox event all commit together or not at all. Each
// pallet is re-validated inside the transaction to belong to the order and to
// currently be EN CAMARA.
func (s *Service) CreateDispatch(ctx context.Context, req CreateDispatchRequest) (DispatchResponse, error) {
	meta := domain.DispatchMeta{
		Transportista:   req.Transportista,
		ContainerNumber: req.ContainerNumber,
		PuertoDestino:   req.PuertoDestino,
		PaisDestino:     req.PaisDestino,
	}
	if err := domain.ValidateDispatchRequest(req.PalletNumbers, meta); err != nil {
		return DispatchResponse{}, err
	}

	order, err := s.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return DispatchResponse{}, err
	}
	if order.Status != domain.OrderStatusPending {
		return DispatchResponse{}, fmt.Errorf("%w: order %d is not pending", domain.ErrInvalidInput, req.OrderID)
	}

	now := s.nowFn()
	payload, _ := json.Marshal(map[string]any{
		"order_id":      req.OrderID,
		"pallets":       req.PalletNumbers,
		"transportista": meta.Transportista,
		"dispatched_at": now,
	})
	event := ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    "dispatch.created",
		PartitionKey: fmt.Sprintf("order-%d", req.OrderID),
		Payload:      payload,
		OccurredAt:   now,
	}

	dispatch, err := s.dispatches.CreateTx(ctx, ports.DispatchCreateParams{
		OrderID:       req.OrderID,
		PalletNumbers: req.PalletNumbers,
		Meta:          meta,
	}, event)
	if err != nil {
		return DispatchResponse{}, err
	}

	return DispatchResponse{
		DispatchID:      dispatch.DispatchID,
		OrderID:         dispatch.OrderID,
		ClientName:      dispatch.ClientName,
		Transportista:   dispatch.Meta.Transportista,
		ContainerNumber: dispatch.Meta.ContainerNumber,
		PuertoDestino:   dispatch.Meta.PuertoDestino,
		PaisDestino:     dispatch.Meta.PaisDestino,
		CreatedAt:       dispatch.CreatedAt,
		TotalPallets:    len(req.PalletNumbers),
	}, nil
}

// UpdateDispatch mutates shipping metadata only; the order reference and the
// shipped pallet set are immutable.
func (s *Service) UpdateDispatch(ctx context.Context, dispatchID int64, req UpdateDispatchRequest) error {
	if _, err := s.dispatches.GetByID(ctx, dispatchID); err != nil {
		return err
	}
	return s.dispatches.UpdateMeta(ctx, dispatchID, domain.DispatchMeta{
		Transportista:   req.Transportista,
		ContainerNumber: req.ContainerNumber,
		PuertoDestino:   req.PuertoDestino,
		PaisDestino:     req.PaisDestino,
	})
}

// GetDispatch returns one dispatch.
func (s *Service) GetDispatch(ctx context.Context, dispatchID int64) (DispatchResponse, error) {
	d, err := s.dispatches.GetByID(ctx, dispatchID)
	if err != nil {
		return DispatchResponse{}, err
	}
	return DispatchResponse{
		DispatchID:      d.DispatchID,
		OrderID:         d.OrderID,
		ClientName:      d.ClientName,
		Transportista:   d.Meta.Transportista,
		ContainerNumber: d.Meta.ContainerNumber,
		PuertoDestino:   d.Meta.PuertoDestino,
		PaisDestino:     d.Meta.PaisDestino,
		CreatedAt:       d.CreatedAt,
	}, nil
}

// ListDispatches returns every dispatch with client name and shipped-pallet
// count.
func (s *Service) ListDispatches(ctx context.Context) ([]DispatchResponse, error) {
	rows, err := s.dispatches.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DispatchResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, DispatchResponse{
			DispatchID:      d.DispatchID,
			OrderID:         d.OrderID,
			ClientName:      d.ClientName,
			Transportista:   d.Meta.Transportista,
			ContainerNumber: d.Meta.ContainerNumber,
			PuertoDestino:   d.Meta.PuertoDestino,
			PaisDestino:     d.Meta.PaisDestino,
			CreatedAt:       d.CreatedAt,
			TotalPallets:    d.TotalPallets,
		})
	}
	return out, nil
}
