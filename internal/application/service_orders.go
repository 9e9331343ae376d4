package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
)

// CreateOrder validates the full order spec against the selected height and
// persists it as PENDING. All rule checks run before any write.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderResponse, error) {
	height, err := s.references.GetHeight(ctx, req.HeightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return OrderResponse{}, fmt.Errorf("%w: selected height does not exist", domain.ErrInvalidInput)
		}
		return OrderResponse{}, err
	}

	quota := req.Quantities()
	if err := domain.ValidateOrderSpec(height.Quantity, req.Quantity, quota); err != nil {
		return OrderResponse{}, err
	}

	order, err := s.orders.Create(ctx, ports.OrderCreateParams{
		ClientID:     req.ClientID,
		CartonTypeID: req.CartonTypeID,
		HeightID:     req.HeightID,
		Week:         req.Week,
		Quantity:     req.Quantity,
		Quota:        quota,
	})
	if err != nil {
		return OrderResponse{}, err
	}
	return orderResponse(order), nil
}

// UpdateOrder applies a full-field edit guarded by the shrink rule: no quota
// slot may drop below what is already allocated in storage. Divisibility and
// exact-sum are intentionally not re-checked here; creation is the only gate
// for those rules.
func (s *Service) UpdateOrder(ctx context.Context, orderID int64, req UpdateOrderRequest) (OrderResponse, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return OrderResponse{}, err
	}

	allocated, err := s.pallets.SumInStorage(ctx, orderID)
	if err != nil {
		return OrderResponse{}, err
	}
	quota := req.Quantities()
	if err := domain.ValidateQuotaShrink(quota, allocated); err != nil {
		return OrderResponse{}, err
	}

	order, err := s.orders.Update(ctx, orderID, ports.OrderUpdateParams{
		ClientID:     req.ClientID,
		CartonTypeID: req.CartonTypeID,
		HeightID:     req.HeightID,
		Week:         req.Week,
		Quantity:     req.Quantity,
		Quota:        quota,
	})
	if err != nil {
		return OrderResponse{}, err
	}
	return orderResponse(order), nil
}

// DeleteOrder soft-deletes: status becomes ELIMINADO, existing pallets keep
// their state.
func (s *Service) DeleteOrder(ctx context.Context, orderID int64) error {
	return s.orders.SoftDelete(ctx, orderID)
}

// GetOrder returns one order with its display projections.
func (s *Service) GetOrder(ctx context.Context, orderID int64) (OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return OrderResponse{}, err
	}
	return orderResponse(order), nil
}

// ListOrders returns every order joined with display names.
func (s *Service) ListOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

// ListPendingOrders returns orders still open for allocation and dispatch.
func (s *Service) ListPendingOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

// GetReferenceData returns the lookup rows feeding the order forms.
func (s *Service) GetReferenceData(ctx context.Context) (ReferenceDataResponse, error) {
	clients, err := s.references.ListClients(ctx)
	if err != nil {
		return ReferenceDataResponse{}, err
	}
	cartons, err := s.references.ListCartonTypes(ctx)
	if err != nil {
		return ReferenceDataResponse{}, err
	}
	heights, err := s.references.ListHeights(ctx)
	if err != nil {
		return ReferenceDataResponse{}, err
	}

	resp := ReferenceDataResponse{}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, ReferenceItemResponse{ID: c.ID, Name: c.Name})
	}
	for _, c := range cartons {
		resp.CartonTypes = append(resp.CartonTypes, ReferenceItemResponse{ID: c.ID, Name: c.Name})
	}
	for _, h := range heights {
		resp.Heights = append(resp.Heights, HeightItemResponse{ID: h.ID, Quantity: h.Quantity})
	}
	return resp, nil
}

func orderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:      o.OrderID,
		ClientID:     o.ClientID,
		ClientName:   o.ClientName,
		CartonTypeID: o.CartonTypeID,
		CartonType:   o.CartonType,
		HeightID:     o.HeightID,
		Height:       o.Height,
		Week:         o.Week,
		Quantity:     o.Quantity,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		QuotaFields:  QuotaFieldsFrom(o.Quota),
	}
}

func orderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	return out
}
