package application

import (
	"context"
	"fmt"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
)

// CreatePallet gates a pallet-creation request through the order's remaining
// quota. Slot shape is validated here; the capacity check-and-insert runs in
// one store transaction so racing allocations against the same order cannot
// jointly overshoot.
func (s *Service) CreatePallet(ctx context.Context, req CreatePalletRequest) (PalletResponse, error) {
	order, err := s.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return PalletResponse{}, err
	}
	if order.Status == domain.OrderStatusEliminated {
		return PalletResponse{}, fmt.Errorf("%w: order %d is deleted", domain.ErrInvalidInput, req.OrderID)
	}

	quantities := req.PalletFields.Quantities()
	slot, value, err := domain.SelectSlot(quantities, order.Height)
	if err != nil {
		return PalletResponse{}, err
	}

	numero, err := s.pallets.AllocateTx(ctx, ports.PalletAllocateParams{
		OrderID:    req.OrderID,
		Quantities: quantities,
		Slot:       slot,
		Value:      value,
	})
	if err != nil {
		return PalletResponse{}, err
	}

	pallet, err := s.pallets.GetByNumero(ctx, numero)
	if err != nil {
		return PalletResponse{}, err
	}
	return palletResponse(pallet), nil
}

// UpdatePallet edits a pallet's slot/quantity with the same shape rules as
// creation; the capacity check subtracts the pallet's own prior contribution.
func (s *Service) UpdatePallet(ctx context.Context, numero int64, req UpdatePalletRequest) (PalletResponse, error) {
	pallet, err := s.pallets.GetByNumero(ctx, numero)
	if err != nil {
		return PalletResponse{}, err
	}
	order, err := s.orders.GetByID(ctx, pallet.OrderID)
	if err != nil {
		return PalletResponse{}, err
	}

	quantities := req.PalletFields.Quantities()
	slot, value, err := domain.SelectSlot(quantities, order.Height)
	if err != nil {
		return PalletResponse{}, err
	}

	if err := s.pallets.ReallocateTx(ctx, numero, ports.PalletReallocateParams{
		Quantities: quantities,
		Slot:       slot,
		Value:      value,
	}); err != nil {
		return PalletResponse{}, err
	}

	updated, err := s.pallets.GetByNumero(ctx, numero)
	if err != nil {
		return PalletResponse{}, err
	}
	return palletResponse(updated), nil
}

// DeletePallet soft-deletes: estado becomes ELIMINADO and the pallet stops
// counting toward allocation sums. The number is never reused.
func (s *Service) DeletePallet(ctx context.Context, numero int64) error {
	if _, err := s.pallets.GetByNumero(ctx, numero); err != nil {
		return err
	}
	return s.pallets.SetState(ctx, numero, domain.PalletStateEliminated)
}

// GetPallet returns one pallet with its display projections.
func (s *Service) GetPallet(ctx context.Context, numero int64) (PalletResponse, error) {
	pallet, err := s.pallets.GetByNumero(ctx, numero)
	if err != nil {
		return PalletResponse{}, err
	}
	return palletResponse(pallet), nil
}

// ListPallets returns every non-eliminated pallet.
func (s *Service) ListPallets(ctx context.Context) ([]PalletResponse, error) {
	pallets, err := s.pallets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PalletResponse, 0, len(pallets))
	for _, p := range pallets {
		out = append(out, palletResponse(p))
	}
	return out, nil
}

func palletResponse(p domain.Pallet) PalletResponse {
	return PalletResponse{
		NumeroPaleta: p.NumeroPaleta,
		OrderID:      p.OrderID,
		Estado:       string(p.Estado),
		ClientName:   p.ClientName,
		CartonType:   p.CartonType,
		Height:       p.Height,
		CreatedAt:    p.CreatedAt,
		PalletFields: PalletFieldsFrom(p.Quantities),
	}
}
