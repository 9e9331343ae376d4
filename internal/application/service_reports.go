package application

import (
	"context"
	"strings"

	"github.com/agroandes/trazabilidad/internal/domain"
)

// CameraBalanceReport aggregates in-storage boxes per order across calibres.
func (s *Service) CameraBalanceReport(ctx context.Context) ([]CameraBalanceResponse, error) {
	rows, err := s.pallets.CameraBalance(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CameraBalanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CameraBalanceResponse{
			OrderID:    r.OrderID,
			ClientName: r.ClientName,
			ByCalibre:  r.ByCalibre,
		})
	}
	return out, nil
}

// ShortfallReport computes the remaining demand per pending order and slot:
// max(0, quota - in storage).
func (s *Service) ShortfallReport(ctx context.Context) ([]ShortfallResponse, error) {
	orders, err := s.orders.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ShortfallResponse, 0, len(orders))
	for _, o := range orders {
		inStorage, err := s.pallets.SumInStorage(ctx, o.OrderID)
		if err != nil {
			return nil, err
		}
		out = append(out, ShortfallResponse{
			OrderID:     o.OrderID,
			ClientName:  o.ClientName,
			QuotaFields: QuotaFieldsFrom(domain.Shortfall(o.Quota, inStorage)),
		})
	}
	return out, nil
}

// OrdersByWeekReport lists the orders of one week, optionally filtered by
// status. Empty and "TODOS" both mean every non-deleted order.
func (s *Service) OrdersByWeekReport(ctx context.Context, week int, status string) ([]OrderResponse, error) {
	normalized := strings.ToUpper(strings.TrimSpace(status))
	if normalized == "TODOS" {
		normalized = ""
	}
	orders, err := s.orders.ListByWeek(ctx, week, domain.OrderStatus(normalized))
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

// ListAvailableWeeks returns the distinct weeks that have orders.
func (s *Service) ListAvailableWeeks(ctx context.Context) ([]int, error) {
	return s.orders.ListAvailableWeeks(ctx)
}

// ProducedTotalsReport returns the EN CAMARA grand total per order.
func (s *Service) ProducedTotalsReport(ctx context.Context) ([]ProducedTotalResponse, error) {
	rows, err := s.pallets.ProducedTotals(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProducedTotalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProducedTotalResponse{
			OrderID:       r.OrderID,
			ClientName:    r.ClientName,
			TotalProduced: r.TotalProduced,
		})
	}
	return out, nil
}

// Dashboard summarizes workload counts for the landing page.
func (s *Service) Dashboard(ctx context.Context) (DashboardResponse, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}
	pallets, err := s.pallets.List(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}
	dispatches, err := s.dispatches.List(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	inCamara := 0
	for _, p := range pallets {
		if p.Estado == domain.PalletStateInStorage {
			inCamara++
		}
	}
	return DashboardResponse{
		TotalOrders:     len(orders),
		PalletsInCamara: inCamara,
		TotalDispatches: len(dispatches),
	}, nil
}
