package domain

import (
	"fmt"
	"strings"
	"time"
)

// DispatchMeta is the editable shipping metadata. The order reference and the
// shipped pallet set are fixed at creation and never change.
type DispatchMeta struct {
	Transportista   string
	ContainerNumber string
	PuertoDestino   string
	PaisDestino     string
}

// Dispatch records one shipment event for one order. The pallets it shipped
// are not stored as a foreign key; they are recovered at report time by order
// plus DESPACHADO state.
type Dispatch struct {
	DispatchID int64
	OrderID    int64
	ClientName string
	Meta       DispatchMeta
	CreatedAt  time.Time
}

// DispatchSummary is the listing/report row with a shipped-pallet count.
type DispatchSummary struct {
	DispatchID   int64
	OrderID      int64
	ClientName   string
	Meta         DispatchMeta
	CreatedAt    time.Time
	TotalPallets int
}

// ValidateDispatchRequest checks the shape of a dispatch before the
// transactional pallet checks run.
func ValidateDispatchRequest(palletNumbers []int64, meta DispatchMeta) error {
	if len(palletNumbers) == 0 {
		return fmt.Errorf("%w: at least one pallet must be selected", ErrInvalidInput)
	}
	seen := make(map[int64]struct{}, len(palletNumbers))
	for _, n := range palletNumbers {
		if n <= 0 {
			return fmt.Errorf("%w: invalid pallet number %d", ErrInvalidInput, n)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: pallet %d listed more than once", ErrInvalidInput, n)
		}
		seen[n] = struct{}{}
	}
	if strings.TrimSpace(meta.Transportista) == "" {
		return fmt.Errorf("%w: transportista is required", ErrInvalidInput)
	}
	return nil
}
