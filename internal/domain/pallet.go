package domain

import (
	"fmt"
	"time"
)

// PalletState is the pallet lifecycle state. The Spanish vocabulary is the
// packhouse's own and is stored verbatim.
type PalletState string

const (
	// PalletStateInStorage means produced and held in the cold chamber.
	PalletStateInStorage PalletState = "EN CAMARA"
	// PalletStateShipped means the pallet left on a dispatch.
	PalletStateShipped PalletState = "DESPACHADO"
	// PalletStateEliminated is the soft-delete state; the number is never reused.
	PalletStateEliminated PalletState = "ELIMINADO"
)

// Pallet is one production unit: exactly one full pack-height's worth of one
// calibre/type, owned by one order for its whole lifetime. NumeroPaleta is a
// global sequence, not per-order.
type Pallet struct {
	NumeroPaleta int64
	OrderID      int64
	Quantities   Quantities
	Estado       PalletState
	ClientName   string
	CartonType   string
	Height       int
	CreatedAt    time.Time
}

// SelectSlot validates submitted pallet quantities and picks the single slot
// being allocated: no slot may be negative, exactly one must be positive, and
// that value must equal the order height exactly. A pallet is atomically one
// pack-height of one calibre, never mixed and never partial.
func SelectSlot(q Quantities, height int) (Slot, int, error) {
	var selected Slot
	value := 0
	positives := 0
	for _, s := range Slots() {
		v := q.Get(s)
		if v < 0 {
			return Slot{}, 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, s.Label())
		}
		if v > 0 {
			positives++
			selected = s
			value = v
		}
	}
	if positives == 0 {
		return Slot{}, 0, fmt.Errorf("%w: must specify a quantity for one calibre", ErrInvalidInput)
	}
	if positives > 1 {
		return Slot{}, 0, fmt.Errorf("%w: only one calibre per pallet", ErrInvalidInput)
	}
	if value != height {
		return Slot{}, 0, fmt.Errorf("%w: the quantity must be exactly %d boxes", ErrInvalidInput, height)
	}
	return selected, value, nil
}

// CheckAllocation gates pallet creation: existing is the non-eliminated sum
// already committed to the slot, max the order's quota for it. A slot at or
// over quota is reported as already complete before the overshoot check.
func CheckAllocation(slot Slot, existing, value, max int) error {
	if existing >= max {
		return fmt.Errorf("%w: the %s order is already complete", ErrInvalidInput, slot.Label())
	}
	if existing+value > max {
		return fmt.Errorf("%w: the box sum would exceed the order total", ErrInvalidInput)
	}
	return nil
}

// CheckReallocation gates pallet edits. The pallet's own prior contribution is
// subtracted first, so an unchanged pallet always passes; the already-complete
// short-circuit from creation does not apply here.
func CheckReallocation(existing, oldValue, newValue, max int) error {
	if existing-oldValue+newValue > max {
		return fmt.Errorf("%w: the box sum would exceed the order total", ErrInvalidInput)
	}
	return nil
}
