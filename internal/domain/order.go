package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the order lifecycle state. ELIMINADO is a soft delete; order
// rows are never removed.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusDispatched OrderStatus = "DISPATCHED"
	OrderStatusEliminated OrderStatus = "ELIMINADO"
)

// Order is a client's declared demand: a total quantity split exactly across
// the twelve calibre quota slots, all in multiples of the pack height.
type Order struct {
	OrderID      int64
	ClientID     int64
	ClientName   string
	CartonTypeID int64
	CartonType   string
	HeightID     int64
	Height       int // boxes per full pack unit
	Week         int
	Quantity     int
	Status       OrderStatus
	Quota        Quantities
	CreatedAt    time.Time
}

// ValidateOrderSpec enforces the creation invariants: the total quantity and
// every quota slot must be exact multiples of the height, no slot may be
// negative, and the twelve slots must sum to the total exactly (not <=).
func ValidateOrderSpec(height, quantity int, quota Quantities) error {
	if height <= 0 {
		return fmt.Errorf("%w: height must be a positive number of boxes", ErrInvalidInput)
	}
	if quantity%height != 0 {
		return fmt.Errorf("%w: total quantity (%d) is not a multiple of the selected height (%d)", ErrInvalidInput, quantity, height)
	}
	for _, s := range Slots() {
		v := quota.Get(s)
		if v < 0 {
			return fmt.Errorf("%w: %s (%d) must not be negative", ErrInvalidInput, s.Label(), v)
		}
		if v%height != 0 {
			return fmt.Errorf("%w: %s (%d) is not a multiple of %d", ErrInvalidInput, s.Label(), v, height)
		}
	}
	if sum := quota.Total(); sum != quantity {
		return fmt.Errorf("%w: the calibre sum (%d) must equal the total quantity (%d) exactly", ErrInvalidInput, sum, quantity)
	}
	return nil
}

// ValidateQuotaShrink rejects quota edits that fall below what is already
// allocated in storage. Divisibility and exact-sum are deliberately not
// re-checked on update; creation is the only gate for those rules.
func ValidateQuotaShrink(newQuota, allocated Quantities) error {
	for _, s := range Slots() {
		proposed := newQuota.Get(s)
		existing := allocated.Get(s)
		if proposed < existing {
			return fmt.Errorf("%w: cannot reduce %s to %d, %d boxes are already in storage", ErrInvalidInput, s.Label(), proposed, existing)
		}
	}
	return nil
}
