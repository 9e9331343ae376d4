package domain

import (
	"errors"
	"testing"
)

func TestSelectSlot(t *testing.T) {
	t.Parallel()

	t.Run("picks the single positive slot", func(t *testing.T) {
		t.Parallel()
		slot, value, err := SelectSlot(quotaOf(map[string]int{"cl_calibre7": 10}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Type != PackTypeCL || slot.Calibre != 7 {
			t.Fatalf("wrong slot selected: %+v", slot)
		}
		if value != 10 {
			t.Fatalf("wrong value: %d", value)
		}
	})

	t.Run("rejects empty quantities", func(t *testing.T) {
		t.Parallel()
		_, _, err := SelectSlot(Quantities{}, 10)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects two positive slots", func(t *testing.T) {
		t.Parallel()
		_, _, err := SelectSlot(quotaOf(map[string]int{"gp_calibre5": 10, "gp_calibre6": 10}), 10)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects a negative slot", func(t *testing.T) {
		t.Parallel()
		_, _, err := SelectSlot(quotaOf(map[string]int{"gp_calibre5": 10, "cl_calibre8": -1}), 10)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects a value below the height", func(t *testing.T) {
		t.Parallel()
		_, _, err := SelectSlot(quotaOf(map[string]int{"gp_calibre5": 5}), 10)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects a value above the height", func(t *testing.T) {
		t.Parallel()
		_, _, err := SelectSlot(quotaOf(map[string]int{"gp_calibre5": 20}), 10)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestCheckAllocation(t *testing.T) {
	t.Parallel()

	slot := Slot{Type: PackTypeGP, Calibre: 5}

	// Quota of 20 at height 10 fits exactly two pallets.
	if err := CheckAllocation(slot, 0, 10, 20); err != nil {
		t.Fatalf("first pallet should fit: %v", err)
	}
	if err := CheckAllocation(slot, 10, 10, 20); err != nil {
		t.Fatalf("second pallet should fit: %v", err)
	}
	err := CheckAllocation(slot, 20, 10, 20)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("third pallet should be rejected, got %v", err)
	}

	// A partial remainder is reported as overshoot, not completion.
	err = CheckAllocation(slot, 15, 10, 20)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("overshoot should be rejected, got %v", err)
	}
}

func TestCheckReallocation(t *testing.T) {
	t.Parallel()

	// Resubmitting the pallet unchanged always passes, even at full quota.
	if err := CheckReallocation(20, 10, 10, 20); err != nil {
		t.Fatalf("unchanged pallet should pass: %v", err)
	}
	// Moving into a full slot is rejected.
	err := CheckReallocation(20, 0, 10, 20)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	// Moving out of a slot frees its room for the new value.
	if err := CheckReallocation(10, 10, 10, 10); err != nil {
		t.Fatalf("swap within quota should pass: %v", err)
	}
}
