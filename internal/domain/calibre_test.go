package domain

import "testing"

func TestSlotsOrderAndFields(t *testing.T) {
	t.Parallel()

	slots := Slots()
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	if slots[0].QuotaField() != "gp_calibre5" || slots[11].QuotaField() != "cl_calibre10" {
		t.Fatalf("unexpected slot order: %s .. %s", slots[0].QuotaField(), slots[11].QuotaField())
	}
	if slots[0].PalletField() != "cantidad_gp_5" {
		t.Fatalf("unexpected pallet field: %s", slots[0].PalletField())
	}
}

func TestParseSlot(t *testing.T) {
	t.Parallel()

	s, ok := ParseSlot("cl_calibre7")
	if !ok || s.Type != PackTypeCL || s.Calibre != 7 {
		t.Fatalf("ParseSlot(cl_calibre7) = %+v, %v", s, ok)
	}
	if _, ok := ParseSlot("cl_calibre11"); ok {
		t.Fatal("calibre 11 should not parse")
	}
	if _, ok := ParseSlot("cantidad_gp_5"); ok {
		t.Fatal("pallet field names should not parse as quota fields")
	}
}

func TestShortfallNeverNegative(t *testing.T) {
	t.Parallel()

	quota := quotaOf(map[string]int{"gp_calibre5": 20, "cl_calibre8": 30})
	inStorage := quotaOf(map[string]int{"gp_calibre5": 10, "cl_calibre8": 40})

	missing := Shortfall(quota, inStorage)
	if got := missing.Get(Slot{Type: PackTypeGP, Calibre: 5}); got != 10 {
		t.Fatalf("gp_calibre5 shortfall = %d, want 10", got)
	}
	if got := missing.Get(Slot{Type: PackTypeCL, Calibre: 8}); got != 0 {
		t.Fatalf("overshot slot should clamp to zero, got %d", got)
	}
	if len(missing) != 12 {
		t.Fatalf("shortfall should cover all twelve slots, got %d", len(missing))
	}
}
