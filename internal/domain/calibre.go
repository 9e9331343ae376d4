package domain

import "fmt"

// PackType is one of the two packing families a calibre can be sized under.
type PackType string

const (
	PackTypeGP PackType = "gp"
	PackTypeCL PackType = "cl"
)

// Calibres run 5 through 10. Crossed with the two pack types they form the
// twelve quota slots of an order. The enumeration is closed: it is baked into
// the schema and into every validation below, never configured at runtime.
const (
	MinCalibre = 5
	MaxCalibre = 10
)

// Slot identifies one of the twelve calibre/type positions.
type Slot struct {
	Type    PackType
	Calibre int
}

// Slots returns the twelve slots in stable order (GP 5..10, then CL 5..10).
func Slots() []Slot {
	out := make([]Slot, 0, 12)
	for _, t := range []PackType{PackTypeGP, PackTypeCL} {
		for c := MinCalibre; c <= MaxCalibre; c++ {
			out = append(out, Slot{Type: t, Calibre: c})
		}
	}
	return out
}

// QuotaField is the order-side column/field name, e.g. "gp_calibre5".
func (s Slot) QuotaField() string {
	return fmt.Sprintf("%s_calibre%d", s.Type, s.Calibre)
}

// PalletField is the pallet-side column/field name, e.g. "cantidad_gp_5".
func (s Slot) PalletField() string {
	return fmt.Sprintf("cantidad_%s_%d", s.Type, s.Calibre)
}

// Label renders the slot for user-facing messages, e.g. "GP calibre 5".
func (s Slot) Label() string {
	if s.Type == PackTypeCL {
		return fmt.Sprintf("CL calibre %d", s.Calibre)
	}
	return fmt.Sprintf("GP calibre %d", s.Calibre)
}

// ParseSlot resolves a quota field name such as "cl_calibre7" back to a slot.
func ParseSlot(field string) (Slot, bool) {
	for _, s := range Slots() {
		if s.QuotaField() == field {
			return s, true
		}
	}
	return Slot{}, false
}

// Quantities is a twelve-slot box-count map. Missing slots read as zero.
type Quantities map[Slot]int

// Get returns the count for a slot, zero when absent.
func (q Quantities) Get(s Slot) int {
	if q == nil {
		return 0
	}
	return q[s]
}

// Total sums all twelve slots.
func (q Quantities) Total() int {
	total := 0
	for _, s := range Slots() {
		total += q.Get(s)
	}
	return total
}

// Clone copies the map so callers can mutate without aliasing.
func (q Quantities) Clone() Quantities {
	out := make(Quantities, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}
