package domain

// CameraBalanceRow aggregates in-storage boxes for one order, GP and CL
// combined per calibre the way the chamber report presents them.
type CameraBalanceRow struct {
	OrderID    int64
	ClientName string
	ByCalibre  map[int]int // calibre 5..10 -> boxes EN CAMARA
}

// ShortfallRow is the remaining demand for one pending order across all
// twelve slots: max(0, quota - in storage).
type ShortfallRow struct {
	OrderID    int64
	ClientName string
	Missing    Quantities
}

// ProducedTotalRow is the EN CAMARA grand total for one order.
type ProducedTotalRow struct {
	OrderID       int64
	ClientName    string
	TotalProduced int
}

// Shortfall computes the per-slot remaining demand for an order given its
// in-storage allocation map. Overshoot never goes negative.
func Shortfall(quota, inStorage Quantities) Quantities {
	missing := make(Quantities, 12)
	for _, s := range Slots() {
		d := quota.Get(s) - inStorage.Get(s)
		if d < 0 {
			d = 0
		}
		missing[s] = d
	}
	return missing
}
