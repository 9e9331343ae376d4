package http

import (
	"net/http"
)

func (h *Handler) cameraBalanceReport(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.CameraBalanceReport(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "camera_balance_report", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) shortfallReport(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ShortfallReport(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "shortfall_report", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

// ordersByWeekReport filters by ?week=N and optional ?status=; an absent or
// TODOS status means every non-deleted order.
func (h *Handler) ordersByWeekReport(w http.ResponseWriter, r *http.Request) {
	week := parseIntDefault(r.URL.Query().Get("week"), 0)
	status := r.URL.Query().Get("status")

	res, err := h.service.OrdersByWeekReport(r.Context(), week, status)
	if err != nil {
		writeMappedError(r.Context(), w, "orders_by_week_report", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) availableWeeks(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListAvailableWeeks(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "available_weeks", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) producedTotalsReport(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ProducedTotalsReport(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "produced_totals_report", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}
