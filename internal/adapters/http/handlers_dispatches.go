package http

import (
	"net/http"

	"github.com/agroandes/trazabilidad/internal/application"
)

func (h *Handler) createDispatch(w http.ResponseWriter, r *http.Request) {
	var req application.CreateDispatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_dispatch", err)
		return
	}

	res, err := h.service.CreateDispatch(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_dispatch", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) listDispatches(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListDispatches(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_dispatches", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) listDispatchableOrders(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListDispatchableOrders(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_dispatchable_orders", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) listDispatchablePallets(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeMappedError(r.Context(), w, "list_dispatchable_pallets", err)
		return
	}
	res, err := h.service.ListDispatchablePallets(r.Context(), orderID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_dispatchable_pallets", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) getDispatch(w http.ResponseWriter, r *http.Request) {
	dispatchID, err := pathID(r, "dispatch_id")
	if err != nil {
		writeMappedError(r.Context(), w, "get_dispatch", err)
		return
	}
	res, err := h.service.GetDispatch(r.Context(), dispatchID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_dispatch", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) updateDispatch(w http.ResponseWriter, r *http.Request) {
	dispatchID, err := pathID(r, "dispatch_id")
	if err != nil {
		writeMappedError(r.Context(), w, "update_dispatch", err)
		return
	}
	var req application.UpdateDispatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_dispatch", err)
		return
	}

	if err := h.service.UpdateDispatch(r.Context(), dispatchID, req); err != nil {
		writeMappedError(r.Context(), w, "update_dispatch", err)
		return
	}
	writeMessage(w, http.StatusOK, "dispatch updated")
}
