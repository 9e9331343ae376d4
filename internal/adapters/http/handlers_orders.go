package http

import (
	"net/http"

	"github.com/agroandes/trazabilidad/internal/application"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req application.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_order", err)
		return
	}

	res, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_order", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListOrders(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_orders", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) listPendingOrders(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListPendingOrders(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_pending_orders", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeMappedError(r.Context(), w, "get_order", err)
		return
	}
	res, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_order", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeMappedError(r.Context(), w, "update_order", err)
		return
	}
	var req application.UpdateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_order", err)
		return
	}

	res, err := h.service.UpdateOrder(r.Context(), orderID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_order", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeMappedError(r.Context(), w, "delete_order", err)
		return
	}
	if err := h.service.DeleteOrder(r.Context(), orderID); err != nil {
		writeMappedError(r.Context(), w, "delete_order", err)
		return
	}
	writeMessage(w, http.StatusOK, "order deleted")
}

func (h *Handler) referenceData(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.GetReferenceData(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "reference_data", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}
