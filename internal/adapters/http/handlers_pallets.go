package http

import (
	"net/http"

	"github.com/agroandes/trazabilidad/internal/application"
)

func (h *Handler) createPallet(w http.ResponseWriter, r *http.Request) {
	var req application.CreatePalletRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_pallet", err)
		return
	}

	res, err := h.service.CreatePallet(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_pallet", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) listPallets(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListPallets(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_pallets", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) getPallet(w http.ResponseWriter, r *http.Request) {
	numero, err := pathID(r, "numero")
	if err != nil {
		writeMappedError(r.Context(), w, "get_pallet", err)
		return
	}
	res, err := h.service.GetPallet(r.Context(), numero)
	if err != nil {
		writeMappedError(r.Context(), w, "get_pallet", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) updatePallet(w http.ResponseWriter, r *http.Request) {
	numero, err := pathID(r, "numero")
	if err != nil {
		writeMappedError(r.Context(), w, "update_pallet", err)
		return
	}
	var req application.UpdatePalletRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_pallet", err)
		return
	}

	res, err := h.service.UpdatePallet(r.Context(), numero, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_pallet", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) deletePallet(w http.ResponseWriter, r *http.Request) {
	numero, err := pathID(r, "numero")
	if err != nil {
		writeMappedError(r.Context(), w, "delete_pallet", err)
		return
	}
	if err := h.service.DeletePallet(r.Context(), numero); err != nil {
		writeMappedError(r.Context(), w, "delete_pallet", err)
		return
	}
	writeMessage(w, http.StatusOK, "pallet deleted")
}
