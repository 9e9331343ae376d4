package http

import (
	"net/http"

	"github.com/agroandes/trazabilidad/internal/application"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req application.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_user", err)
		return
	}

	res, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_user", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_users", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeMappedError(r.Context(), w, "update_user", err)
		return
	}
	var req application.UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_user", err)
		return
	}

	res, err := h.service.UpdateUser(r.Context(), userID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_user", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) changeUserPassword(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeMappedError(r.Context(), w, "change_user_password", err)
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "change_user_password", err)
		return
	}

	if err := h.service.ChangeUserPassword(r.Context(), userID, req.Password); err != nil {
		writeMappedError(r.Context(), w, "change_user_password", err)
		return
	}
	writeMessage(w, http.StatusOK, "password updated")
}
